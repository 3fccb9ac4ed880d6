// Package gateway is the typed HTTP boundary to the Fishyy backend. It
// shapes requests and normalizes failures; every read that feeds the
// dashboard fails to an empty list so a backend hiccup never breaks a
// render. Write outcomes are reported to the caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"

	"fishyy_admin/internal/models"
)

// Client talks to one backend origin.
type Client struct {
	base string
	http *http.Client
	log  *logrus.Entry
}

// New builds a client for the given backend origin, e.g.
// "https://fishyy-backend.onrender.com".
func New(base string, timeout time.Duration) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
		log:  logrus.WithField("component", "gateway"),
	}
}

// ListOrders fetches every order for the admin board. Fails to empty.
func (c *Client) ListOrders(ctx context.Context) []models.Order {
	var orders []models.Order
	if err := c.getJSON(ctx, "/admin/orders", &orders); err != nil {
		c.log.WithError(err).Warn("Fetching orders failed; serving empty list")
		return []models.Order{}
	}
	for i := range orders {
		orders[i].Normalize()
	}
	return orders
}

// ListDrivers fetches the full driver roster. Fails to empty.
func (c *Client) ListDrivers(ctx context.Context) []models.Driver {
	var drivers []models.Driver
	if err := c.getJSON(ctx, "/admin/drivers", &drivers); err != nil {
		c.log.WithError(err).Warn("Fetching drivers failed; serving empty list")
		return []models.Driver{}
	}
	return drivers
}

// ListWithdrawals fetches the payout history. Fails to empty.
func (c *Client) ListWithdrawals(ctx context.Context) []models.Withdrawal {
	var ws []models.Withdrawal
	if err := c.getJSON(ctx, "/admin/withdrawals", &ws); err != nil {
		c.log.WithError(err).Warn("Fetching withdrawals failed; serving empty list")
		return []models.Withdrawal{}
	}
	return ws
}

// SetOrderStatus asks the backend to move an order to the given status.
func (c *Client) SetOrderStatus(ctx context.Context, orderID string, status models.Status) bool {
	body := map[string]any{"orderId": orderID, "status": status}
	if err := c.send(ctx, http.MethodPost, "/admin/order-status", body, nil); err != nil {
		c.log.WithError(err).WithField("order_id", orderID).Error("Order status update failed")
		return false
	}
	return true
}

// AssignDriver attaches a driver to an order on the backend.
func (c *Client) AssignDriver(ctx context.Context, orderID, driverID, driverName string) bool {
	body := map[string]any{"orderId": orderID, "driverId": driverID, "driverName": driverName}
	if err := c.send(ctx, http.MethodPost, "/admin/assign-driver", body, nil); err != nil {
		c.log.WithError(err).WithField("order_id", orderID).Error("Driver assignment failed")
		return false
	}
	return true
}

// ListProducts fetches the menu. Unlike the dashboard reads, the error is
// surfaced: inventory management reports failures instead of hiding them.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a new menu item and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var created models.Product
	if err := c.send(ctx, http.MethodPost, "/admin/add-product", p, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// UpdateProduct replaces the fields of an existing menu item.
func (c *Client) UpdateProduct(ctx context.Context, id string, p models.Product) (models.Product, error) {
	var updated models.Product
	if err := c.send(ctx, http.MethodPut, "/admin/product/"+id, p, &updated); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

// DeleteProduct removes a menu item.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/admin/product/"+id, nil, nil)
}

// getJSON performs a GET and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// send performs a mutating call with an optional JSON body and decodes the
// response into out when out is non-nil.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	// Correlation id so a backend-side trace can be matched to our logs.
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: backend returned %s (request %s)", req.Method, req.URL.Path, resp.Status, reqID)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
