package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fishyy_admin/internal/filter"
	"fishyy_admin/internal/lifecycle"
	"fishyy_admin/internal/models"
	"fishyy_admin/internal/store"
)

// statusPayload is the requested lifecycle step for an order.
type statusPayload struct {
	Status models.Status `json:"status" binding:"required"`
}

// selectDriverPayload is the tentative driver choice; an empty id clears it.
type selectDriverPayload struct {
	DriverID string `json:"driverId"`
}

// ListOrders renders the order board: the snapshot filtered by the search
// term, each card annotated with the one action its status allows.
func ListOrders(c *gin.Context) {
	term := dashboard.SearchTerm()
	if q, ok := c.GetQuery("search"); ok {
		term = q
	}

	orders := filter.Orders(dashboard.Orders(), term)
	cards := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		driver := "Unassigned"
		if o.DriverName != "" {
			driver = o.DriverName
		}
		cards = append(cards, gin.H{
			"order":         o,
			"reference":     o.Reference(),
			"customer":      o.Customer(),
			"driver":        driver,
			"action":        lifecycle.ActionFor(o.Status),
			"canAssign":     lifecycle.CanAssign(o),
			"pendingDriver": dashboard.PendingFor(o.ID),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": cards, "loading": dashboard.Loading()})
}

// UpdateOrderStatus moves an order one step along its lifecycle.
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	err := dashboard.ChangeStatus(c.Request.Context(), orderID, payload.Status)
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrBackendRejected):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case err != nil:
		// Illegal transition (skip, backward, or past Delivered).
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Order moved to " + string(payload.Status) + "."})
	}
}

// SelectDriver stores the tentative driver choice for an order. Nothing is
// committed until AssignDriver.
func SelectDriver(c *gin.Context) {
	orderID := c.Param("id")

	var payload selectDriverPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	dashboard.SelectDriver(orderID, payload.DriverID)
	c.JSON(http.StatusOK, gin.H{"pendingDriver": payload.DriverID})
}

// AssignDriver commits the pending selection. The store re-validates the
// driver against a freshly fetched roster before any mutation goes out.
func AssignDriver(c *gin.Context) {
	orderID := c.Param("id")

	name, err := dashboard.Assign(c.Request.Context(), orderID)

	var offline *store.OfflineDriverError
	switch {
	case errors.Is(err, store.ErrNoDriverSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrOrderNotFound), errors.Is(err, store.ErrDriverNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotAssignable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &offline):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "driver": offline.Name})
	case errors.Is(err, store.ErrBackendRejected):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Assigned to " + name + ".", "driver": name})
	}
}
