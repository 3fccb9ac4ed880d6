package models

import (
	"strings"
	"time"
)

// Status is an order's position in the delivery lifecycle. The string
// values are what the backend stores and what the frontend displays, so
// they are wire format, not display hints.
type Status string

const (
	StatusPlaced         Status = "Placed"
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
)

// OrderItem is one line of an order as the backend serves it.
type OrderItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Order mirrors the backend's order document (Mongo-style `_id`).
// DriverID and DriverName are set together by assignment or not at all.
type Order struct {
	ID         string      `json:"_id"`
	Date       time.Time   `json:"date"`
	UserEmail  string      `json:"userEmail,omitempty"`
	Items      []OrderItem `json:"items"`
	Status     Status      `json:"status"`
	DriverID   string      `json:"driverId,omitempty"`
	DriverName string      `json:"driverName,omitempty"`
}

// Customer returns the display name for the order's customer.
func (o Order) Customer() string {
	if o.UserEmail == "" {
		return "Guest"
	}
	return o.UserEmail
}

// Reference is the short order number shown on cards (last 6 chars of the id).
func (o Order) Reference() string {
	id := o.ID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return strings.ToUpper(id)
}

// Normalize drops a driver name that arrived without a driver id, so the
// pair stays both-or-neither no matter what the backend sent.
func (o *Order) Normalize() {
	if o.DriverID == "" {
		o.DriverName = ""
	}
}

// Assigned reports whether a driver has been attached to the order.
func (o Order) Assigned() bool {
	return o.DriverID != ""
}
