package lifecycle

import (
	"fmt"

	"fishyy_admin/internal/models"
)

// NextStatus maps each order status to its single legal successor.
// The chain is strictly forward; Delivered is terminal.
var NextStatus = map[models.Status]models.Status{
	models.StatusPlaced:         models.StatusPreparing,
	models.StatusPreparing:      models.StatusOutForDelivery,
	models.StatusOutForDelivery: models.StatusDelivered,
}

// actions holds the one admin action offered for each non-terminal status.
var actions = map[models.Status]string{
	models.StatusPlaced:         "Accept & Cook",
	models.StatusPreparing:      "Send to Driver",
	models.StatusOutForDelivery: "Mark Delivered",
}

// CanTransition reports whether from -> to is a legal forward step.
// No skips, no backward edges.
func CanTransition(from, to models.Status) bool {
	next, ok := NextStatus[from]
	return ok && next == to
}

// ActionFor returns the label of the single action available for an order
// in the given status, or "" when the status is terminal.
func ActionFor(s models.Status) string {
	return actions[s]
}

// Advance applies the to status to the order after checking legality.
func Advance(o *models.Order, to models.Status) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}
	if !CanTransition(o.Status, to) {
		return fmt.Errorf("invalid order status transition: %s -> %s", o.Status, to)
	}
	o.Status = to
	return nil
}

// CanAssign reports whether driver assignment is offered for the order:
// no driver attached yet and the kitchen has not handed it off.
func CanAssign(o models.Order) bool {
	if o.Assigned() {
		return false
	}
	return o.Status == models.StatusPlaced || o.Status == models.StatusPreparing
}
