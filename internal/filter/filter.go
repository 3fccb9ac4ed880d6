// Package filter derives the rendered subset of a snapshot from the
// search box. All functions are pure: case-insensitive substring match,
// empty term matches everything, input order preserved.
package filter

import (
	"strings"

	"fishyy_admin/internal/models"
)

// Orders keeps orders whose id or customer email contains the term.
func Orders(orders []models.Order, term string) []models.Order {
	if term == "" {
		return orders
	}
	t := strings.ToLower(term)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ID), t) ||
			(o.UserEmail != "" && strings.Contains(strings.ToLower(o.UserEmail), t)) {
			out = append(out, o)
		}
	}
	return out
}

// Withdrawals keeps payouts whose resolved driver name, UPI id or
// transaction id contains the term. Unresolvable drivers compare as
// "Unknown Driver"; missing fields compare as empty strings.
func Withdrawals(ws []models.Withdrawal, drivers []models.Driver, term string) []models.Withdrawal {
	if term == "" {
		return ws
	}
	t := strings.ToLower(term)
	out := make([]models.Withdrawal, 0, len(ws))
	for _, w := range ws {
		name := strings.ToLower(models.DriverName(drivers, w.DriverID))
		upi := strings.ToLower(w.UpiID)
		txn := strings.ToLower(w.TransactionID)
		if strings.Contains(name, t) || strings.Contains(upi, t) || strings.Contains(txn, t) {
			out = append(out, w)
		}
	}
	return out
}
