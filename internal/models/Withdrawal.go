package models

import "time"

// Withdrawal is one driver payout record. Read-only for the dashboard;
// DriverID is resolved to a display name against the roster at render time.
type Withdrawal struct {
	ID            string    `json:"_id"`
	DriverID      string    `json:"driverId"`
	Amount        float64   `json:"amount"`
	UpiID         string    `json:"upiId"`
	TransactionID string    `json:"transactionId"`
	Date          time.Time `json:"date"`
}
