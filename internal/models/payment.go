package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row of the payments table. PartyName is joined from
// parties on reads.
type Payment struct {
	PaymentID   int64           `db:"payment_id"`
	PartyID     int64           `db:"party_id"`
	PartyName   string          `db:"party_name"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentDate time.Time       `db:"payment_date"`
	Remarks     string          `db:"remarks"` // Nullable
	CreatedAt   time.Time       `db:"created_at"`
}
