package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents money received from a party; it reduces the party's
// running balance. Payments on the same date order by PaymentID.
type Payment struct {
	PaymentID   int64           `json:"paymentId"`
	PartyID     int64           `json:"partyID"`
	PartyName   string          `json:"partyName"`
	Amount      decimal.Decimal `json:"amount"` // Always positive
	PaymentDate time.Time       `json:"date"`
	Remarks     string          `json:"remarks"`
	CreatedAt   time.Time       `json:"createdAt"`
}
