package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party represents a customer/counterparty that carries one running balance.
// Parties are created implicitly the first time an invoice, payment, or
// opening-balance write references the name, and are never deleted.
type Party struct {
	PartyID        int64           `json:"partyID"`
	PartyName      string          `json:"partyName"` // Unique business key
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// OpeningBalanceAdjustment is one row of the append-only audit log written
// every time a party's opening balance is set. Rows are never mutated or
// deleted.
type OpeningBalanceAdjustment struct {
	AdjustmentID   int64           `json:"adjustmentID"`
	PartyID        int64           `json:"partyID"`
	AdjustmentDate time.Time       `json:"adjustmentDate"`
	OldBalance     decimal.Decimal `json:"oldBalance"`
	NewBalance     decimal.Decimal `json:"newBalance"`
	Reason         string          `json:"reason"`
	CreatedAt      time.Time       `json:"createdAt"`
}
