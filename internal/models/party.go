package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party represents a row of the parties table.
type Party struct {
	PartyID        int64           `db:"party_id"`
	PartyName      string          `db:"party_name"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	CreatedAt      time.Time       `db:"created_at"`
}

// OpeningBalanceAdjustment represents a row of the append-only
// opening_balance_adjustments audit table.
type OpeningBalanceAdjustment struct {
	AdjustmentID   int64           `db:"adjustment_id"`
	PartyID        int64           `db:"party_id"`
	AdjustmentDate time.Time       `db:"adjustment_date"`
	OldBalance     decimal.Decimal `db:"old_balance"`
	NewBalance     decimal.Decimal `db:"new_balance"`
	Reason         string          `db:"reason"` // Nullable
	CreatedAt      time.Time       `db:"created_at"`
}
