package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row of the invoices table. PartyName is joined from
// parties on reads; only party_id is stored on the row itself.
type Invoice struct {
	InvoiceID       int64           `db:"invoice_id"`
	InvoiceNumber   string          `db:"invoice_number"`
	PartyID         int64           `db:"party_id"`
	PartyName       string          `db:"party_name"`
	InvoiceDate     time.Time       `db:"invoice_date"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	PreviousBalance decimal.Decimal `db:"previous_balance"`
	GrandTotal      decimal.Decimal `db:"grand_total"`
	CreatedAt       time.Time       `db:"created_at"`
}

// InvoiceItem represents a row of the invoice_items table.
type InvoiceItem struct {
	ItemID      int64           `db:"item_id"`
	InvoiceID   int64           `db:"invoice_id"`
	ProductName string          `db:"product_name"`
	Quantity    decimal.Decimal `db:"quantity"`
	Packing     string          `db:"packing"` // Nullable
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Amount      decimal.Decimal `db:"amount"`
}
