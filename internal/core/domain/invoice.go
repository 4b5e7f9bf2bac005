package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents one invoice in a party's running-balance chain.
// PreviousBalance is the party balance immediately before this invoice and
// GrandTotal = PreviousBalance + TotalAmount; both are derived by the ledger
// sweep and never edited independently.
type Invoice struct {
	InvoiceID       int64           `json:"invoiceID"`
	InvoiceNumber   string          `json:"invoiceNumber"` // Globally unique, ordered by integer value when all digits
	PartyID         int64           `json:"partyID"`
	PartyName       string          `json:"partyName"`
	InvoiceDate     time.Time       `json:"date"`
	TotalAmount     decimal.Decimal `json:"totalAmount"` // Sum of item amounts, 2 dp
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
	CreatedAt       time.Time       `json:"createdAt"`
	Items           []InvoiceItem   `json:"items,omitempty"` // Loaded where the caller needs them
}

// InvoiceItem is a single line of an invoice. Amount is caller-supplied and
// trusted; it is not recomputed as Quantity times UnitPrice.
type InvoiceItem struct {
	ItemID      int64           `json:"itemID"`
	InvoiceID   int64           `json:"invoiceID"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"qty"`
	Packing     string          `json:"packing"` // Free-text unit, e.g. "25kg bag"
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}
