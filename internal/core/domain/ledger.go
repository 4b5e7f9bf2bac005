package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryType discriminates the two kinds of timeline entries.
type LedgerEntryType string

const (
	LedgerEntryInvoiceItem LedgerEntryType = "invoice_item"
	LedgerEntryPayment     LedgerEntryType = "payment"
)

// LedgerEntry is one line of a party's display timeline: either an invoice
// item (debit) or a payment (credit). On a shared date invoice items sort
// before payments; this ordering is presentational only and does not feed
// balance arithmetic.
type LedgerEntry struct {
	Type          LedgerEntryType
	Date          time.Time
	InvoiceNumber string // Invoice items only
	ProductName   string
	Quantity      decimal.Decimal
	Packing       string
	UnitPrice     decimal.Decimal
	Amount        decimal.Decimal
	PaymentID     int64  // Payments only, same-date tie-break
	Remarks       string // Payments only
}

// PartyLedger is the read-only ledger projection for one party.
type PartyLedger struct {
	PartyName      string
	OpeningBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Entries        []LedgerEntry
}

// PartyBalance pairs a party name with its computed current balance.
type PartyBalance struct {
	PartyName      string
	CurrentBalance decimal.Decimal
}
