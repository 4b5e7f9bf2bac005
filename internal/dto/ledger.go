package dto

import (
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryResponse is one line of a party's display timeline. Invoice-item
// fields are omitted on payment entries and vice versa.
type LedgerEntryResponse struct {
	Type          string           `json:"type"`
	Date          string           `json:"date"`
	InvoiceNumber string           `json:"invoiceNumber,omitempty"`
	ProductName   string           `json:"productName,omitempty"`
	Qty           *decimal.Decimal `json:"qty,omitempty"`
	Packing       string           `json:"packing,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unitPrice,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	Remarks       string           `json:"remarks,omitempty"`
}

// PartyLedgerResponse is the full ledger view of one party.
type PartyLedgerResponse struct {
	PartyName      string                `json:"partyName"`
	OpeningBalance decimal.Decimal       `json:"openingBalance"`
	CurrentBalance decimal.Decimal       `json:"currentBalance"`
	Transactions   []LedgerEntryResponse `json:"transactions"`
}

// ToPartyLedgerResponse converts the ledger projection to its wire shape.
func ToPartyLedgerResponse(ledger domain.PartyLedger) PartyLedgerResponse {
	entries := make([]LedgerEntryResponse, len(ledger.Entries))
	for i, e := range ledger.Entries {
		entry := LedgerEntryResponse{
			Type:   string(e.Type),
			Date:   e.Date.Format(DateFormat),
			Amount: e.Amount,
		}
		switch e.Type {
		case domain.LedgerEntryInvoiceItem:
			qty := e.Quantity
			unitPrice := e.UnitPrice
			entry.InvoiceNumber = e.InvoiceNumber
			entry.ProductName = e.ProductName
			entry.Qty = &qty
			entry.Packing = e.Packing
			entry.UnitPrice = &unitPrice
		case domain.LedgerEntryPayment:
			entry.Remarks = e.Remarks
		}
		entries[i] = entry
	}
	return PartyLedgerResponse{
		PartyName:      ledger.PartyName,
		OpeningBalance: ledger.OpeningBalance,
		CurrentBalance: ledger.CurrentBalance,
		Transactions:   entries,
	}
}
