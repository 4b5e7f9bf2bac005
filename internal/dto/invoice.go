package dto

import (
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is one line of an invoice payload. Amount is trusted as
// sent; the backend does not recompute qty times unit price.
type InvoiceItemRequest struct {
	ProductName string          `json:"productName" binding:"required"`
	Qty         decimal.Decimal `json:"qty"`
	Packing     string          `json:"packing"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToDomain converts the item payload to its domain form.
func (r InvoiceItemRequest) ToDomain() domain.InvoiceItem {
	return domain.InvoiceItem{
		ProductName: r.ProductName,
		Quantity:    r.Qty,
		Packing:     r.Packing,
		UnitPrice:   r.UnitPrice,
		Amount:      r.Amount,
	}
}

// ToDomainInvoiceItems converts a payload item slice to its domain form.
func ToDomainInvoiceItems(items []InvoiceItemRequest) []domain.InvoiceItem {
	domainItems := make([]domain.InvoiceItem, len(items))
	for i, it := range items {
		domainItems[i] = it.ToDomain()
	}
	return domainItems
}

// CreateInvoiceRequest defines the payload for creating an invoice.
type CreateInvoiceRequest struct {
	PartyName     string               `json:"partyName" binding:"required"`
	Date          string               `json:"date" binding:"required,dateonly"`
	InvoiceNumber string               `json:"invoiceNumber" binding:"required"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest defines the payload for editing an invoice. The invoice
// number itself is immutable and comes from the URL.
type UpdateInvoiceRequest struct {
	PartyName string               `json:"partyName" binding:"required"`
	Date      string               `json:"date" binding:"required,dateonly"`
	Items     []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateInvoiceResponse seeds the next entry of a batch-entry UI flow, so the
// frontend does not have to re-query right after an insert.
type CreateInvoiceResponse struct {
	Message                       string          `json:"message"`
	InvoiceNumber                 string          `json:"invoiceNumber"`
	NextInvoiceNumber             string          `json:"nextInvoiceNumber"`
	PreviousBalanceForNextInvoice decimal.Decimal `json:"previousBalanceForNextInvoice"`
}

// UpdateInvoiceResponse reports the outcome of an invoice edit.
type UpdateInvoiceResponse struct {
	Message                       string          `json:"message"`
	PreviousBalanceForNextInvoice decimal.Decimal `json:"previousBalanceForNextInvoice"`
	PartyName                     string          `json:"partyName"`
}

// DeleteInvoiceResponse reports the outcome of an invoice deletion.
type DeleteInvoiceResponse struct {
	Message             string          `json:"message"`
	PartyName           string          `json:"partyName"`
	CurrentPartyBalance decimal.Decimal `json:"currentPartyBalance"`
}

// NextInvoiceNumberResponse carries the next free numeric invoice number.
type NextInvoiceNumberResponse struct {
	NextInvoiceNumber string `json:"nextInvoiceNumber"`
}

// ListInvoicesParams are the optional query filters of the invoice listing.
type ListInvoicesParams struct {
	PartyName string `form:"partyName"`
	StartDate string `form:"startDate" binding:"omitempty,dateonly"`
	EndDate   string `form:"endDate" binding:"omitempty,dateonly"`
}

// InvoiceItemResponse is one line of an invoice on the wire.
type InvoiceItemResponse struct {
	ProductName string          `json:"productName"`
	Qty         decimal.Decimal `json:"qty"`
	Packing     string          `json:"packing"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse is a full invoice with its items.
type InvoiceResponse struct {
	InvoiceNumber   string                `json:"invoiceNumber"`
	PartyName       string                `json:"partyName"`
	Date            string                `json:"date"`
	TotalAmount     decimal.Decimal       `json:"totalAmount"`
	PreviousBalance decimal.Decimal       `json:"previousBalance"`
	GrandTotal      decimal.Decimal       `json:"grandTotal"`
	Items           []InvoiceItemResponse `json:"items"`
}

// ToInvoiceResponse converts a domain invoice (with items loaded) to its wire shape.
func ToInvoiceResponse(inv domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			ProductName: it.ProductName,
			Qty:         it.Quantity,
			Packing:     it.Packing,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		}
	}
	return InvoiceResponse{
		InvoiceNumber:   inv.InvoiceNumber,
		PartyName:       inv.PartyName,
		Date:            inv.InvoiceDate.Format(DateFormat),
		TotalAmount:     inv.TotalAmount,
		PreviousBalance: inv.PreviousBalance,
		GrandTotal:      inv.GrandTotal,
		Items:           items,
	}
}

// ToInvoiceResponses converts a slice of domain invoices to their wire shape.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		responses[i] = ToInvoiceResponse(inv)
	}
	return responses
}
