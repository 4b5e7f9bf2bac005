package mapping

import (
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/hamidtraders/invoice_ledger_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:       d.InvoiceID,
		InvoiceNumber:   d.InvoiceNumber,
		PartyID:         d.PartyID,
		PartyName:       d.PartyName,
		InvoiceDate:     d.InvoiceDate,
		TotalAmount:     d.TotalAmount,
		PreviousBalance: d.PreviousBalance,
		GrandTotal:      d.GrandTotal,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:       m.InvoiceID,
		InvoiceNumber:   m.InvoiceNumber,
		PartyID:         m.PartyID,
		PartyName:       m.PartyName,
		InvoiceDate:     m.InvoiceDate,
		TotalAmount:     m.TotalAmount,
		PreviousBalance: m.PreviousBalance,
		GrandTotal:      m.GrandTotal,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain form
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

// ToModelInvoiceItem converts a domain InvoiceItem to a model InvoiceItem
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		ItemID:      d.ItemID,
		InvoiceID:   d.InvoiceID,
		ProductName: d.ProductName,
		Quantity:    d.Quantity,
		Packing:     d.Packing,
		UnitPrice:   d.UnitPrice,
		Amount:      d.Amount,
	}
}

// ToDomainInvoiceItem converts a model InvoiceItem to a domain InvoiceItem
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		ItemID:      m.ItemID,
		InvoiceID:   m.InvoiceID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		Packing:     m.Packing,
		UnitPrice:   m.UnitPrice,
		Amount:      m.Amount,
	}
}

// ToDomainInvoiceItemSlice converts a slice of model InvoiceItems to domain form
func ToDomainInvoiceItemSlice(ms []models.InvoiceItem) []domain.InvoiceItem {
	ds := make([]domain.InvoiceItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceItem(m)
	}
	return ds
}
