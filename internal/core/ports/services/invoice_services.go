package services

import (
	"context"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoice retrieves one invoice with its items.
	GetInvoice(ctx context.Context, invoiceNumber string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices (with items) matching the given filters,
	// ordered date DESC then number DESC.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error)

	// NextInvoiceNumber returns the next free numeric invoice number.
	NextInvoiceNumber(ctx context.Context) (string, error)
}

// InvoiceWriterSvc defines the ledger-mutating invoice operations. Each runs
// in one transaction together with the forward sweep it triggers.
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new invoice, stamping it with the party balance
	// at its chain position and sweeping later invoices forward.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error)

	// UpdateInvoice replaces an invoice's party, date, and items, keeping its
	// stored previous balance, and sweeps the affected chains forward.
	UpdateInvoice(ctx context.Context, invoiceNumber string, req dto.UpdateInvoiceRequest) (*dto.UpdateInvoiceResponse, error)

	// DeleteInvoice removes an invoice and sweeps the party's later invoices
	// forward without it.
	DeleteInvoice(ctx context.Context, invoiceNumber string) (*dto.DeleteInvoiceResponse, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
