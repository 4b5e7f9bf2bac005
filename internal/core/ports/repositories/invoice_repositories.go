package repositories

import (
	"context"
	"time"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/ledgercalc"
	"github.com/jackc/pgx/v5"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByNumber retrieves an invoice (without items) by its globally
	// unique number.
	FindInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error)

	// FindItemsByInvoiceID retrieves the line items of one invoice.
	FindItemsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error)

	// FindItemsByInvoiceIDs retrieves line items for multiple invoices,
	// grouped by invoice id.
	FindItemsByInvoiceIDs(ctx context.Context, invoiceIDs []int64) (map[int64][]domain.InvoiceItem, error)

	// ListInvoices retrieves invoices filtered by party name and date range
	// (all filters optional), ordered date DESC then number value DESC.
	ListInvoices(ctx context.Context, partyName string, startDate, endDate *time.Time) ([]domain.Invoice, error)

	// FindInvoicesByParty retrieves every invoice of a party.
	FindInvoicesByParty(ctx context.Context, partyID int64) ([]domain.Invoice, error)

	// MaxNumericInvoiceNumber returns the highest all-digit invoice number
	// currently issued, or 0 when none exist.
	MaxNumericInvoiceNumber(ctx context.Context) (int64, error)
}

// InvoiceWriter defines write operations for invoice data, all inside a
// caller-owned transaction so the forward sweep commits together with its
// triggering mutation.
type InvoiceWriter interface {
	// FindInvoiceByNumberInTx is FindInvoiceByNumber evaluated inside the transaction.
	FindInvoiceByNumberInTx(ctx context.Context, tx pgx.Tx, invoiceNumber string) (*domain.Invoice, error)

	// SaveInvoiceInTx inserts the invoice and its items, returning the new
	// invoice id. A duplicate invoice number maps to apperrors.ErrDuplicate.
	SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, items []domain.InvoiceItem) (int64, error)

	// UpdateInvoiceInTx rewrites the invoice row (party, date, totals).
	UpdateInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error

	// ReplaceItemsInTx deletes all items of the invoice and inserts the new set.
	ReplaceItemsInTx(ctx context.Context, tx pgx.Tx, invoiceID int64, items []domain.InvoiceItem) error

	// DeleteInvoiceInTx deletes the invoice's items and then the invoice row.
	DeleteInvoiceInTx(ctx context.Context, tx pgx.Tx, invoiceID int64) error

	// FindInvoicesByPartyInTx retrieves every invoice of a party inside the transaction.
	FindInvoicesByPartyInTx(ctx context.Context, tx pgx.Tx, partyID int64) ([]domain.Invoice, error)

	// ApplyBalanceUpdatesInTx persists the previous_balance/grand_total pairs
	// produced by a forward sweep.
	ApplyBalanceUpdatesInTx(ctx context.Context, tx pgx.Tx, updates []ledgercalc.BalanceUpdate) error

	// MaxNumericInvoiceNumberInTx is MaxNumericInvoiceNumber inside the transaction.
	MaxNumericInvoiceNumberInTx(ctx context.Context, tx pgx.Tx) (int64, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
