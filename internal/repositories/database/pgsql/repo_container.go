package pgsql

import (
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:   newPgxPartyRepository(dbPool),
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
		PaymentRepo: newPgxPaymentRepository(dbPool),
		StockRepo:   newPgxStockRepository(dbPool),
		AdminRepo:   newPgxAdminRepository(dbPool),
	}
}
