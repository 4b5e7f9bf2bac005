package services

import (
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Party = NewPartyService(repos.PartyRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.PartyRepo, repos.PaymentRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.PartyRepo, repos.InvoiceRepo)
	container.Ledger = NewLedgerService(repos.PartyRepo, repos.InvoiceRepo, repos.PaymentRepo)
	container.Stock = NewStockService(repos.StockRepo)
	container.Admin = NewAdminService(repos.AdminRepo)

	return container
}
