package services

import (
	"context"
	"sort"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/ledgercalc"
)

// ledgerService builds the read-only timeline projections. It never writes.
type ledgerService struct {
	partyRepo   portsrepo.PartyRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(partyRepo portsrepo.PartyRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		partyRepo:   partyRepo,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetPartyLedger builds the merged debit/credit timeline of one party:
// every invoice line item and every payment, date ascending, items before
// payments on a shared date.
func (s *ledgerService) GetPartyLedger(ctx context.Context, partyName string) (*domain.PartyLedger, error) {
	party, err := s.partyRepo.FindPartyByName(ctx, partyName)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindInvoicesByParty(ctx, party.PartyID)
	if err != nil {
		return nil, err
	}
	invoiceIDs := make([]int64, len(invoices))
	for i, inv := range invoices {
		invoiceIDs[i] = inv.InvoiceID
	}
	itemsByInvoice, err := s.invoiceRepo.FindItemsByInvoiceIDs(ctx, invoiceIDs)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindPaymentsByParty(ctx, party.PartyID)
	if err != nil {
		return nil, err
	}

	// Invoices arrive in chain order and payments date-then-id ascending, so
	// a stable sort on (date, type rank) keeps each group's internal order.
	entries := make([]domain.LedgerEntry, 0, len(payments))
	for _, inv := range invoices {
		for _, item := range itemsByInvoice[inv.InvoiceID] {
			entries = append(entries, domain.LedgerEntry{
				Type:          domain.LedgerEntryInvoiceItem,
				Date:          inv.InvoiceDate,
				InvoiceNumber: inv.InvoiceNumber,
				ProductName:   item.ProductName,
				Quantity:      item.Quantity,
				Packing:       item.Packing,
				UnitPrice:     item.UnitPrice,
				Amount:        item.Amount,
			})
		}
	}
	for _, p := range payments {
		entries = append(entries, domain.LedgerEntry{
			Type:      domain.LedgerEntryPayment,
			Date:      p.PaymentDate,
			Amount:    p.Amount,
			PaymentID: p.PaymentID,
			Remarks:   p.Remarks,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entryRank(entries[i].Type) < entryRank(entries[j].Type)
	})

	invoiceTotal, paymentTotal, err := s.partyRepo.BalanceSums(ctx, party.PartyID)
	if err != nil {
		return nil, err
	}

	return &domain.PartyLedger{
		PartyName:      party.PartyName,
		OpeningBalance: party.OpeningBalance,
		CurrentBalance: ledgercalc.CurrentBalance(party.OpeningBalance, invoiceTotal, paymentTotal),
		Entries:        entries,
	}, nil
}

// ListAllPartyLedgers returns every party with its current balance.
func (s *ledgerService) ListAllPartyLedgers(ctx context.Context) ([]domain.PartyBalance, error) {
	return s.partyRepo.ListPartyBalances(ctx)
}

func entryRank(t domain.LedgerEntryType) int {
	if t == domain.LedgerEntryInvoiceItem {
		return 0
	}
	return 1
}
