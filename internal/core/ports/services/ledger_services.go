package services

import (
	"context"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
)

// LedgerSvcFacade defines the read-only ledger projections. Nothing here
// mutates stored balances.
type LedgerSvcFacade interface {
	// GetPartyLedger builds the merged debit/credit timeline of one party.
	GetPartyLedger(ctx context.Context, partyName string) (*domain.PartyLedger, error)

	// ListAllPartyLedgers returns every party with its current balance.
	ListAllPartyLedgers(ctx context.Context) ([]domain.PartyBalance, error)
}
