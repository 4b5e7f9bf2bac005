package services

import (
	"context"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
)

// PartyReaderSvc defines read operations for party data
type PartyReaderSvc interface {
	// ListParties retrieves every party with its computed current balance,
	// ordered by name.
	ListParties(ctx context.Context) ([]domain.PartyBalance, error)

	// GetPartyBalance returns the current balance and opening balance of a
	// party; both are zero for a name that does not exist yet.
	GetPartyBalance(ctx context.Context, partyName string) (*dto.PartyBalanceResponse, error)

	// OpeningBalanceHistory retrieves the opening-balance audit log of a party.
	OpeningBalanceHistory(ctx context.Context, partyName string) ([]domain.OpeningBalanceAdjustment, error)
}

// PartyWriterSvc defines write operations for party data
type PartyWriterSvc interface {
	// SetOpeningBalance upserts the party's opening balance and appends an
	// audit row. Existing invoices keep their stamped previous balances.
	SetOpeningBalance(ctx context.Context, partyName string, req dto.SetOpeningBalanceRequest) (*dto.SetOpeningBalanceResult, error)
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
