package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
	"github.com/hamidtraders/invoice_ledger_app/internal/middleware"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/ledgercalc"
)

type partyService struct {
	partyRepo portsrepo.PartyRepositoryWithTx
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryWithTx) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

// Ensure partyService implements the portssvc.PartySvcFacade interface
var _ portssvc.PartySvcFacade = (*partyService)(nil)

// ListParties retrieves every party with its computed current balance.
func (s *partyService) ListParties(ctx context.Context) ([]domain.PartyBalance, error) {
	return s.partyRepo.ListPartyBalances(ctx)
}

// GetPartyBalance returns the current and opening balance of a party. An
// unknown name is not an error here; the invoice entry form probes names as
// the user types, so both values come back zero instead.
func (s *partyService) GetPartyBalance(ctx context.Context, partyName string) (*dto.PartyBalanceResponse, error) {
	party, err := s.partyRepo.FindPartyByName(ctx, partyName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &dto.PartyBalanceResponse{}, nil
		}
		return nil, err
	}

	invoiceTotal, paymentTotal, err := s.partyRepo.BalanceSums(ctx, party.PartyID)
	if err != nil {
		return nil, err
	}

	return &dto.PartyBalanceResponse{
		Balance:               ledgercalc.CurrentBalance(party.OpeningBalance, invoiceTotal, paymentTotal),
		InitialOpeningBalance: party.OpeningBalance,
	}, nil
}

// OpeningBalanceHistory retrieves the opening-balance audit log of a party.
func (s *partyService) OpeningBalanceHistory(ctx context.Context, partyName string) ([]domain.OpeningBalanceAdjustment, error) {
	party, err := s.partyRepo.FindPartyByName(ctx, partyName)
	if err != nil {
		return nil, err
	}
	return s.partyRepo.ListAdjustmentsByParty(ctx, party.PartyID)
}

// SetOpeningBalance upserts the party's opening balance and appends an audit
// row. Stamped previous balances on existing invoices are left alone; only
// freshly computed balances pick the new opening up.
func (s *partyService) SetOpeningBalance(ctx context.Context, partyName string, req dto.SetOpeningBalanceRequest) (*dto.SetOpeningBalanceResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	newBalance := *req.PrevBalance

	// The pre-check decides the HTTP status only; the upsert below is what
	// guarantees the row exists.
	created := false
	if _, err := s.partyRepo.FindPartyByName(ctx, partyName); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		created = true
	}

	tx, err := s.partyRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.partyRepo.Rollback(ctx, tx)

	party, err := s.partyRepo.EnsurePartyInTx(ctx, tx, partyName)
	if err != nil {
		return nil, err
	}

	if err := s.partyRepo.UpdateOpeningBalanceInTx(ctx, tx, party.PartyID, newBalance); err != nil {
		return nil, err
	}

	now := time.Now()
	adjustment := domain.OpeningBalanceAdjustment{
		PartyID:        party.PartyID,
		AdjustmentDate: now,
		OldBalance:     party.OpeningBalance,
		NewBalance:     newBalance,
		Reason:         req.Reason,
		CreatedAt:      now,
	}
	if err := s.partyRepo.SaveAdjustmentInTx(ctx, tx, adjustment); err != nil {
		return nil, err
	}

	invoiceTotal, paymentTotal, err := s.partyRepo.BalanceSumsInTx(ctx, tx, party.PartyID)
	if err != nil {
		return nil, err
	}

	if err := s.partyRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Opening balance set",
		slog.String("party_name", partyName),
		slog.String("old_balance", party.OpeningBalance.String()),
		slog.String("new_balance", newBalance.String()),
		slog.Bool("party_created", created),
	)

	return &dto.SetOpeningBalanceResult{
		Created:             created,
		CurrentPartyBalance: ledgercalc.CurrentBalance(newBalance, invoiceTotal, paymentTotal),
	}, nil
}
