package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
	"github.com/hamidtraders/invoice_ledger_app/internal/middleware"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/ledgercalc"
	"github.com/jackc/pgx/v5"
)

type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryWithTx
	partyRepo   portsrepo.PartyRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryWithTx, partyRepo portsrepo.PartyRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		partyRepo:   partyRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// ListPayments retrieves payments matching the given filters.
func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, error) {
	startDate, endDate, err := parseDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}
	return s.paymentRepo.ListPayments(ctx, params.PartyName, startDate, endDate)
}

// CreatePayment records a payment against a party, creating the party when the
// name is new. Stored invoice balances do not include payments, so recording
// one needs no forward sweep.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount := *req.Amount
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	paymentDate, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.paymentRepo.Rollback(ctx, tx)

	party, err := s.partyRepo.EnsurePartyInTx(ctx, tx, req.PartyName)
	if err != nil {
		return nil, err
	}

	payment := domain.Payment{
		PartyID:     party.PartyID,
		PartyName:   party.PartyName,
		Amount:      amount,
		PaymentDate: paymentDate,
		Remarks:     req.Remarks,
	}
	paymentID, err := s.paymentRepo.SavePaymentInTx(ctx, tx, payment)
	if err != nil {
		return nil, err
	}

	invoiceTotal, paymentTotal, err := s.partyRepo.BalanceSumsInTx(ctx, tx, party.PartyID)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Payment recorded",
		slog.Int64("payment_id", paymentID),
		slog.String("party_name", party.PartyName),
		slog.String("amount", amount.String()),
	)

	return &dto.CreatePaymentResponse{
		Message:             "Payment recorded successfully.",
		PaymentID:           paymentID,
		CurrentPartyBalance: ledgercalc.CurrentBalance(party.OpeningBalance, invoiceTotal, paymentTotal),
	}, nil
}

// DeletePayment removes a payment and rebuilds the party's invoices dated on
// or after the payment's date, since their stamped balances may have been
// computed with this payment included.
func (s *paymentService) DeletePayment(ctx context.Context, paymentID int64) (*dto.DeletePaymentResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.paymentRepo.Rollback(ctx, tx)

	// Read the payment inside the transaction; the rows-affected check in the
	// delete below catches a concurrent deletion that slips past this lookup.
	payment, err := s.paymentRepo.FindPaymentByIDInTx(ctx, tx, paymentID)
	if err != nil {
		return nil, err
	}
	parties, err := s.partyRepo.FindPartiesByNamesForUpdate(ctx, tx, []string{payment.PartyName})
	if err != nil {
		return nil, err
	}
	party := parties[payment.PartyName]

	if err := s.paymentRepo.DeletePaymentInTx(ctx, tx, paymentID); err != nil {
		return nil, err
	}

	if err := s.sweepInTx(ctx, tx, party, ledgercalc.CutoffStartOfDay(payment.PaymentDate)); err != nil {
		return nil, err
	}

	invoiceTotal, paymentTotal, err := s.partyRepo.BalanceSumsInTx(ctx, tx, party.PartyID)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Payment deleted",
		slog.Int64("payment_id", paymentID),
		slog.String("party_name", party.PartyName),
	)

	return &dto.DeletePaymentResponse{
		Message:             "Payment deleted successfully.",
		PartyName:           party.PartyName,
		CurrentPartyBalance: ledgercalc.CurrentBalance(party.OpeningBalance, invoiceTotal, paymentTotal),
	}, nil
}

func (s *paymentService) sweepInTx(ctx context.Context, tx pgx.Tx, party domain.Party, cut ledgercalc.Cutoff) error {
	invoices, err := s.invoiceRepo.FindInvoicesByPartyInTx(ctx, tx, party.PartyID)
	if err != nil {
		return err
	}
	payments, err := s.paymentRepo.FindPaymentsByPartyInTx(ctx, tx, party.PartyID)
	if err != nil {
		return err
	}

	updates := ledgercalc.RecalculateForward(party.OpeningBalance, invoices, payments, cut)
	return s.invoiceRepo.ApplyBalanceUpdatesInTx(ctx, tx, updates)
}
