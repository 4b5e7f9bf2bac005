package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
	"github.com/hamidtraders/invoice_ledger_app/internal/middleware"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/ledgercalc"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// invoiceService provides the ledger-mutating invoice operations. Every write
// locks the affected party row(s) first, so concurrent edits to one party's
// chain are serialized and a forward sweep never reads a half-applied chain.
type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryWithTx
	partyRepo   portsrepo.PartyRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryWithTx, partyRepo portsrepo.PartyRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		partyRepo:   partyRepo,
		paymentRepo: paymentRepo,
	}
}

// Ensure invoiceService implements the portssvc.InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// sweepInTx rebuilds previous_balance/grand_total for every invoice of the
// party after the cutoff and persists the result. The sweep itself is the pure
// ledgercalc pass; this only feeds it rows and applies its output.
func (s *invoiceService) sweepInTx(ctx context.Context, tx pgx.Tx, party domain.Party, cut ledgercalc.Cutoff) error {
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

func (s *invoiceService) currentBalanceInTx(ctx context.Context, tx pgx.Tx, party domain.Party) (decimal.Decimal, error) {
	invoiceTotal, paymentTotal, err := s.partyRepo.BalanceSumsInTx(ctx, tx, party.PartyID)
	if err != nil {
		return decimal.Zero, err
	}
	return ledgercalc.CurrentBalance(party.OpeningBalance, invoiceTotal, paymentTotal), nil
}

// CreateInvoice persists a new invoice. The invoice is stamped with the party
// balance at its chain position (not just the end-of-chain balance), and a
// forward sweep repairs later invoices when the new one is back-dated.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoiceDate, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	items := dto.ToDomainInvoiceItems(req.Items)
	totalAmount := ledgercalc.ItemsTotal(items)

	tx, err := s.invoiceRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.invoiceRepo.Rollback(ctx, tx)

	// Locking the party row serializes all writers against this chain.
	party, err := s.partyRepo.EnsurePartyInTx(ctx, tx, req.PartyName)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindInvoicesByPartyInTx(ctx, tx, party.PartyID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindPaymentsByPartyInTx(ctx, tx, party.PartyID)
	if err != nil {
		return nil, err
	}

	cut := ledgercalc.CutoffAt(invoiceDate, req.InvoiceNumber)
	previousBalance := ledgercalc.BalanceThrough(party.OpeningBalance, invoices, payments, cut).Round(2)
	grandTotal := previousBalance.Add(totalAmount)

	invoice := domain.Invoice{
		InvoiceNumber:   req.InvoiceNumber,
		PartyID:         party.PartyID,
		PartyName:       party.PartyName,
		InvoiceDate:     invoiceDate,
		TotalAmount:     totalAmount,
		PreviousBalance: previousBalance,
		GrandTotal:      grandTotal,
	}
	invoiceID, err := s.invoiceRepo.SaveInvoiceInTx(ctx, tx, invoice, items)
	if err != nil {
		return nil, err
	}
	invoice.InvoiceID = invoiceID

	// A back-dated insert changes the chain after it; appending at the end
	// makes this sweep a no-op.
	invoices = append(invoices, invoice)
	updates := ledgercalc.RecalculateForward(party.OpeningBalance, invoices, payments, cut)
	if err := s.invoiceRepo.ApplyBalanceUpdatesInTx(ctx, tx, updates); err != nil {
		return nil, err
	}

	maxNumeric, err := s.invoiceRepo.MaxNumericInvoiceNumberInTx(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Invoice created",
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("party_name", party.PartyName),
		slog.String("grand_total", grandTotal.String()),
	)

	return &dto.CreateInvoiceResponse{
		Message:                       "Invoice created successfully.",
		InvoiceNumber:                 invoice.InvoiceNumber,
		NextInvoiceNumber:             ledgercalc.NextInvoiceNumber(maxNumeric),
		PreviousBalanceForNextInvoice: grandTotal,
	}, nil
}

// UpdateInvoice replaces an invoice's party, date, and items. The stored
// previous_balance travels along unchanged; only what the invoice itself
// contributes is recomputed, and forward sweeps repair both affected chains.
func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceNumber string, req dto.UpdateInvoiceRequest) (*dto.UpdateInvoiceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	newDate, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	items := dto.ToDomainInvoiceItems(req.Items)
	newTotal := ledgercalc.ItemsTotal(items)

	tx, err := s.invoiceRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.invoiceRepo.Rollback(ctx, tx)

	original, err := s.invoiceRepo.FindInvoiceByNumberInTx(ctx, tx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	partyChanged := req.PartyName != original.PartyName

	// Lock every involved party in one ordered statement so two updates
	// moving invoices between the same pair of parties cannot deadlock.
	lockNames := []string{original.PartyName}
	if partyChanged {
		if _, err := s.partyRepo.EnsurePartyInTx(ctx, tx, req.PartyName); err != nil {
			return nil, err
		}
		lockNames = append(lockNames, req.PartyName)
	}
	parties, err := s.partyRepo.FindPartiesByNamesForUpdate(ctx, tx, lockNames)
	if err != nil {
		return nil, err
	}
	originalParty := parties[original.PartyName]
	currentParty := parties[req.PartyName]

	updated := *original
	updated.PartyID = currentParty.PartyID
	updated.PartyName = currentParty.PartyName
	updated.InvoiceDate = newDate
	updated.TotalAmount = newTotal
	updated.GrandTotal = updated.PreviousBalance.Add(newTotal)

	if err := s.invoiceRepo.UpdateInvoiceInTx(ctx, tx, updated); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.ReplaceItemsInTx(ctx, tx, updated.InvoiceID, items); err != nil {
		return nil, err
	}

	if partyChanged {
		// Later invoices of the original party must stop including this
		// invoice's contribution.
		if err := s.sweepInTx(ctx, tx, originalParty, ledgercalc.CutoffAt(original.InvoiceDate, invoiceNumber)); err != nil {
			return nil, err
		}
	}
	if partyChanged || !newTotal.Equal(original.TotalAmount) {
		if err := s.sweepInTx(ctx, tx, currentParty, ledgercalc.CutoffAt(newDate, invoiceNumber)); err != nil {
			return nil, err
		}
	}

	currentBalance, err := s.currentBalanceInTx(ctx, tx, currentParty)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Invoice updated",
		slog.String("invoice_number", invoiceNumber),
		slog.String("party_name", currentParty.PartyName),
		slog.Bool("party_changed", partyChanged),
	)

	return &dto.UpdateInvoiceResponse{
		Message:                       "Invoice updated successfully.",
		PreviousBalanceForNextInvoice: currentBalance,
		PartyName:                     currentParty.PartyName,
	}, nil
}

// DeleteInvoice removes an invoice and sweeps the party's later invoices
// forward so they no longer include the deleted amount.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceNumber string) (*dto.DeleteInvoiceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.invoiceRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.invoiceRepo.Rollback(ctx, tx)

	invoice, err := s.invoiceRepo.FindInvoiceByNumberInTx(ctx, tx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	parties, err := s.partyRepo.FindPartiesByNamesForUpdate(ctx, tx, []string{invoice.PartyName})
	if err != nil {
		return nil, err
	}
	party := parties[invoice.PartyName]

	if err := s.invoiceRepo.DeleteInvoiceInTx(ctx, tx, invoice.InvoiceID); err != nil {
		return nil, err
	}
	if err := s.sweepInTx(ctx, tx, party, ledgercalc.CutoffAt(invoice.InvoiceDate, invoiceNumber)); err != nil {
		return nil, err
	}

	currentBalance, err := s.currentBalanceInTx(ctx, tx, party)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Invoice deleted",
		slog.String("invoice_number", invoiceNumber),
		slog.String("party_name", party.PartyName),
	)

	return &dto.DeleteInvoiceResponse{
		Message:             "Invoice deleted successfully.",
		PartyName:           party.PartyName,
		CurrentPartyBalance: currentBalance,
	}, nil
}

// GetInvoice retrieves one invoice with its items.
func (s *invoiceService) GetInvoice(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	items, err := s.invoiceRepo.FindItemsByInvoiceID(ctx, invoice.InvoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return invoice, nil
}

// ListInvoices retrieves invoices (with items) matching the given filters.
func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error) {
	startDate, endDate, err := parseDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, params.PartyName, startDate, endDate)
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
	for i := range invoices {
		invoices[i].Items = itemsByInvoice[invoices[i].InvoiceID]
	}
	return invoices, nil
}

// NextInvoiceNumber returns the next free numeric invoice number.
func (s *invoiceService) NextInvoiceNumber(ctx context.Context) (string, error) {
	maxNumeric, err := s.invoiceRepo.MaxNumericInvoiceNumber(ctx)
	if err != nil {
		return "", err
	}
	return ledgercalc.NextInvoiceNumber(maxNumeric), nil
}

// parseDateRange parses optional wire-format date filters.
func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time
	if start != "" {
		t, err := dto.ParseDate(start)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		startDate = &t
	}
	if end != "" {
		t, err := dto.ParseDate(end)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		endDate = &t
	}
	return startDate, endDate, nil
}
