package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
	"github.com/hamidtraders/invoice_ledger_app/internal/middleware"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/stockalloc"
)

type stockService struct {
	stockRepo portsrepo.StockRepositoryWithTx
}

// NewStockService creates a new StockService.
func NewStockService(stockRepo portsrepo.StockRepositoryWithTx) portssvc.StockSvcFacade {
	return &stockService{stockRepo: stockRepo}
}

// Ensure stockService implements the portssvc.StockSvcFacade interface
var _ portssvc.StockSvcFacade = (*stockService)(nil)

// ListStock retrieves every batch.
func (s *stockService) ListStock(ctx context.Context) ([]domain.StockBatch, error) {
	return s.stockRepo.ListBatches(ctx)
}

// AddBatches inserts the valid entries of the payload and returns how many
// were processed. Entries with a missing product name, an unparsable date, or
// a non-positive quantity are skipped rather than failing the whole call.
func (s *stockService) AddBatches(ctx context.Context, req dto.AddStockBatchesRequest) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	batches := make([]domain.StockBatch, 0, len(req.Items))
	for _, entry := range req.Items {
		if entry.ProductName == "" || !entry.Quantity.IsPositive() {
			continue
		}
		receivedDate, err := dto.ParseDate(entry.Date)
		if err != nil {
			continue
		}
		batches = append(batches, domain.StockBatch{
			ProductName:  entry.ProductName,
			BatchNo:      entry.BatchNo,
			ReceivedDate: receivedDate,
			Quantity:     entry.Quantity,
		})
	}
	if len(batches) == 0 {
		return 0, fmt.Errorf("%w: no valid stock entries in payload", apperrors.ErrValidation)
	}

	if err := s.stockRepo.SaveBatches(ctx, batches); err != nil {
		return 0, err
	}

	logger.Info("Stock batches added",
		slog.Int("accepted", len(batches)),
		slog.Int("skipped", len(req.Items)-len(batches)),
	)
	return len(batches), nil
}

// DeductStock drains the requested quantities oldest-batch-first. Entries
// with no product name or a non-positive quantity are skipped, like invalid
// rows in AddBatches. The batch rows of every named product are locked up
// front, so concurrent deductions of the same product serialize and
// quantities cannot go negative. Any shortfall aborts the whole call with
// every shortage reported.
func (s *stockService) DeductStock(ctx context.Context, req dto.DeductStockRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	planRequests := make([]stockalloc.Request, 0, len(req.Items))
	for _, entry := range req.Items {
		if entry.ProductName == "" || !entry.Qty.IsPositive() {
			continue
		}
		planRequests = append(planRequests, stockalloc.Request{ProductName: entry.ProductName, Quantity: entry.Qty})
	}
	if len(planRequests) == 0 {
		return fmt.Errorf("%w: no valid deduction entries in payload", apperrors.ErrValidation)
	}

	productNames := make([]string, 0, len(planRequests))
	seen := make(map[string]bool, len(planRequests))
	for _, r := range planRequests {
		if seen[r.ProductName] {
			continue
		}
		seen[r.ProductName] = true
		productNames = append(productNames, r.ProductName)
	}

	tx, err := s.stockRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.stockRepo.Rollback(ctx, tx)

	batchesByProduct, err := s.stockRepo.FindBatchesByProductsForUpdate(ctx, tx, productNames)
	if err != nil {
		return err
	}

	updates, shortages := stockalloc.Plan(batchesByProduct, planRequests)
	if len(shortages) > 0 {
		return &apperrors.InsufficientStockError{Message: shortageMessage(shortages)}
	}

	if err := s.stockRepo.UpdateBatchQuantitiesInTx(ctx, tx, updates); err != nil {
		return err
	}
	if err := s.stockRepo.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Stock deducted",
		slog.Int("products", len(planRequests)),
		slog.Int("batches_touched", len(updates)),
	)
	return nil
}

// shortageMessage renders every shortage in one message so the caller sees
// the full picture, not just the first failing product.
func shortageMessage(shortages []domain.StockShortage) string {
	parts := make([]string, len(shortages))
	for i, sh := range shortages {
		parts[i] = fmt.Sprintf("Not enough stock for '%s'. Available: %s, Required: %s",
			sh.ProductName, sh.Available.String(), sh.Required.String())
	}
	return strings.Join(parts, ". ")
}
