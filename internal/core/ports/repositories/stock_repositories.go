package repositories

import (
	"context"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/stockalloc"
	"github.com/jackc/pgx/v5"
)

// StockReader defines read operations for stock batch data
type StockReader interface {
	// ListBatches retrieves every stock batch, ordered product name ASC then
	// received date DESC.
	ListBatches(ctx context.Context) ([]domain.StockBatch, error)
}

// StockWriter defines write operations for stock batch data
type StockWriter interface {
	// SaveBatches inserts the given batches in one batch statement.
	SaveBatches(ctx context.Context, batches []domain.StockBatch) error

	// FindBatchesByProductsForUpdate locks every batch row of the named
	// products and returns them grouped by product, ordered oldest first
	// (received date ASC, batch id ASC).
	FindBatchesByProductsForUpdate(ctx context.Context, tx pgx.Tx, productNames []string) (map[string][]domain.StockBatch, error)

	// UpdateBatchQuantitiesInTx persists the remaining quantities produced by
	// a FIFO deduction plan.
	UpdateBatchQuantitiesInTx(ctx context.Context, tx pgx.Tx, updates []stockalloc.BatchUpdate) error
}

// StockRepositoryFacade combines all stock-related repository interfaces
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}

// StockRepositoryWithTx extends StockRepositoryFacade with transaction capabilities
type StockRepositoryWithTx interface {
	StockRepositoryFacade
	TransactionManager
}
