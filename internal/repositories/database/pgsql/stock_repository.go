package pgsql

import (
	"context"

	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	"github.com/hamidtraders/invoice_ledger_app/internal/models"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/mapping"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/stockalloc"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for stock batch data.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryWithTx {
	return &PgxStockRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxStockRepository implements portsrepo.StockRepositoryWithTx
var _ portsrepo.StockRepositoryWithTx = (*PgxStockRepository)(nil)

const stockColumns = `batch_id, product_name, batch_no, received_date, quantity, created_at`

// ListBatches retrieves every stock batch, ordered product ASC then date DESC.
func (r *PgxStockRepository) ListBatches(ctx context.Context) ([]domain.StockBatch, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_batches
		ORDER BY product_name ASC, received_date DESC, batch_id DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stock batches", err)
	}
	defer rows.Close()

	batches := []models.StockBatch{}
	for rows.Next() {
		var m models.StockBatch
		if err := rows.Scan(&m.BatchID, &m.ProductName, &m.BatchNo, &m.ReceivedDate, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock batch row", err)
		}
		batches = append(batches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock batch rows", err)
	}
	return mapping.ToDomainStockBatchSlice(batches), nil
}

// SaveBatches inserts the given batches inside one transaction so a storage
// failure inserts nothing.
func (r *PgxStockRepository) SaveBatches(ctx context.Context, batches []domain.StockBatch) error {
	if len(batches) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	query := `
		INSERT INTO stock_batches (product_name, batch_no, received_date, quantity)
		VALUES ($1, $2, $3, $4);
	`
	for _, b := range batches {
		m := mapping.ToModelStockBatch(b)
		batch.Queue(query, m.ProductName, m.BatchNo, m.ReceivedDate, m.Quantity)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert stock batches", err)
	}
	return r.Commit(ctx, tx)
}

// FindBatchesByProductsForUpdate locks every batch row of the named products
// and returns them grouped by product, oldest first, so the caller can plan a
// FIFO deduction without racing another deduction.
func (r *PgxStockRepository) FindBatchesByProductsForUpdate(ctx context.Context, tx pgx.Tx, productNames []string) (map[string][]domain.StockBatch, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_batches
		WHERE product_name = ANY($1)
		ORDER BY product_name ASC, received_date ASC, batch_id ASC
		FOR UPDATE;
	`

	rows, err := tx.Query(ctx, query, productNames)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock stock batches for update", err)
	}
	defer rows.Close()

	grouped := make(map[string][]domain.StockBatch, len(productNames))
	for _, name := range productNames {
		grouped[name] = []domain.StockBatch{}
	}
	for rows.Next() {
		var m models.StockBatch
		if err := rows.Scan(&m.BatchID, &m.ProductName, &m.BatchNo, &m.ReceivedDate, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock batch row", err)
		}
		grouped[m.ProductName] = append(grouped[m.ProductName], mapping.ToDomainStockBatch(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock batch rows", err)
	}
	return grouped, nil
}

// UpdateBatchQuantitiesInTx persists the remaining quantities of a deduction
// plan in one batch.
func (r *PgxStockRepository) UpdateBatchQuantitiesInTx(ctx context.Context, tx pgx.Tx, updates []stockalloc.BatchUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `UPDATE stock_batches SET quantity = $2 WHERE batch_id = $1;`
	for _, u := range updates {
		batch.Queue(query, u.BatchID, u.Quantity)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to update stock batch quantities", err)
	}
	return nil
}
