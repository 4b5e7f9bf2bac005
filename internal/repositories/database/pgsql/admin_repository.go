package pgsql

import (
	"context"

	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAdminRepository struct {
	BaseRepository
}

// newPgxAdminRepository creates a new repository for destructive maintenance.
func newPgxAdminRepository(pool *pgxpool.Pool) portsrepo.AdminRepositoryFacade {
	return &PgxAdminRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAdminRepository implements portsrepo.AdminRepositoryFacade
var _ portsrepo.AdminRepositoryFacade = (*PgxAdminRepository)(nil)

// DeleteAllData truncates every application table and resets identities, which
// re-initializes the database without touching the schema.
func (r *PgxAdminRepository) DeleteAllData(ctx context.Context) error {
	query := `
		TRUNCATE TABLE invoice_items, invoices, payments, opening_balance_adjustments, parties, stock_batches
		RESTART IDENTITY CASCADE;
	`
	if _, err := r.Pool.Exec(ctx, query); err != nil {
		return apperrors.NewAppError(500, "failed to delete all data", err)
	}
	return nil
}
