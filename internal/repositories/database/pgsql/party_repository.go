package pgsql

import (
	"context"
	"errors"

	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	"github.com/hamidtraders/invoice_ledger_app/internal/models"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for party and opening-balance data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryWithTx {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPartyRepository implements portsrepo.PartyRepositoryWithTx
var _ portsrepo.PartyRepositoryWithTx = (*PgxPartyRepository)(nil)

const partyColumns = `party_id, party_name, opening_balance, created_at`

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(&m.PartyID, &m.PartyName, &m.OpeningBalance, &m.CreatedAt)
	return m, err
}

// FindPartyByName retrieves a party by its unique name.
func (r *PgxPartyRepository) FindPartyByName(ctx context.Context, name string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_name = $1;`

	m, err := scanParty(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find party "+name, err)
	}

	party := mapping.ToDomainParty(m)
	return &party, nil
}

// EnsurePartyInTx inserts the party with a zero opening balance if it does not
// exist. The ON CONFLICT DO UPDATE arm takes the row lock on the existing row,
// so either way the caller holds the party lock for the rest of the
// transaction.
func (r *PgxPartyRepository) EnsurePartyInTx(ctx context.Context, tx pgx.Tx, name string) (domain.Party, error) {
	query := `
		INSERT INTO parties (party_name, opening_balance)
		VALUES ($1, 0)
		ON CONFLICT (party_name) DO UPDATE SET party_name = EXCLUDED.party_name
		RETURNING ` + partyColumns + `;
	`

	m, err := scanParty(tx.QueryRow(ctx, query, name))
	if err != nil {
		return domain.Party{}, apperrors.NewAppError(500, "failed to ensure party "+name, err)
	}
	return mapping.ToDomainParty(m), nil
}

// FindPartiesByNamesForUpdate locks the named party rows in one statement.
// Ordering by name keeps the lock order deterministic when an invoice moves
// between two parties.
func (r *PgxPartyRepository) FindPartiesByNamesForUpdate(ctx context.Context, tx pgx.Tx, names []string) (map[string]domain.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE party_name = ANY($1)
		ORDER BY party_name
		FOR UPDATE;
	`

	rows, err := tx.Query(ctx, query, names)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock parties for update", err)
	}
	defer rows.Close()

	parties := make(map[string]domain.Party, len(names))
	for rows.Next() {
		var m models.Party
		if err := rows.Scan(&m.PartyID, &m.PartyName, &m.OpeningBalance, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party row", err)
		}
		parties[m.PartyName] = mapping.ToDomainParty(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party rows", err)
	}

	for _, name := range names {
		if _, ok := parties[name]; !ok {
			return nil, apperrors.NewNotFoundError("party " + name + " not found")
		}
	}
	return parties, nil
}

// ListPartyBalances computes the current balance of every party in SQL:
// opening balance plus invoice totals minus payment amounts, rounded to 2
// decimal places, ordered by name.
func (r *PgxPartyRepository) ListPartyBalances(ctx context.Context) ([]domain.PartyBalance, error) {
	query := `
		SELECT p.party_name,
		       ROUND(p.opening_balance
		             + COALESCE((SELECT SUM(i.total_amount) FROM invoices i WHERE i.party_id = p.party_id), 0)
		             - COALESCE((SELECT SUM(pm.amount) FROM payments pm WHERE pm.party_id = p.party_id), 0), 2)
		FROM parties p
		ORDER BY p.party_name;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query party balances", err)
	}
	defer rows.Close()

	balances := []domain.PartyBalance{}
	for rows.Next() {
		var b domain.PartyBalance
		if err := rows.Scan(&b.PartyName, &b.CurrentBalance); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party balance row", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party balance rows", err)
	}
	return balances, nil
}

// BalanceSums returns the invoice-total and payment-amount sums for a party.
func (r *PgxPartyRepository) BalanceSums(ctx context.Context, partyID int64) (decimal.Decimal, decimal.Decimal, error) {
	return r.balanceSums(ctx, r.Pool, partyID)
}

// BalanceSumsInTx is BalanceSums evaluated inside the transaction.
func (r *PgxPartyRepository) BalanceSumsInTx(ctx context.Context, tx pgx.Tx, partyID int64) (decimal.Decimal, decimal.Decimal, error) {
	return r.balanceSums(ctx, tx, partyID)
}

func (r *PgxPartyRepository) balanceSums(ctx context.Context, q querier, partyID int64) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE((SELECT SUM(total_amount) FROM invoices WHERE party_id = $1), 0),
		       COALESCE((SELECT SUM(amount) FROM payments WHERE party_id = $1), 0);
	`

	var invoiceTotal, paymentTotal decimal.Decimal
	if err := q.QueryRow(ctx, query, partyID).Scan(&invoiceTotal, &paymentTotal); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to query balance sums", err)
	}
	return invoiceTotal, paymentTotal, nil
}

// UpdateOpeningBalanceInTx sets the party's opening balance.
func (r *PgxPartyRepository) UpdateOpeningBalanceInTx(ctx context.Context, tx pgx.Tx, partyID int64, newBalance decimal.Decimal) error {
	query := `UPDATE parties SET opening_balance = $2 WHERE party_id = $1;`

	cmdTag, err := tx.Exec(ctx, query, partyID, newBalance)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update opening balance", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("party not found for opening balance update")
	}
	return nil
}

// SaveAdjustmentInTx appends one opening-balance audit row.
func (r *PgxPartyRepository) SaveAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.OpeningBalanceAdjustment) error {
	m := mapping.ToModelAdjustment(adjustment)
	query := `
		INSERT INTO opening_balance_adjustments (party_id, adjustment_date, old_balance, new_balance, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err := tx.Exec(ctx, query, m.PartyID, m.AdjustmentDate, m.OldBalance, m.NewBalance, m.Reason, m.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert opening balance adjustment", err)
	}
	return nil
}

// ListAdjustmentsByParty retrieves the audit rows of a party, oldest first.
func (r *PgxPartyRepository) ListAdjustmentsByParty(ctx context.Context, partyID int64) ([]domain.OpeningBalanceAdjustment, error) {
	query := `
		SELECT adjustment_id, party_id, adjustment_date, old_balance, new_balance, reason, created_at
		FROM opening_balance_adjustments
		WHERE party_id = $1
		ORDER BY adjustment_date ASC, created_at ASC;
	`

	rows, err := r.Pool.Query(ctx, query, partyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query opening balance adjustments", err)
	}
	defer rows.Close()

	adjustments := []models.OpeningBalanceAdjustment{}
	for rows.Next() {
		var m models.OpeningBalanceAdjustment
		if err := rows.Scan(&m.AdjustmentID, &m.PartyID, &m.AdjustmentDate, &m.OldBalance, &m.NewBalance, &m.Reason, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan adjustment row", err)
		}
		adjustments = append(adjustments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating adjustment rows", err)
	}
	return mapping.ToDomainAdjustmentSlice(adjustments), nil
}
