package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	"github.com/hamidtraders/invoice_ledger_app/internal/models"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

const paymentColumns = `
	pm.payment_id, pm.party_id, p.party_name, pm.amount, pm.payment_date, pm.remarks, pm.created_at`

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, q querier, query string, args ...any) ([]domain.Payment, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.PaymentID, &m.PartyID, &m.PartyName, &m.Amount, &m.PaymentDate, &m.Remarks, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}

const paymentByIDQuery = `
	SELECT ` + paymentColumns + `
	FROM payments pm
	JOIN parties p ON p.party_id = pm.party_id
	WHERE pm.payment_id = $1;
`

func (r *PgxPaymentRepository) findPaymentByID(ctx context.Context, q querier, paymentID int64) (*domain.Payment, error) {
	var m models.Payment
	err := q.QueryRow(ctx, paymentByIDQuery, paymentID).Scan(
		&m.PaymentID, &m.PartyID, &m.PartyName, &m.Amount, &m.PaymentDate, &m.Remarks, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment", err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// FindPaymentByID retrieves a payment by its id.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return r.findPaymentByID(ctx, r.Pool, paymentID)
}

// FindPaymentByIDInTx is FindPaymentByID inside the transaction.
func (r *PgxPaymentRepository) FindPaymentByIDInTx(ctx context.Context, tx pgx.Tx, paymentID int64) (*domain.Payment, error) {
	return r.findPaymentByID(ctx, tx, paymentID)
}

// ListPayments retrieves payments filtered by party name and date range,
// newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, partyName string, startDate, endDate *time.Time) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments pm
		JOIN parties p ON p.party_id = pm.party_id
		WHERE 1=1
	`
	args := []any{}

	if partyName != "" {
		args = append(args, partyName)
		query += ` AND p.party_name = $` + strconv.Itoa(len(args))
	}
	if startDate != nil {
		args = append(args, *startDate)
		query += ` AND pm.payment_date >= $` + strconv.Itoa(len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		query += ` AND pm.payment_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY pm.payment_date DESC, pm.payment_id DESC;`

	return r.queryPayments(ctx, r.Pool, query, args...)
}

const paymentsByPartyQuery = `
	SELECT ` + paymentColumns + `
	FROM payments pm
	JOIN parties p ON p.party_id = pm.party_id
	WHERE pm.party_id = $1
	ORDER BY pm.payment_date ASC, pm.payment_id ASC;
`

// FindPaymentsByParty retrieves every payment of a party, oldest first.
func (r *PgxPaymentRepository) FindPaymentsByParty(ctx context.Context, partyID int64) ([]domain.Payment, error) {
	return r.queryPayments(ctx, r.Pool, paymentsByPartyQuery, partyID)
}

// FindPaymentsByPartyInTx is FindPaymentsByParty inside the transaction.
func (r *PgxPaymentRepository) FindPaymentsByPartyInTx(ctx context.Context, tx pgx.Tx, partyID int64) ([]domain.Payment, error) {
	return r.queryPayments(ctx, tx, paymentsByPartyQuery, partyID)
}

// SavePaymentInTx inserts the payment and returns its new id.
func (r *PgxPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) (int64, error) {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (party_id, amount, payment_date, remarks)
		VALUES ($1, $2, $3, $4)
		RETURNING payment_id;
	`

	var paymentID int64
	if err := tx.QueryRow(ctx, query, m.PartyID, m.Amount, m.PaymentDate, m.Remarks).Scan(&paymentID); err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert payment", err)
	}
	return paymentID, nil
}

// DeletePaymentInTx deletes the payment row.
func (r *PgxPaymentRepository) DeletePaymentInTx(ctx context.Context, tx pgx.Tx, paymentID int64) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment not found for delete")
	}
	return nil
}
