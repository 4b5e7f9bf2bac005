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
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/ledgercalc"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice and item data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryWithTx
var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `
	i.invoice_id, i.invoice_number, i.party_id, p.party_name, i.invoice_date,
	i.total_amount, i.previous_balance, i.grand_total, i.created_at`

// numericNumberExpr orders invoice numbers by their integer value when the
// text is all digits; everything else orders as zero with the row id as the
// final tie-break.
const numericNumberExpr = `CASE WHEN i.invoice_number ~ '^[0-9]+$' THEN CAST(i.invoice_number AS BIGINT) ELSE 0 END`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.PartyID,
		&m.PartyName,
		&m.InvoiceDate,
		&m.TotalAmount,
		&m.PreviousBalance,
		&m.GrandTotal,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxInvoiceRepository) queryInvoices(ctx context.Context, q querier, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(
			&m.InvoiceID,
			&m.InvoiceNumber,
			&m.PartyID,
			&m.PartyName,
			&m.InvoiceDate,
			&m.TotalAmount,
			&m.PreviousBalance,
			&m.GrandTotal,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return mapping.ToDomainInvoiceSlice(invoices), nil
}

func (r *PgxInvoiceRepository) findInvoiceByNumber(ctx context.Context, q querier, invoiceNumber string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices i
		JOIN parties p ON p.party_id = i.party_id
		WHERE i.invoice_number = $1;
	`

	m, err := scanInvoice(q.QueryRow(ctx, query, invoiceNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice "+invoiceNumber, err)
	}

	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// FindInvoiceByNumber retrieves an invoice (without items) by its number.
func (r *PgxInvoiceRepository) FindInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	return r.findInvoiceByNumber(ctx, r.Pool, invoiceNumber)
}

// FindInvoiceByNumberInTx is FindInvoiceByNumber inside the transaction.
func (r *PgxInvoiceRepository) FindInvoiceByNumberInTx(ctx context.Context, tx pgx.Tx, invoiceNumber string) (*domain.Invoice, error) {
	return r.findInvoiceByNumber(ctx, tx, invoiceNumber)
}

// SaveInvoiceInTx inserts the invoice row and its items. A duplicate invoice
// number maps to apperrors.ErrDuplicate; numbers are globally unique across
// parties.
func (r *PgxInvoiceRepository) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, items []domain.InvoiceItem) (int64, error) {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (invoice_number, party_id, invoice_date, total_amount, previous_balance, grand_total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING invoice_id;
	`

	var invoiceID int64
	err := tx.QueryRow(ctx, query,
		m.InvoiceNumber,
		m.PartyID,
		m.InvoiceDate,
		m.TotalAmount,
		m.PreviousBalance,
		m.GrandTotal,
	).Scan(&invoiceID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.NewAppError(409, "invoice number "+m.InvoiceNumber+" already exists", apperrors.ErrDuplicate)
		}
		return 0, apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceNumber, err)
	}

	if err := r.insertItems(ctx, tx, invoiceID, items); err != nil {
		return 0, err
	}
	return invoiceID, nil
}

func (r *PgxInvoiceRepository) insertItems(ctx context.Context, tx pgx.Tx, invoiceID int64, items []domain.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO invoice_items (invoice_id, product_name, quantity, packing, unit_price, amount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, item := range items {
		mi := mapping.ToModelInvoiceItem(item)
		batch.Queue(itemQuery, invoiceID, mi.ProductName, mi.Quantity, mi.Packing, mi.UnitPrice, mi.Amount)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert invoice items", err)
	}
	return nil
}

// UpdateInvoiceInTx rewrites the invoice row. PreviousBalance travels along
// unchanged on an edit; only sweeps rewrite it.
func (r *PgxInvoiceRepository) UpdateInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET party_id = $2,
		    invoice_date = $3,
		    total_amount = $4,
		    previous_balance = $5,
		    grand_total = $6
		WHERE invoice_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, query,
		m.InvoiceID,
		m.PartyID,
		m.InvoiceDate,
		m.TotalAmount,
		m.PreviousBalance,
		m.GrandTotal,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+m.InvoiceNumber, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice " + m.InvoiceNumber + " not found for update")
	}
	return nil
}

// ReplaceItemsInTx deletes all items of the invoice and inserts the new set.
func (r *PgxInvoiceRepository) ReplaceItemsInTx(ctx context.Context, tx pgx.Tx, invoiceID int64, items []domain.InvoiceItem) error {
	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, invoiceID); err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice items", err)
	}
	return r.insertItems(ctx, tx, invoiceID, items)
}

// DeleteInvoiceInTx deletes the invoice's items and then the invoice row.
func (r *PgxInvoiceRepository) DeleteInvoiceInTx(ctx context.Context, tx pgx.Tx, invoiceID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, invoiceID); err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice items", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice not found for delete")
	}
	return nil
}

const invoicesByPartyQuery = `
	SELECT ` + invoiceColumns + `
	FROM invoices i
	JOIN parties p ON p.party_id = i.party_id
	WHERE i.party_id = $1
	ORDER BY i.invoice_date ASC, ` + numericNumberExpr + ` ASC, i.invoice_id ASC;
`

// FindInvoicesByParty retrieves every invoice of a party in chain order.
func (r *PgxInvoiceRepository) FindInvoicesByParty(ctx context.Context, partyID int64) ([]domain.Invoice, error) {
	return r.queryInvoices(ctx, r.Pool, invoicesByPartyQuery, partyID)
}

// FindInvoicesByPartyInTx is FindInvoicesByParty inside the transaction.
func (r *PgxInvoiceRepository) FindInvoicesByPartyInTx(ctx context.Context, tx pgx.Tx, partyID int64) ([]domain.Invoice, error) {
	return r.queryInvoices(ctx, tx, invoicesByPartyQuery, partyID)
}

// ApplyBalanceUpdatesInTx persists the rebuilt previous_balance/grand_total
// pairs of a forward sweep in one batch.
func (r *PgxInvoiceRepository) ApplyBalanceUpdatesInTx(ctx context.Context, tx pgx.Tx, updates []ledgercalc.BalanceUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `UPDATE invoices SET previous_balance = $2, grand_total = $3 WHERE invoice_id = $1;`
	for _, u := range updates {
		batch.Queue(query, u.InvoiceID, u.PreviousBalance, u.GrandTotal)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to apply balance updates", err)
	}
	return nil
}

const maxNumericNumberQuery = `
	SELECT COALESCE(MAX(CAST(invoice_number AS BIGINT)), 0)
	FROM invoices
	WHERE invoice_number ~ '^[0-9]+$';
`

// MaxNumericInvoiceNumber returns the highest all-digit invoice number issued,
// or 0 when none exist. Non-numeric numbers are excluded.
func (r *PgxInvoiceRepository) MaxNumericInvoiceNumber(ctx context.Context) (int64, error) {
	return r.maxNumericInvoiceNumber(ctx, r.Pool)
}

// MaxNumericInvoiceNumberInTx is MaxNumericInvoiceNumber inside the transaction.
func (r *PgxInvoiceRepository) MaxNumericInvoiceNumberInTx(ctx context.Context, tx pgx.Tx) (int64, error) {
	return r.maxNumericInvoiceNumber(ctx, tx)
}

func (r *PgxInvoiceRepository) maxNumericInvoiceNumber(ctx context.Context, q querier) (int64, error) {
	var max int64
	if err := q.QueryRow(ctx, maxNumericNumberQuery).Scan(&max); err != nil {
		return 0, apperrors.NewAppError(500, "failed to query max invoice number", err)
	}
	return max, nil
}

// ListInvoices retrieves invoices filtered by party name and date range,
// newest first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, partyName string, startDate, endDate *time.Time) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices i
		JOIN parties p ON p.party_id = i.party_id
		WHERE 1=1
	`
	args := []any{}

	if partyName != "" {
		args = append(args, partyName)
		query += ` AND p.party_name = $` + strconv.Itoa(len(args))
	}
	if startDate != nil {
		args = append(args, *startDate)
		query += ` AND i.invoice_date >= $` + strconv.Itoa(len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		query += ` AND i.invoice_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY i.invoice_date DESC, ` + numericNumberExpr + ` DESC, i.invoice_id DESC;`

	return r.queryInvoices(ctx, r.Pool, query, args...)
}

// FindItemsByInvoiceID retrieves the line items of one invoice.
func (r *PgxInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error) {
	grouped, err := r.FindItemsByInvoiceIDs(ctx, []int64{invoiceID})
	if err != nil {
		return nil, err
	}
	return grouped[invoiceID], nil
}

// FindItemsByInvoiceIDs retrieves line items for multiple invoices, grouped by
// invoice id. Invoices with no items get an empty slice.
func (r *PgxInvoiceRepository) FindItemsByInvoiceIDs(ctx context.Context, invoiceIDs []int64) (map[int64][]domain.InvoiceItem, error) {
	grouped := make(map[int64][]domain.InvoiceItem, len(invoiceIDs))
	for _, id := range invoiceIDs {
		grouped[id] = []domain.InvoiceItem{}
	}
	if len(invoiceIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT item_id, invoice_id, product_name, quantity, packing, unit_price, amount
		FROM invoice_items
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, item_id;
	`

	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.InvoiceItem
		if err := rows.Scan(&m.ItemID, &m.InvoiceID, &m.ProductName, &m.Quantity, &m.Packing, &m.UnitPrice, &m.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item row", err)
		}
		grouped[m.InvoiceID] = append(grouped[m.InvoiceID], mapping.ToDomainInvoiceItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice item rows", err)
	}
	return grouped, nil
}
