package repositories

import (
	"context"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByName retrieves a party by its unique name.
	FindPartyByName(ctx context.Context, name string) (*domain.Party, error)

	// ListPartyBalances retrieves every party with its computed current
	// balance (opening + invoice totals - payment totals), ordered by name.
	ListPartyBalances(ctx context.Context) ([]domain.PartyBalance, error)

	// BalanceSums returns the invoice-total and payment-amount sums for a party.
	BalanceSums(ctx context.Context, partyID int64) (invoiceTotal, paymentTotal decimal.Decimal, err error)

	// ListAdjustmentsByParty retrieves the opening-balance audit rows of a
	// party, ordered by adjustment date then creation time.
	ListAdjustmentsByParty(ctx context.Context, partyID int64) ([]domain.OpeningBalanceAdjustment, error)
}

// PartyWriter defines write operations for party data. Mutations run inside a
// caller-owned transaction; locking the party row serializes writers against
// the same balance chain.
type PartyWriter interface {
	// EnsurePartyInTx inserts the party with a zero opening balance if it does
	// not exist, and returns the row locked for update either way.
	EnsurePartyInTx(ctx context.Context, tx pgx.Tx, name string) (domain.Party, error)

	// FindPartiesByNamesForUpdate locks the named party rows in a single
	// statement, keeping lock order deterministic when two parties are
	// involved. All names must exist.
	FindPartiesByNamesForUpdate(ctx context.Context, tx pgx.Tx, names []string) (map[string]domain.Party, error)

	// BalanceSumsInTx is BalanceSums evaluated inside the transaction.
	BalanceSumsInTx(ctx context.Context, tx pgx.Tx, partyID int64) (invoiceTotal, paymentTotal decimal.Decimal, err error)

	// UpdateOpeningBalanceInTx sets the party's opening balance.
	UpdateOpeningBalanceInTx(ctx context.Context, tx pgx.Tx, partyID int64, newBalance decimal.Decimal) error

	// SaveAdjustmentInTx appends one opening-balance audit row.
	SaveAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.OpeningBalanceAdjustment) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}

// PartyRepositoryWithTx extends PartyRepositoryFacade with transaction capabilities
type PartyRepositoryWithTx interface {
	PartyRepositoryFacade
	TransactionManager
}
