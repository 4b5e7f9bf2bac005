package repositories

import (
	"context"
	"time"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its id.
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	// ListPayments retrieves payments filtered by party name and date range
	// (all filters optional), ordered date DESC then id DESC.
	ListPayments(ctx context.Context, partyName string, startDate, endDate *time.Time) ([]domain.Payment, error)

	// FindPaymentsByParty retrieves every payment of a party.
	FindPaymentsByParty(ctx context.Context, partyID int64) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data inside a
// caller-owned transaction.
type PaymentWriter interface {
	// SavePaymentInTx inserts the payment and returns its new id.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) (int64, error)

	// FindPaymentByIDInTx retrieves a payment by its id inside the transaction.
	FindPaymentByIDInTx(ctx context.Context, tx pgx.Tx, paymentID int64) (*domain.Payment, error)

	// DeletePaymentInTx deletes the payment row.
	DeletePaymentInTx(ctx context.Context, tx pgx.Tx, paymentID int64) error

	// FindPaymentsByPartyInTx retrieves every payment of a party inside the transaction.
	FindPaymentsByPartyInTx(ctx context.Context, tx pgx.Tx, partyID int64) ([]domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
