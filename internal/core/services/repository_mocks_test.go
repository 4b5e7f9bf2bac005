package services_test

import (
	"context"
	"time"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/ledgercalc"
	"github.com/hamidtraders/invoice_ledger_app/internal/utils/stockalloc"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// stubTx satisfies pgx.Tx for passing through the transaction plumbing; none
// of its methods are ever called because the repositories are mocked.
type stubTx struct {
	pgx.Tx
}

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

// Ensure MockPartyRepository implements portsrepo.PartyRepositoryWithTx
var _ portsrepo.PartyRepositoryWithTx = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) FindPartyByName(ctx context.Context, name string) (*domain.Party, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListPartyBalances(ctx context.Context) ([]domain.PartyBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartyBalance), args.Error(1)
}

func (m *MockPartyRepository) BalanceSums(ctx context.Context, partyID int64) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockPartyRepository) ListAdjustmentsByParty(ctx context.Context, partyID int64) ([]domain.OpeningBalanceAdjustment, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpeningBalanceAdjustment), args.Error(1)
}

func (m *MockPartyRepository) EnsurePartyInTx(ctx context.Context, tx pgx.Tx, name string) (domain.Party, error) {
	args := m.Called(ctx, tx, name)
	return args.Get(0).(domain.Party), args.Error(1)
}

func (m *MockPartyRepository) FindPartiesByNamesForUpdate(ctx context.Context, tx pgx.Tx, names []string) (map[string]domain.Party, error) {
	args := m.Called(ctx, tx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) BalanceSumsInTx(ctx context.Context, tx pgx.Tx, partyID int64) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, tx, partyID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockPartyRepository) UpdateOpeningBalanceInTx(ctx context.Context, tx pgx.Tx, partyID int64, newBalance decimal.Decimal) error {
	args := m.Called(ctx, tx, partyID, newBalance)
	return args.Error(0)
}

func (m *MockPartyRepository) SaveAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.OpeningBalanceAdjustment) error {
	args := m.Called(ctx, tx, adjustment)
	return args.Error(0)
}

func (m *MockPartyRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPartyRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPartyRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

// Ensure MockInvoiceRepository implements portsrepo.InvoiceRepositoryWithTx
var _ portsrepo.InvoiceRepositoryWithTx = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceRepository) FindItemsByInvoiceIDs(ctx context.Context, invoiceIDs []int64) (map[int64][]domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, partyName string, startDate, endDate *time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, partyName, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesByParty(ctx context.Context, partyID int64) ([]domain.Invoice, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) MaxNumericInvoiceNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByNumberInTx(ctx context.Context, tx pgx.Tx, invoiceNumber string) (*domain.Invoice, error) {
	args := m.Called(ctx, tx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, items []domain.InvoiceItem) (int64, error) {
	args := m.Called(ctx, tx, invoice, items)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	args := m.Called(ctx, tx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ReplaceItemsInTx(ctx context.Context, tx pgx.Tx, invoiceID int64, items []domain.InvoiceItem) error {
	args := m.Called(ctx, tx, invoiceID, items)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoiceInTx(ctx context.Context, tx pgx.Tx, invoiceID int64) error {
	args := m.Called(ctx, tx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoicesByPartyInTx(ctx context.Context, tx pgx.Tx, partyID int64) ([]domain.Invoice, error) {
	args := m.Called(ctx, tx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ApplyBalanceUpdatesInTx(ctx context.Context, tx pgx.Tx, updates []ledgercalc.BalanceUpdate) error {
	args := m.Called(ctx, tx, updates)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MaxNumericInvoiceNumberInTx(ctx context.Context, tx pgx.Tx) (int64, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockInvoiceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

// Ensure MockPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByIDInTx(ctx context.Context, tx pgx.Tx, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, tx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, partyName string, startDate, endDate *time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, partyName, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByParty(ctx context.Context, partyID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) (int64, error) {
	args := m.Called(ctx, tx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) DeletePaymentInTx(ctx context.Context, tx pgx.Tx, paymentID int64) error {
	args := m.Called(ctx, tx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentsByPartyInTx(ctx context.Context, tx pgx.Tx, partyID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, tx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPaymentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPaymentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

// Ensure MockStockRepository implements portsrepo.StockRepositoryWithTx
var _ portsrepo.StockRepositoryWithTx = (*MockStockRepository)(nil)

func (m *MockStockRepository) ListBatches(ctx context.Context) ([]domain.StockBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockBatch), args.Error(1)
}

func (m *MockStockRepository) SaveBatches(ctx context.Context, batches []domain.StockBatch) error {
	args := m.Called(ctx, batches)
	return args.Error(0)
}

func (m *MockStockRepository) FindBatchesByProductsForUpdate(ctx context.Context, tx pgx.Tx, productNames []string) (map[string][]domain.StockBatch, error) {
	args := m.Called(ctx, tx, productNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.StockBatch), args.Error(1)
}

func (m *MockStockRepository) UpdateBatchQuantitiesInTx(ctx context.Context, tx pgx.Tx, updates []stockalloc.BatchUpdate) error {
	args := m.Called(ctx, tx, updates)
	return args.Error(0)
}

func (m *MockStockRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockStockRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockStockRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
