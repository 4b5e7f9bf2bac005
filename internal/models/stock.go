package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBatch represents a row of the stock_batches table. Quantity is the
// remaining quantity after deductions, never negative.
type StockBatch struct {
	BatchID      int64           `db:"batch_id"`
	ProductName  string          `db:"product_name"`
	BatchNo      string          `db:"batch_no"` // Nullable
	ReceivedDate time.Time       `db:"received_date"`
	Quantity     decimal.Decimal `db:"quantity"`
	CreatedAt    time.Time       `db:"created_at"`
}
