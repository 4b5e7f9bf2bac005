package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBatch is one received batch of a product. Quantity is the remaining
// amount; deductions drain it towards zero, oldest batch first, and it never
// goes negative.
type StockBatch struct {
	BatchID      int64           `json:"id"`
	ProductName  string          `json:"productName"`
	BatchNo      string          `json:"batchNo"`
	ReceivedDate time.Time       `json:"date"`
	Quantity     decimal.Decimal `json:"quantity"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// StockShortage describes one product that could not satisfy a deduction
// request. Deductions are all-or-nothing, so a single shortage aborts the
// whole call.
type StockShortage struct {
	ProductName string
	Available   decimal.Decimal
	Required    decimal.Decimal
}
