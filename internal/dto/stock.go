package dto

import (
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockBatchEntry is one batch of a batch-add payload. Entries are validated
// in the service, which skips invalid ones instead of failing the whole call.
type StockBatchEntry struct {
	ProductName string          `json:"productName"`
	BatchNo     string          `json:"batchNo"`
	Date        string          `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// AddStockBatchesRequest defines the payload for adding stock batches.
type AddStockBatchesRequest struct {
	Items []StockBatchEntry `json:"items" binding:"required,min=1"`
}

// DeductStockEntry asks for a quantity of one product.
type DeductStockEntry struct {
	ProductName string          `json:"productName"`
	Qty         decimal.Decimal `json:"qty"`
}

// DeductStockRequest defines the payload for an all-or-nothing FIFO deduction.
type DeductStockRequest struct {
	Items []DeductStockEntry `json:"items" binding:"required,min=1"`
}

// StockBatchResponse is one stock batch on the wire.
type StockBatchResponse struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"productName"`
	BatchNo     string          `json:"batchNo"`
	Date        string          `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ToStockBatchResponses converts domain batches to their wire shape.
func ToStockBatchResponses(batches []domain.StockBatch) []StockBatchResponse {
	responses := make([]StockBatchResponse, len(batches))
	for i, b := range batches {
		responses[i] = StockBatchResponse{
			ID:          b.BatchID,
			ProductName: b.ProductName,
			BatchNo:     b.BatchNo,
			Date:        b.ReceivedDate.Format(DateFormat),
			Quantity:    b.Quantity,
		}
	}
	return responses
}
