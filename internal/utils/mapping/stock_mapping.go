package mapping

import (
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/hamidtraders/invoice_ledger_app/internal/models"
)

// ToModelStockBatch converts a domain StockBatch to a model StockBatch
func ToModelStockBatch(d domain.StockBatch) models.StockBatch {
	return models.StockBatch{
		BatchID:      d.BatchID,
		ProductName:  d.ProductName,
		BatchNo:      d.BatchNo,
		ReceivedDate: d.ReceivedDate,
		Quantity:     d.Quantity,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainStockBatch converts a model StockBatch to a domain StockBatch
func ToDomainStockBatch(m models.StockBatch) domain.StockBatch {
	return domain.StockBatch{
		BatchID:      m.BatchID,
		ProductName:  m.ProductName,
		BatchNo:      m.BatchNo,
		ReceivedDate: m.ReceivedDate,
		Quantity:     m.Quantity,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainStockBatchSlice converts a slice of model StockBatches to domain form
func ToDomainStockBatchSlice(ms []models.StockBatch) []domain.StockBatch {
	ds := make([]domain.StockBatch, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockBatch(m)
	}
	return ds
}
