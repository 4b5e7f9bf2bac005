package services

import (
	"context"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
)

// StockReaderSvc defines read operations for stock data
type StockReaderSvc interface {
	// ListStock retrieves every batch, ordered product ASC then date DESC.
	ListStock(ctx context.Context) ([]domain.StockBatch, error)
}

// StockWriterSvc defines write operations for stock data
type StockWriterSvc interface {
	// AddBatches inserts the valid entries of the payload and returns how many
	// were processed; invalid entries are skipped, not fatal.
	AddBatches(ctx context.Context, req dto.AddStockBatchesRequest) (int, error)

	// DeductStock drains the requested quantities oldest-batch-first. The call
	// is all-or-nothing: any shortfall aborts it with every shortage reported
	// and no batch touched.
	DeductStock(ctx context.Context, req dto.DeductStockRequest) error
}

// StockSvcFacade combines all stock-related service interfaces
type StockSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}
