package stockalloc

import (
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Request asks for a quantity of one product.
type Request struct {
	ProductName string
	Quantity    decimal.Decimal
}

// BatchUpdate carries the new remaining quantity for one batch. The plan is
// pure; persisting the updates is the caller's transaction.
type BatchUpdate struct {
	BatchID  int64
	Quantity decimal.Decimal
}

// Plan allocates the requested quantities against the given batches, oldest
// batch first. Batches must arrive ordered (received date ASC, batch id ASC)
// per product. Requests are planned in order against a working copy of the
// quantities, so several requests naming the same product each see what the
// earlier ones already drained. If any request falls short the plan is empty
// and all shortages are reported, so a single call is all-or-nothing.
func Plan(batchesByProduct map[string][]domain.StockBatch, requests []Request) ([]BatchUpdate, []domain.StockShortage) {
	working := make(map[string][]domain.StockBatch, len(batchesByProduct))
	for name, batches := range batchesByProduct {
		working[name] = append([]domain.StockBatch(nil), batches...)
	}

	var shortages []domain.StockShortage
	var touched []int64
	finalQty := make(map[int64]decimal.Decimal)

	for _, req := range requests {
		batches := working[req.ProductName]

		available := decimal.Zero
		for _, b := range batches {
			available = available.Add(b.Quantity)
		}
		if req.Quantity.GreaterThan(available) {
			shortages = append(shortages, domain.StockShortage{
				ProductName: req.ProductName,
				Available:   available,
				Required:    req.Quantity,
			})
			continue
		}

		remaining := req.Quantity
		for i := range batches {
			if remaining.LessThanOrEqual(decimal.Zero) {
				break
			}
			if batches[i].Quantity.LessThanOrEqual(decimal.Zero) {
				continue
			}
			take := decimal.Min(batches[i].Quantity, remaining)
			batches[i].Quantity = batches[i].Quantity.Sub(take)
			remaining = remaining.Sub(take)

			if _, seen := finalQty[batches[i].BatchID]; !seen {
				touched = append(touched, batches[i].BatchID)
			}
			finalQty[batches[i].BatchID] = batches[i].Quantity
		}
	}
	if len(shortages) > 0 {
		return nil, shortages
	}

	updates := make([]BatchUpdate, 0, len(touched))
	for _, id := range touched {
		updates = append(updates, BatchUpdate{BatchID: id, Quantity: finalQty[id]})
	}
	return updates, nil
}
