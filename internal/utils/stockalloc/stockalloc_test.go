package stockalloc

import (
	"testing"
	"time"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batch(id int64, date string, qty int64) domain.StockBatch {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return domain.StockBatch{BatchID: id, ReceivedDate: d, Quantity: decimal.NewFromInt(qty)}
}

func req(product string, qty int64) Request {
	return Request{ProductName: product, Quantity: decimal.NewFromInt(qty)}
}

func TestPlanDrainsOldestBatchFirst(t *testing.T) {
	batches := map[string][]domain.StockBatch{
		"Urea": {
			batch(1, "2024-01-01", 5),
			batch(2, "2024-01-05", 5),
		},
	}

	updates, shortages := Plan(batches, []Request{req("Urea", 7)})

	require.Empty(t, shortages)
	require.Len(t, updates, 2)
	assert.Equal(t, int64(1), updates[0].BatchID)
	assert.True(t, updates[0].Quantity.IsZero(), "the oldest batch is drained to zero")
	assert.Equal(t, int64(2), updates[1].BatchID)
	assert.True(t, decimal.NewFromInt(3).Equal(updates[1].Quantity))
}

func TestPlanSkipsExhaustedBatches(t *testing.T) {
	batches := map[string][]domain.StockBatch{
		"Urea": {
			batch(1, "2024-01-01", 0),
			batch(2, "2024-01-02", 4),
		},
	}

	updates, shortages := Plan(batches, []Request{req("Urea", 3)})

	require.Empty(t, shortages)
	require.Len(t, updates, 1, "empty batches are passed over without an update")
	assert.Equal(t, int64(2), updates[0].BatchID)
	assert.True(t, decimal.NewFromInt(1).Equal(updates[0].Quantity))
}

func TestPlanExactAvailabilitySucceeds(t *testing.T) {
	batches := map[string][]domain.StockBatch{
		"DAP": {batch(1, "2024-01-01", 10)},
	}

	updates, shortages := Plan(batches, []Request{req("DAP", 10)})

	require.Empty(t, shortages)
	require.Len(t, updates, 1)
	assert.True(t, updates[0].Quantity.IsZero())
}

func TestPlanShortageLeavesEverythingUntouched(t *testing.T) {
	batches := map[string][]domain.StockBatch{
		"Urea": {batch(1, "2024-01-01", 5)},
		"DAP":  {batch(2, "2024-01-02", 8)},
	}

	// DAP can be satisfied but Urea cannot; the whole plan must come back
	// empty with only the failing product reported.
	updates, shortages := Plan(batches, []Request{req("Urea", 9), req("DAP", 3)})

	assert.Nil(t, updates)
	require.Len(t, shortages, 1)
	assert.Equal(t, "Urea", shortages[0].ProductName)
	assert.True(t, decimal.NewFromInt(5).Equal(shortages[0].Available))
	assert.True(t, decimal.NewFromInt(9).Equal(shortages[0].Required))
}

func TestPlanDuplicateProductRequestsShareAvailability(t *testing.T) {
	batches := map[string][]domain.StockBatch{
		"Urea": {batch(1, "2024-01-01", 5)},
	}

	// Two requests for the same product draw from the same pool: 3 + 3 > 5,
	// so the second must fail against what the first left behind.
	updates, shortages := Plan(batches, []Request{req("Urea", 3), req("Urea", 3)})

	assert.Nil(t, updates)
	require.Len(t, shortages, 1)
	assert.Equal(t, "Urea", shortages[0].ProductName)
	assert.True(t, decimal.NewFromInt(2).Equal(shortages[0].Available), "availability reflects the first request's draw")
	assert.True(t, decimal.NewFromInt(3).Equal(shortages[0].Required))
}

func TestPlanDuplicateProductRequestsMergeBatchUpdates(t *testing.T) {
	batches := map[string][]domain.StockBatch{
		"Urea": {
			batch(1, "2024-01-01", 5),
			batch(2, "2024-01-05", 5),
		},
	}

	updates, shortages := Plan(batches, []Request{req("Urea", 3), req("Urea", 4)})

	require.Empty(t, shortages)
	require.Len(t, updates, 2, "a batch touched by both requests appears once with its final quantity")
	assert.Equal(t, int64(1), updates[0].BatchID)
	assert.True(t, updates[0].Quantity.IsZero())
	assert.Equal(t, int64(2), updates[1].BatchID)
	assert.True(t, decimal.NewFromInt(3).Equal(updates[1].Quantity))
}

func TestPlanReportsEveryShortage(t *testing.T) {
	batches := map[string][]domain.StockBatch{
		"Urea": {batch(1, "2024-01-01", 5)},
	}

	updates, shortages := Plan(batches, []Request{req("Urea", 9), req("Zinc", 1)})

	assert.Nil(t, updates)
	require.Len(t, shortages, 2, "an unknown product reports zero availability instead of stopping the check")
	assert.Equal(t, "Zinc", shortages[1].ProductName)
	assert.True(t, shortages[1].Available.IsZero())
}
