package mapping

import (
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/hamidtraders/invoice_ledger_app/internal/models"
)

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:        m.PartyID,
		PartyName:      m.PartyName,
		OpeningBalance: m.OpeningBalance,
		CreatedAt:      m.CreatedAt,
	}
}

// ToModelAdjustment converts a domain OpeningBalanceAdjustment to its model form
func ToModelAdjustment(d domain.OpeningBalanceAdjustment) models.OpeningBalanceAdjustment {
	return models.OpeningBalanceAdjustment{
		AdjustmentID:   d.AdjustmentID,
		PartyID:        d.PartyID,
		AdjustmentDate: d.AdjustmentDate,
		OldBalance:     d.OldBalance,
		NewBalance:     d.NewBalance,
		Reason:         d.Reason,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainAdjustment converts a model OpeningBalanceAdjustment to its domain form
func ToDomainAdjustment(m models.OpeningBalanceAdjustment) domain.OpeningBalanceAdjustment {
	return domain.OpeningBalanceAdjustment{
		AdjustmentID:   m.AdjustmentID,
		PartyID:        m.PartyID,
		AdjustmentDate: m.AdjustmentDate,
		OldBalance:     m.OldBalance,
		NewBalance:     m.NewBalance,
		Reason:         m.Reason,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainAdjustmentSlice converts a slice of model adjustments to domain form
func ToDomainAdjustmentSlice(ms []models.OpeningBalanceAdjustment) []domain.OpeningBalanceAdjustment {
	ds := make([]domain.OpeningBalanceAdjustment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAdjustment(m)
	}
	return ds
}
