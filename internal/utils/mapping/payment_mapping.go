package mapping

import (
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/hamidtraders/invoice_ledger_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		PartyID:     d.PartyID,
		PartyName:   d.PartyName,
		Amount:      d.Amount,
		PaymentDate: d.PaymentDate,
		Remarks:     d.Remarks,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		PartyID:     m.PartyID,
		PartyName:   m.PartyName,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		Remarks:     m.Remarks,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain form
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
