package services

import (
	"context"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// ListPayments retrieves payments matching the given filters, ordered
	// date DESC then id DESC.
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// CreatePayment records a payment against a party (auto-created if new).
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error)

	// DeletePayment removes a payment and rebuilds every invoice of the party
	// dated on or after the payment's date.
	DeletePayment(ctx context.Context, paymentID int64) (*dto.DeletePaymentResponse, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
