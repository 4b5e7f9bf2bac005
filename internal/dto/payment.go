package dto

import (
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the payload for recording a payment. Amount is
// a pointer so binding distinguishes "missing" from an (invalid) zero; the
// positivity check happens in the service.
type CreatePaymentRequest struct {
	PartyName string           `json:"partyName" binding:"required"`
	Amount    *decimal.Decimal `json:"amount" binding:"required"`
	Date      string           `json:"date" binding:"required,dateonly"`
	Remarks   string           `json:"remarks"`
}

// CreatePaymentResponse reports the recorded payment and the party's balance
// after it.
type CreatePaymentResponse struct {
	Message             string          `json:"message"`
	PaymentID           int64           `json:"paymentId"`
	CurrentPartyBalance decimal.Decimal `json:"currentPartyBalance"`
}

// DeletePaymentResponse reports the outcome of a payment deletion.
type DeletePaymentResponse struct {
	Message             string          `json:"message"`
	PartyName           string          `json:"partyName"`
	CurrentPartyBalance decimal.Decimal `json:"currentPartyBalance"`
}

// ListPaymentsParams are the optional query filters of the payment listing.
type ListPaymentsParams struct {
	PartyName string `form:"partyName"`
	StartDate string `form:"startDate" binding:"omitempty,dateonly"`
	EndDate   string `form:"endDate" binding:"omitempty,dateonly"`
}

// PaymentResponse is one payment on the wire.
type PaymentResponse struct {
	PaymentID int64           `json:"paymentId"`
	PartyName string          `json:"partyName"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Remarks   string          `json:"remarks"`
}

// ToPaymentResponses converts domain payments to their wire shape.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = PaymentResponse{
			PaymentID: p.PaymentID,
			PartyName: p.PartyName,
			Amount:    p.Amount,
			Date:      p.PaymentDate.Format(DateFormat),
			Remarks:   p.Remarks,
		}
	}
	return responses
}
