package dto

import (
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartyBalanceItem is one row of the party listing.
type PartyBalanceItem struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// ToPartyBalanceItems converts computed party balances to the listing shape.
func ToPartyBalanceItems(balances []domain.PartyBalance) []PartyBalanceItem {
	items := make([]PartyBalanceItem, len(balances))
	for i, b := range balances {
		items[i] = PartyBalanceItem{Name: b.PartyName, Balance: b.CurrentBalance}
	}
	return items
}

// PartyBalanceResponse answers the party-balance lookup used by the invoice
// entry form. Both values are zero for a party that does not exist yet.
type PartyBalanceResponse struct {
	Balance               decimal.Decimal `json:"balance"`
	InitialOpeningBalance decimal.Decimal `json:"initialOpeningBalance"`
}

// SetOpeningBalanceRequest defines the payload for setting a party's opening
// balance. PrevBalance is a pointer so an explicit zero passes validation.
type SetOpeningBalanceRequest struct {
	PrevBalance *decimal.Decimal `json:"prevBalance" binding:"required"`
	Reason      string           `json:"reason"`
}

// SetOpeningBalanceResult carries the service outcome; Created selects the
// HTTP status (201 when the party was auto-created).
type SetOpeningBalanceResult struct {
	Created             bool
	CurrentPartyBalance decimal.Decimal
}

// OpeningBalanceAdjustmentResponse is one row of the opening-balance audit history.
type OpeningBalanceAdjustmentResponse struct {
	AdjustmentDate string          `json:"adjustmentDate"`
	OldBalance     decimal.Decimal `json:"oldBalance"`
	NewBalance     decimal.Decimal `json:"newBalance"`
	Reason         string          `json:"reason"`
	CreatedAt      string          `json:"createdAt"`
}

// ToOpeningBalanceAdjustmentResponses converts audit rows to their wire shape.
func ToOpeningBalanceAdjustmentResponses(adjustments []domain.OpeningBalanceAdjustment) []OpeningBalanceAdjustmentResponse {
	responses := make([]OpeningBalanceAdjustmentResponse, len(adjustments))
	for i, a := range adjustments {
		responses[i] = OpeningBalanceAdjustmentResponse{
			AdjustmentDate: a.AdjustmentDate.Format(DateFormat),
			OldBalance:     a.OldBalance,
			NewBalance:     a.NewBalance,
			Reason:         a.Reason,
			CreatedAt:      a.CreatedAt.Format(TimestampFormat),
		}
	}
	return responses
}

// PartyLedgerSummaryResponse is one row of the all-party ledger overview.
type PartyLedgerSummaryResponse struct {
	PartyName      string          `json:"partyName"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// ToPartyLedgerSummaryResponses converts computed balances to the overview shape.
func ToPartyLedgerSummaryResponses(balances []domain.PartyBalance) []PartyLedgerSummaryResponse {
	responses := make([]PartyLedgerSummaryResponse, len(balances))
	for i, b := range balances {
		responses[i] = PartyLedgerSummaryResponse{PartyName: b.PartyName, CurrentBalance: b.CurrentBalance}
	}
	return responses
}
