package services_test

import (
	"context"
	"testing"

	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/core/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PartyServiceTestSuite struct {
	suite.Suite
	mockPartyRepo *MockPartyRepository
	service       portssvc.PartySvcFacade
	ctx           context.Context
	tx            *stubTx
}

func (suite *PartyServiceTestSuite) SetupTest() {
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.service = services.NewPartyService(suite.mockPartyRepo)

	suite.ctx = context.Background()
	suite.tx = &stubTx{}

	suite.mockPartyRepo.On("Begin", suite.ctx).Return(suite.tx, nil).Maybe()
	suite.mockPartyRepo.On("Rollback", suite.ctx, suite.tx).Return(nil).Maybe()
}

func (suite *PartyServiceTestSuite) TestGetPartyBalance_UnknownPartyIsZero() {
	suite.mockPartyRepo.On("FindPartyByName", suite.ctx, "Nobody").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetPartyBalance(suite.ctx, "Nobody")

	suite.Require().NoError(err)
	suite.True(resp.Balance.IsZero())
	suite.True(resp.InitialOpeningBalance.IsZero())
}

func (suite *PartyServiceTestSuite) TestGetPartyBalance_ComputesCurrent() {
	party := domain.Party{PartyID: 1, PartyName: "Hamid Traders", OpeningBalance: decimal.NewFromInt(25)}

	suite.mockPartyRepo.On("FindPartyByName", suite.ctx, "Hamid Traders").Return(&party, nil).Once()
	suite.mockPartyRepo.On("BalanceSums", suite.ctx, int64(1)).
		Return(decimal.NewFromInt(150), decimal.NewFromInt(60), nil).Once()

	resp, err := suite.service.GetPartyBalance(suite.ctx, "Hamid Traders")

	suite.Require().NoError(err)
	// 25 opening + 150 invoiced - 60 paid.
	suite.True(resp.Balance.Equal(decimal.NewFromInt(115)))
	suite.True(resp.InitialOpeningBalance.Equal(decimal.NewFromInt(25)))
}

func (suite *PartyServiceTestSuite) TestSetOpeningBalance_ExistingPartyUpdates() {
	party := domain.Party{PartyID: 1, PartyName: "Hamid Traders", OpeningBalance: decimal.NewFromInt(10)}
	newBalance := decimal.NewFromInt(40)

	suite.mockPartyRepo.On("FindPartyByName", suite.ctx, "Hamid Traders").Return(&party, nil).Once()
	suite.mockPartyRepo.On("EnsurePartyInTx", suite.ctx, suite.tx, "Hamid Traders").Return(party, nil).Once()
	suite.mockPartyRepo.On("UpdateOpeningBalanceInTx", suite.ctx, suite.tx, int64(1), newBalance).Return(nil).Once()

	var adjustment domain.OpeningBalanceAdjustment
	suite.mockPartyRepo.On("SaveAdjustmentInTx", suite.ctx, suite.tx, mock.AnythingOfType("domain.OpeningBalanceAdjustment")).
		Run(func(args mock.Arguments) { adjustment = args.Get(2).(domain.OpeningBalanceAdjustment) }).
		Return(nil).Once()

	suite.mockPartyRepo.On("BalanceSumsInTx", suite.ctx, suite.tx, int64(1)).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(30), nil).Once()
	suite.mockPartyRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	result, err := suite.service.SetOpeningBalance(suite.ctx, "Hamid Traders", dto.SetOpeningBalanceRequest{
		PrevBalance: &newBalance,
		Reason:      "year-end correction",
	})

	suite.Require().NoError(err)
	suite.False(result.Created)
	// 40 new opening + 100 invoiced - 30 paid.
	suite.True(result.CurrentPartyBalance.Equal(decimal.NewFromInt(110)))

	// The audit row records the transition.
	suite.True(adjustment.OldBalance.Equal(decimal.NewFromInt(10)))
	suite.True(adjustment.NewBalance.Equal(decimal.NewFromInt(40)))
	suite.Equal("year-end correction", adjustment.Reason)
}

func (suite *PartyServiceTestSuite) TestSetOpeningBalance_NewPartyCreated() {
	created := domain.Party{PartyID: 5, PartyName: "New Trader", OpeningBalance: decimal.Zero}
	newBalance := decimal.NewFromInt(500)

	suite.mockPartyRepo.On("FindPartyByName", suite.ctx, "New Trader").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPartyRepo.On("EnsurePartyInTx", suite.ctx, suite.tx, "New Trader").Return(created, nil).Once()
	suite.mockPartyRepo.On("UpdateOpeningBalanceInTx", suite.ctx, suite.tx, int64(5), newBalance).Return(nil).Once()
	suite.mockPartyRepo.On("SaveAdjustmentInTx", suite.ctx, suite.tx, mock.AnythingOfType("domain.OpeningBalanceAdjustment")).Return(nil).Once()
	suite.mockPartyRepo.On("BalanceSumsInTx", suite.ctx, suite.tx, int64(5)).
		Return(decimal.Zero, decimal.Zero, nil).Once()
	suite.mockPartyRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	result, err := suite.service.SetOpeningBalance(suite.ctx, "New Trader", dto.SetOpeningBalanceRequest{
		PrevBalance: &newBalance,
	})

	suite.Require().NoError(err)
	suite.True(result.Created)
	suite.True(result.CurrentPartyBalance.Equal(decimal.NewFromInt(500)))
}

func (suite *PartyServiceTestSuite) TestOpeningBalanceHistory_UnknownParty() {
	suite.mockPartyRepo.On("FindPartyByName", suite.ctx, "Nobody").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.OpeningBalanceHistory(suite.ctx, "Nobody")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PartyServiceTestSuite) TestListParties() {
	balances := []domain.PartyBalance{
		{PartyName: "Bashir & Sons", CurrentBalance: decimal.NewFromInt(200)},
		{PartyName: "Hamid Traders", CurrentBalance: decimal.NewFromInt(115)},
	}
	suite.mockPartyRepo.On("ListPartyBalances", suite.ctx).Return(balances, nil).Once()

	got, err := suite.service.ListParties(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(balances, got)
}

func TestPartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}
