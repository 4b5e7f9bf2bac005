package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
	"github.com/hamidtraders/invoice_ledger_app/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StockService ---
type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) ListStock(ctx context.Context) ([]domain.StockBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockBatch), args.Error(1)
}

func (m *MockStockService) AddBatches(ctx context.Context, req dto.AddStockBatchesRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *MockStockService) DeductStock(ctx context.Context, req dto.DeductStockRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.StockSvcFacade = (*MockStockService)(nil)

// --- Test Suite ---
type StockHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockStockService *MockStockService
}

func (suite *StockHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerTestValidators()

	suite.router = gin.New()
	suite.mockStockService = new(MockStockService)

	api := suite.router.Group("/api")
	handlers.RegisterStockRoutes(api, suite.mockStockService)
}

func (suite *StockHandlerTestSuite) TestListStock() {
	batches := []domain.StockBatch{
		{BatchID: 1, ProductName: "Urea", BatchNo: "B1", ReceivedDate: mustDate("2024-01-01"), Quantity: decimal.NewFromInt(10)},
	}
	suite.mockStockService.On("ListStock", mock.Anything).Return(batches, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/stock", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.StockBatchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("Urea", resp[0].ProductName)
	suite.Equal("2024-01-01", resp[0].Date)
}

func (suite *StockHandlerTestSuite) TestAddBatches_ReportsProcessedCount() {
	suite.mockStockService.On("AddBatches", mock.Anything, mock.AnythingOfType("dto.AddStockBatchesRequest")).
		Return(2, nil).Once()

	body := `{"items": [
		{"productName": "Urea", "batchNo": "B1", "date": "2024-01-01", "quantity": 10},
		{"productName": "DAP", "batchNo": "B2", "date": "2024-01-02", "quantity": 3}
	]}`
	req, _ := http.NewRequest(http.MethodPost, "/api/stock/batch-add", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), "2 stock item(s) processed successfully.")
}

func (suite *StockHandlerTestSuite) TestAddBatches_AllInvalidRejected() {
	suite.mockStockService.On("AddBatches", mock.Anything, mock.AnythingOfType("dto.AddStockBatchesRequest")).
		Return(0, fmt.Errorf("%w: no valid stock entries in payload", apperrors.ErrValidation)).Once()

	body := `{"items": [{"productName": "", "date": "2024-01-01", "quantity": 5}]}`
	req, _ := http.NewRequest(http.MethodPost, "/api/stock/batch-add", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "no valid stock entries")
}

func (suite *StockHandlerTestSuite) TestDeductStock_Success() {
	suite.mockStockService.On("DeductStock", mock.Anything, mock.AnythingOfType("dto.DeductStockRequest")).
		Return(nil).Once()

	body := `{"items": [{"productName": "Urea", "qty": 7}]}`
	req, _ := http.NewRequest(http.MethodPost, "/api/stock/deduct", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Stock deducted successfully.")
}

func (suite *StockHandlerTestSuite) TestDeductStock_ShortageReported() {
	shortage := &apperrors.InsufficientStockError{Message: "Not enough stock for 'Urea'. Available: 5, Required: 10"}
	suite.mockStockService.On("DeductStock", mock.Anything, mock.AnythingOfType("dto.DeductStockRequest")).
		Return(shortage).Once()

	body := `{"items": [{"productName": "Urea", "qty": 10}]}`
	req, _ := http.NewRequest(http.MethodPost, "/api/stock/deduct", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	// The body carries the shortage report verbatim, with no sentinel prefix.
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Not enough stock for 'Urea'. Available: 5, Required: 10", resp["error"])
}

func (suite *StockHandlerTestSuite) TestDeductStock_EmptyItemsRejected() {
	body := `{"items": []}`
	req, _ := http.NewRequest(http.MethodPost, "/api/stock/deduct", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStockService.AssertNotCalled(suite.T(), "DeductStock", mock.Anything, mock.Anything)
}

func TestStockHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StockHandlerTestSuite))
}
