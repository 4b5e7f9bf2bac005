package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
	"github.com/hamidtraders/invoice_ledger_app/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateInvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, invoiceNumber string, req dto.UpdateInvoiceRequest) (*dto.UpdateInvoiceResponse, error) {
	args := m.Called(ctx, invoiceNumber, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UpdateInvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceNumber string) (*dto.DeleteInvoiceResponse, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeleteInvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) NextInvoiceNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// registerTestValidators mirrors the wiring main does so `dateonly` fields
// bind the same way under test.
func registerTestValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
			_, err := dto.ParseDate(fl.Field().String())
			return err == nil
		})
	}
}

// mustDate parses a wire-format date or fails the test setup.
func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// --- Test Suite ---
type InvoiceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceService
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerTestValidators()

	suite.router = gin.New()
	suite.mockInvoiceService = new(MockInvoiceService)

	api := suite.router.Group("/api")
	handlers.RegisterInvoiceRoutes(api, suite.mockInvoiceService)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	expected := &dto.CreateInvoiceResponse{
		Message:                       "Invoice created successfully.",
		InvoiceNumber:                 "31",
		NextInvoiceNumber:             "32",
		PreviousBalanceForNextInvoice: decimal.NewFromInt(150),
	}
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
		return req.InvoiceNumber == "31" && req.PartyName == "Hamid Traders" && len(req.Items) == 1
	})).Return(expected, nil).Once()

	body := `{
		"partyName": "Hamid Traders",
		"date": "2024-01-02",
		"invoiceNumber": "31",
		"items": [{"productName": "Urea", "qty": 2, "unitPrice": 25, "amount": 50}]
	}`
	req, _ := http.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateInvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("31", resp.InvoiceNumber)
	suite.Equal("32", resp.NextInvoiceNumber)
	suite.True(resp.PreviousBalanceForNextInvoice.Equal(decimal.NewFromInt(150)))
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_DuplicateNumber() {
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, mock.AnythingOfType("dto.CreateInvoiceRequest")).
		Return(nil, apperrors.NewAppError(http.StatusConflict, "invoice number already exists", apperrors.ErrDuplicate)).Once()

	body := `{
		"partyName": "Hamid Traders",
		"date": "2024-01-02",
		"invoiceNumber": "30",
		"items": [{"productName": "Urea", "qty": 1, "unitPrice": 50, "amount": 50}]
	}`
	req, _ := http.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "Invoice number already exists")
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_MissingItemsRejected() {
	body := `{"partyName": "Hamid Traders", "date": "2024-01-02", "invoiceNumber": "31", "items": []}`
	req, _ := http.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid request format")
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_BadDateRejected() {
	body := `{
		"partyName": "Hamid Traders",
		"date": "02/01/2024",
		"invoiceNumber": "31",
		"items": [{"productName": "Urea", "qty": 1, "unitPrice": 50, "amount": 50}]
	}`
	req, _ := http.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_Success() {
	invoice := &domain.Invoice{
		InvoiceID:       1,
		InvoiceNumber:   "30",
		PartyName:       "Hamid Traders",
		InvoiceDate:     mustDate("2024-01-01"),
		TotalAmount:     decimal.NewFromInt(100),
		PreviousBalance: decimal.Zero,
		GrandTotal:      decimal.NewFromInt(100),
		Items: []domain.InvoiceItem{
			{ItemID: 1, InvoiceID: 1, ProductName: "Urea", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50), Amount: decimal.NewFromInt(100)},
		},
	}
	suite.mockInvoiceService.On("GetInvoice", mock.Anything, "30").Return(invoice, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/invoices/30", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("30", resp.InvoiceNumber)
	suite.Equal("2024-01-01", resp.Date)
	suite.Require().Len(resp.Items, 1)
	suite.Equal("Urea", resp.Items[0].ProductName)
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NotFound() {
	suite.mockInvoiceService.On("GetInvoice", mock.Anything, "99").Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/invoices/99", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Invoice not found")
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_PassesFilters() {
	suite.mockInvoiceService.On("ListInvoices", mock.Anything, dto.ListInvoicesParams{
		PartyName: "Hamid Traders",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}).Return([]domain.Invoice{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/invoices?partyName=Hamid+Traders&startDate=2024-01-01&endDate=2024-01-31", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestDeleteInvoice_Success() {
	expected := &dto.DeleteInvoiceResponse{
		Message:             "Invoice deleted successfully.",
		PartyName:           "Hamid Traders",
		CurrentPartyBalance: decimal.NewFromInt(50),
	}
	suite.mockInvoiceService.On("DeleteInvoice", mock.Anything, "30").Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/invoices/30", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DeleteInvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Hamid Traders", resp.PartyName)
	suite.True(resp.CurrentPartyBalance.Equal(decimal.NewFromInt(50)))
}

func (suite *InvoiceHandlerTestSuite) TestNextInvoiceNumber() {
	suite.mockInvoiceService.On("NextInvoiceNumber", mock.Anything).Return("32", nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/next-invoice-number", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.NextInvoiceNumberResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("32", resp.NextInvoiceNumber)
}

func TestInvoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
