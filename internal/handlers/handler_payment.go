package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
	"github.com/hamidtraders/invoice_ledger_app/internal/middleware"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(paymentService portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a payment against a party, creating the party when the name is new
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.CreatePaymentResponse "Recorded payment summary"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreatePaymentRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// listPayments godoc
// @Summary List payments
// @Description Retrieves payments, optionally filtered by party and date range, newest first
// @Tags payments
// @Produce json
// @Param partyName query string false "Party name"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.PaymentResponse "Payments"
// @Failure 400 {object} map[string]string "Invalid filters"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListPaymentsParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid payment list filters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Deletes the payment and rebuilds the party's invoices dated on or after it
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.DeletePaymentResponse "Deletion summary"
// @Failure 400 {object} map[string]string "Invalid payment ID"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to delete payment"
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	resp, err := h.paymentService.DeletePayment(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment not found for delete", slog.Int64("payment_id", paymentID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		logger.Error("Failed to delete payment", slog.String("error", err.Error()), slog.Int64("payment_id", paymentID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerPaymentRoutes registers payment specific routes
func registerPaymentRoutes(group *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	paymentHandler := newPaymentHandler(paymentService)

	payments := group.Group("/payments")
	{
		payments.POST("", paymentHandler.createPayment)
		payments.GET("", paymentHandler.listPayments)
		payments.DELETE("/:id", paymentHandler.deletePayment)
	}
}
