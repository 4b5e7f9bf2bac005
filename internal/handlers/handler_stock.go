package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
	"github.com/hamidtraders/invoice_ledger_app/internal/middleware"
)

// stockHandler handles HTTP requests related to stock batches.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

// newStockHandler creates a new stockHandler.
func newStockHandler(stockService portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockService: stockService}
}

// listStock godoc
// @Summary List stock batches
// @Description Retrieves every batch with remaining quantity, ordered product ASC then date DESC
// @Tags stock
// @Produce json
// @Success 200 {array} dto.StockBatchResponse "Batches"
// @Failure 500 {object} map[string]string "Failed to list stock"
// @Router /stock [get]
func (h *stockHandler) listStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	batches, err := h.stockService.ListStock(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list stock", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStockBatchResponses(batches))
}

// addBatches godoc
// @Summary Add stock batches
// @Description Inserts the valid entries of the payload; invalid entries are skipped
// @Tags stock
// @Accept json
// @Produce json
// @Param request body dto.AddStockBatchesRequest true "Batches to add"
// @Success 201 {object} map[string]string "Processed count"
// @Failure 400 {object} map[string]string "Invalid request format or no valid entries"
// @Failure 500 {object} map[string]string "Failed to add stock"
// @Router /stock/batch-add [post]
func (h *stockHandler) addBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.AddStockBatchesRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for AddBatches", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	count, err := h.stockService.AddBatches(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error adding stock", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to add stock batches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add stock batches"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%d stock item(s) processed successfully.", count),
	})
}

// deductStock godoc
// @Summary Deduct stock FIFO
// @Description Drains the requested quantities oldest batch first; any shortage aborts the whole call
// @Tags stock
// @Accept json
// @Produce json
// @Param request body dto.DeductStockRequest true "Quantities to deduct"
// @Success 200 {object} map[string]string "Deduction applied"
// @Failure 400 {object} map[string]string "Invalid request format or insufficient stock"
// @Failure 500 {object} map[string]string "Failed to deduct stock"
// @Router /stock/deduct [post]
func (h *stockHandler) deductStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.DeductStockRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for DeductStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.stockService.DeductStock(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientStock):
			logger.Warn("Insufficient stock for deduction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error deducting stock", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to deduct stock", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deduct stock"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock deducted successfully."})
}

// RegisterStockRoutes registers stock specific routes
func RegisterStockRoutes(group *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	stockHandler := newStockHandler(stockService)

	stock := group.Group("/stock")
	{
		stock.GET("", stockHandler.listStock)
		stock.POST("/batch-add", stockHandler.addBatches)
		stock.POST("/deduct", stockHandler.deductStock)
	}
}
