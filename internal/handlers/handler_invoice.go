package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hamidtraders/invoice_ledger_app/internal/apperrors"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/dto"
	"github.com/hamidtraders/invoice_ledger_app/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(invoiceService portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: invoiceService}
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Creates an invoice with its items, stamping it with the party balance at its chain position
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body dto.CreateInvoiceRequest true "Invoice and items"
// @Success 201 {object} dto.CreateInvoiceResponse "Created invoice summary"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Duplicate invoice number"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateInvoiceRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate invoice number", slog.String("invoice_number", req.InvoiceNumber))
			c.JSON(http.StatusConflict, gin.H{"error": "Invoice number already exists"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves invoices with items, optionally filtered by party and date range, newest first
// @Tags invoices
// @Produce json
// @Param partyName query string false "Party name"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.InvoiceResponse "Invoices"
// @Failure 400 {object} map[string]string "Invalid filters"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListInvoicesParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid invoice list filters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}

// getInvoice godoc
// @Summary Get one invoice
// @Description Retrieves an invoice with its items by invoice number
// @Tags invoices
// @Produce json
// @Param number path string true "Invoice number"
// @Success 200 {object} dto.InvoiceResponse "Invoice with items"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /invoices/{number} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceNumber := c.Param("number")

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), invoiceNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found", slog.String("invoice_number", invoiceNumber))
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		logger.Error("Failed to get invoice", slog.String("error", err.Error()), slog.String("invoice_number", invoiceNumber))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(*invoice))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Replaces the invoice's party, date, and items; stored previous balance is kept
// @Tags invoices
// @Accept json
// @Produce json
// @Param number path string true "Invoice number"
// @Param request body dto.UpdateInvoiceRequest true "New party, date, and items"
// @Success 200 {object} dto.UpdateInvoiceResponse "Updated invoice summary"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to update invoice"
// @Router /invoices/{number} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceNumber := c.Param("number")

	req := dto.UpdateInvoiceRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceNumber, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Invoice not found for update", slog.String("invoice_number", invoiceNumber))
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update invoice", slog.String("error", err.Error()), slog.String("invoice_number", invoiceNumber))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Deletes the invoice and rebuilds the party's later invoices without it
// @Tags invoices
// @Produce json
// @Param number path string true "Invoice number"
// @Success 200 {object} dto.DeleteInvoiceResponse "Deletion summary"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to delete invoice"
// @Router /invoices/{number} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceNumber := c.Param("number")

	resp, err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found for delete", slog.String("invoice_number", invoiceNumber))
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		logger.Error("Failed to delete invoice", slog.String("error", err.Error()), slog.String("invoice_number", invoiceNumber))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// nextInvoiceNumber godoc
// @Summary Next free invoice number
// @Description Returns the next numeric invoice number to offer in the entry form
// @Tags invoices
// @Produce json
// @Success 200 {object} dto.NextInvoiceNumberResponse "Next number"
// @Failure 500 {object} map[string]string "Failed to compute next invoice number"
// @Router /next-invoice-number [get]
func (h *invoiceHandler) nextInvoiceNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	next, err := h.invoiceService.NextInvoiceNumber(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute next invoice number", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute next invoice number"})
		return
	}

	c.JSON(http.StatusOK, dto.NextInvoiceNumberResponse{NextInvoiceNumber: next})
}

// RegisterInvoiceRoutes registers invoice specific routes
func RegisterInvoiceRoutes(group *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	invoiceHandler := newInvoiceHandler(invoiceService)

	group.GET("/next-invoice-number", invoiceHandler.nextInvoiceNumber)

	invoices := group.Group("/invoices")
	{
		invoices.POST("", invoiceHandler.createInvoice)
		invoices.GET("", invoiceHandler.listInvoices)
		invoices.GET("/:number", invoiceHandler.getInvoice)
		invoices.PUT("/:number", invoiceHandler.updateInvoice)
		invoices.DELETE("/:number", invoiceHandler.deleteInvoice)
	}
}
