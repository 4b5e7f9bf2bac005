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

// partyHandler handles HTTP requests related to parties and their balances.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

// newPartyHandler creates a new partyHandler.
func newPartyHandler(partyService portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{partyService: partyService}
}

// listParties godoc
// @Summary List all parties with balances
// @Description Retrieves every party with its computed current balance, ordered by name
// @Tags parties
// @Produce json
// @Success 200 {array} dto.PartyBalanceItem "Parties with balances"
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.partyService.ListParties(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list parties", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list parties"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyBalanceItems(balances))
}

// getPartyBalance godoc
// @Summary Get one party's balance
// @Description Returns the current and initial opening balance; zeros for an unknown party
// @Tags parties
// @Produce json
// @Param partyName query string true "Party name"
// @Success 200 {object} dto.PartyBalanceResponse "Balances"
// @Failure 400 {object} map[string]string "Missing partyName"
// @Failure 500 {object} map[string]string "Failed to get party balance"
// @Router /party-balance [get]
func (h *partyHandler) getPartyBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	partyName := c.Query("partyName")
	if partyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "partyName query parameter is required"})
		return
	}

	balance, err := h.partyService.GetPartyBalance(c.Request.Context(), partyName)
	if err != nil {
		logger.Error("Failed to get party balance", slog.String("error", err.Error()), slog.String("party_name", partyName))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get party balance"})
		return
	}

	c.JSON(http.StatusOK, balance)
}

// setOpeningBalance godoc
// @Summary Set a party's opening balance
// @Description Upserts the opening balance and appends an audit row; creates the party when new
// @Tags parties
// @Accept json
// @Produce json
// @Param name path string true "Party name"
// @Param request body dto.SetOpeningBalanceRequest true "New opening balance"
// @Success 200 {object} map[string]string "Balance updated"
// @Success 201 {object} map[string]string "Party created with balance"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to set opening balance"
// @Router /parties/{name}/set-prev-balance [post]
func (h *partyHandler) setOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyName := c.Param("name")

	req := dto.SetOpeningBalanceRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for SetOpeningBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.partyService.SetOpeningBalance(c.Request.Context(), partyName, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting opening balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to set opening balance", slog.String("error", err.Error()), slog.String("party_name", partyName))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set opening balance"})
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"message":             "Opening balance set successfully.",
		"currentPartyBalance": result.CurrentPartyBalance,
	})
}

// openingBalanceHistory godoc
// @Summary Opening balance audit history
// @Description Retrieves the opening-balance adjustments of a party, oldest first
// @Tags parties
// @Produce json
// @Param name path string true "Party name"
// @Success 200 {array} dto.OpeningBalanceAdjustmentResponse "Adjustments"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to get history"
// @Router /parties/{name}/opening-balance-history [get]
func (h *partyHandler) openingBalanceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyName := c.Param("name")

	adjustments, err := h.partyService.OpeningBalanceHistory(c.Request.Context(), partyName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Party not found for history", slog.String("party_name", partyName))
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
			return
		}
		logger.Error("Failed to get opening balance history", slog.String("error", err.Error()), slog.String("party_name", partyName))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get opening balance history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOpeningBalanceAdjustmentResponses(adjustments))
}

// RegisterPartyRoutes registers party specific routes
func RegisterPartyRoutes(group *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	partyHandler := newPartyHandler(partyService)

	group.GET("/parties", partyHandler.listParties)
	group.GET("/party-balance", partyHandler.getPartyBalance)

	parties := group.Group("/parties")
	{
		parties.POST("/:name/set-prev-balance", partyHandler.setOpeningBalance)
		parties.GET("/:name/opening-balance-history", partyHandler.openingBalanceHistory)
	}
}
