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

// ledgerHandler handles HTTP requests for the read-only ledger views.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

// getPartyLedger godoc
// @Summary One party's ledger timeline
// @Description Retrieves the merged invoice-item/payment timeline with opening and current balance
// @Tags ledger
// @Produce json
// @Param party path string true "Party name"
// @Success 200 {object} dto.PartyLedgerResponse "Ledger view"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Router /ledger/{party} [get]
func (h *ledgerHandler) getPartyLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyName := c.Param("party")

	ledger, err := h.ledgerService.GetPartyLedger(c.Request.Context(), partyName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Party not found for ledger", slog.String("party_name", partyName))
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
			return
		}
		logger.Error("Failed to build party ledger", slog.String("error", err.Error()), slog.String("party_name", partyName))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build party ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyLedgerResponse(*ledger))
}

// listAllPartyLedgers godoc
// @Summary All parties overview
// @Description Returns every party with its current balance
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.PartyLedgerSummaryResponse "Parties with balances"
// @Failure 500 {object} map[string]string "Failed to list ledgers"
// @Router /all-party-ledgers [get]
func (h *ledgerHandler) listAllPartyLedgers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.ledgerService.ListAllPartyLedgers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list party ledgers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list party ledgers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyLedgerSummaryResponses(balances))
}

// registerLedgerRoutes registers ledger specific routes
func registerLedgerRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	ledgerHandler := newLedgerHandler(ledgerService)

	group.GET("/ledger/:party", ledgerHandler.getPartyLedger)
	group.GET("/all-party-ledgers", ledgerHandler.listAllPartyLedgers)
}
