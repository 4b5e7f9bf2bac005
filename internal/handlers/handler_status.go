package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hamidtraders/invoice_ledger_app/internal/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

// statusHandler reports backend and database health.
type statusHandler struct {
	dbPool *pgxpool.Pool
}

func newStatusHandler(dbPool *pgxpool.Pool) *statusHandler {
	return &statusHandler{dbPool: dbPool}
}

// getStatus godoc
// @Summary Backend and database status
// @Description Reports whether the backend is up and the database reachable
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string "Status and database connectivity"
// @Router /status [get]
func (h *statusHandler) getStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	database := "connected"
	if err := h.dbPool.Ping(c.Request.Context()); err != nil {
		logger.Error("Database ping failed", slog.String("error", err.Error()))
		database = err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "Backend is running",
		"database": database,
	})
}

// registerStatusRoutes registers the status probe
func registerStatusRoutes(group *gin.RouterGroup, dbPool *pgxpool.Pool) {
	statusHandler := newStatusHandler(dbPool)
	group.GET("/status", statusHandler.getStatus)
}
