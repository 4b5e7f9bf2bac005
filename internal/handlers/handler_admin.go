package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/middleware"
)

// adminHandler handles destructive maintenance requests.
type adminHandler struct {
	adminService portssvc.AdminSvcFacade
}

// newAdminHandler creates a new adminHandler.
func newAdminHandler(adminService portssvc.AdminSvcFacade) *adminHandler {
	return &adminHandler{adminService: adminService}
}

// deleteAllData godoc
// @Summary Wipe all application data
// @Description Truncates every table and resets identity sequences
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string "Confirmation"
// @Failure 500 {object} map[string]string "Failed to delete data"
// @Router /admin/delete-all-data [post]
func (h *adminHandler) deleteAllData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.adminService.DeleteAllData(c.Request.Context()); err != nil {
		logger.Error("Failed to delete all data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete all data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All backend data has been successfully deleted and the database re-initialized.",
	})
}

// registerAdminRoutes registers admin specific routes
func registerAdminRoutes(group *gin.RouterGroup, adminService portssvc.AdminSvcFacade) {
	adminHandler := newAdminHandler(adminService)

	admin := group.Group("/admin")
	{
		admin.POST("/delete-all-data", adminHandler.deleteAllData)
	}
}
