package services

import (
	"context"

	portsrepo "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hamidtraders/invoice_ledger_app/internal/core/ports/services"
	"github.com/hamidtraders/invoice_ledger_app/internal/middleware"
)

type adminService struct {
	adminRepo portsrepo.AdminRepositoryFacade
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo portsrepo.AdminRepositoryFacade) portssvc.AdminSvcFacade {
	return &adminService{adminRepo: adminRepo}
}

// Ensure adminService implements the portssvc.AdminSvcFacade interface
var _ portssvc.AdminSvcFacade = (*adminService)(nil)

// DeleteAllData wipes every table and resets identities.
func (s *adminService) DeleteAllData(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.adminRepo.DeleteAllData(ctx); err != nil {
		return err
	}
	logger.Warn("All application data deleted")
	return nil
}
