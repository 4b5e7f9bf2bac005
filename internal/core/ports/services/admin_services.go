package services

import "context"

// AdminSvcFacade defines destructive maintenance operations.
type AdminSvcFacade interface {
	// DeleteAllData wipes every table and resets identities.
	DeleteAllData(ctx context.Context) error
}
