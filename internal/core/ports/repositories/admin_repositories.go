package repositories

import "context"

// AdminRepositoryFacade defines destructive maintenance operations.
type AdminRepositoryFacade interface {
	// DeleteAllData truncates every application table and resets identities.
	DeleteAllData(ctx context.Context) error
}
