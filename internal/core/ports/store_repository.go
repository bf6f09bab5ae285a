package ports

import (
	"context"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
type StoreRepository interface {
	// Add persists a new store. Returns errs.ObjectAlreadyExistsError when
	// the store name collides with an existing record (case-sensitive
	// unique index).
	Add(ctx context.Context, aggregate *store.Store) error

	// Update persists changes to an existing store aggregate.
	Update(ctx context.Context, aggregate *store.Store) error

	// GetByName retrieves a store by its exact name.
	// Returns errs.ObjectNotFoundError when no record matches.
	GetByName(ctx context.Context, name string) (*store.Store, error)

	// Delete removes a store by id.
	// Returns errs.ObjectNotFoundError when no record matches.
	Delete(ctx context.Context, id kernel.UUID) error
}
