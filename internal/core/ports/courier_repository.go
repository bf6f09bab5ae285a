package ports

import (
	"context"

	"fastdelivery/internal/core/domain/model/courier"
	"fastdelivery/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	// Returns errs.ObjectNotFoundError when no record matches.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// Delete removes a courier by id.
	// Returns errs.ObjectNotFoundError when no record matches.
	Delete(ctx context.Context, id kernel.UUID) error
}
