package ports

import (
	"context"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// There is no concurrency token: concurrent updates are last writer wins.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no record matches.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order unconditionally, regardless of status.
	// Returns errs.ObjectNotFoundError when no record matches.
	Delete(ctx context.Context, id kernel.UUID) error
}
