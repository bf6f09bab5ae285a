package ports

import (
	"context"

	"fastdelivery/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for staff user aggregates.
type UserRepository interface {
	// Add persists a new user. Returns errs.ObjectAlreadyExistsError when
	// the normalized username collides with an existing record.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// GetByUsername retrieves a user by username. The lookup normalizes the
	// argument (trim plus lowercase) before matching.
	// Returns errs.ObjectNotFoundError when no record matches.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
