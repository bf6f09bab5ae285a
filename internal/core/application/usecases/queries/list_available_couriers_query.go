package queries

import (
	"errors"
	"time"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/guard"
)

var ErrListAvailableCouriersQueryIsNotConstructed = errors.New(
	"ListAvailableCouriersQuery must be created via NewListAvailableCouriersQuery constructor",
)

// ListAvailableCouriersQuery retrieves couriers whose advisory availability
// flag is set. Unavailable couriers stay out of the listing but can still be
// assigned to orders.
type ListAvailableCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewListAvailableCouriersQuery creates a parameterless query for available couriers.
func NewListAvailableCouriersQuery() ListAvailableCouriersQuery {
	return ListAvailableCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableCouriersQueryIsNotConstructed)
}

// CourierResponse is the courier read model.
type CourierResponse struct {
	ID        kernel.UUID
	Name      string
	Vehicle   string
	Available bool
	CreatedAt time.Time
}
