// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing the
// aggregate repositories and their transaction machinery.
package queries

import (
	"errors"
	"time"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/guard"
)

var ErrListStoresQueryIsNotConstructed = errors.New(
	"ListStoresQuery must be created via NewListStoresQuery constructor",
)

// ListStoresQuery retrieves every registered store, open or closed.
type ListStoresQuery struct {
	guard guard.ConstructorGuard
}

// NewListStoresQuery creates a parameterless query for the full store list.
func NewListStoresQuery() ListStoresQuery {
	return ListStoresQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListStoresQuery) Validate() error {
	return q.guard.Validate(ErrListStoresQueryIsNotConstructed)
}

// StoreResponse is the store read model shared by the store queries.
type StoreResponse struct {
	ID        kernel.UUID
	Name      string
	Category  string
	Address   string
	IsOpen    bool
	CreatedAt time.Time
}
