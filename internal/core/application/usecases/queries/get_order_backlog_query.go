package queries

import (
	"errors"

	"fastdelivery/internal/pkg/guard"
)

var ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
	"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
)

// GetOrderBacklogQuery counts orders still awaiting approval. Used by the
// backlog reporter job; never exposed over HTTP.
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderBacklogQuery creates a parameterless backlog count query.
func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}
