package queries

import (
	"errors"
	"strings"
	"time"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders, optionally narrowed to one exact status.
// An empty status lists every order; an unrecognized status matches nothing
// rather than failing.
type ListOrdersQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an order list query. Status is the optional
// exact-match wire value (PENDING, IN_DELIVERY, DELIVERED); blank disables
// the filter.
func NewListOrdersQuery(status string) ListOrdersQuery {
	return ListOrdersQuery{
		status: strings.TrimSpace(status),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the exact-match status filter, empty when unset.
func (q ListOrdersQuery) Status() string {
	return q.status
}

// OrderItemResponse is one order line item in the read model.
type OrderItemResponse struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// OrderResponse is the order read model.
type OrderResponse struct {
	ID           kernel.UUID
	StoreID      kernel.UUID
	CustomerName string
	Items        []OrderItemResponse
	Total        float64
	Status       string
	CourierID    *kernel.UUID
	CreatedAt    time.Time
	DeliveredAt  *time.Time
}
