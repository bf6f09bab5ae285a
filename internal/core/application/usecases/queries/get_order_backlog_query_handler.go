package queries

import (
	"context"

	"fastdelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderBacklogQueryHandler counts PENDING orders.
type GetOrderBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBacklogQueryHandler creates a handler for the backlog count query.
func NewGetOrderBacklogQueryHandler(db *gorm.DB) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{db: db}
}

// Handle executes the count query.
func (h GetOrderBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBacklogQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM orders
		WHERE status = ?
	`, order.Pending.String()).Row()

	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
