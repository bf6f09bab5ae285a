package queries

import (
	"context"

	"fastdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListStoresQueryHandler retrieves all stores from the database.
type ListStoresQueryHandler struct {
	db *gorm.DB
}

// NewListStoresQueryHandler creates a handler for store list queries.
func NewListStoresQueryHandler(db *gorm.DB) ListStoresQueryHandler {
	return ListStoresQueryHandler{db: db}
}

// Handle executes the query and returns every store in insertion order.
func (h ListStoresQueryHandler) Handle(
	ctx context.Context,
	query ListStoresQuery,
) ([]StoreResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores := make([]StoreResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			address,
			is_open,
			created_at
		FROM stores
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp StoreResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Category,
			&resp.Address,
			&resp.IsOpen,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		storeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = storeID
		stores = append(stores, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}
