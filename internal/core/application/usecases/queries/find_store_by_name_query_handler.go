package queries

import (
	"context"
	"database/sql"
	"errors"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindStoreByNameQueryHandler retrieves one store by exact name.
type FindStoreByNameQueryHandler struct {
	db *gorm.DB
}

// NewFindStoreByNameQueryHandler creates a handler for store lookups by name.
func NewFindStoreByNameQueryHandler(db *gorm.DB) FindStoreByNameQueryHandler {
	return FindStoreByNameQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when no store
// carries the exact name.
func (h FindStoreByNameQueryHandler) Handle(
	ctx context.Context,
	query FindStoreByNameQuery,
) (StoreResponse, error) {
	if err := query.Validate(); err != nil {
		return StoreResponse{}, err
	}

	var resp StoreResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			address,
			is_open,
			created_at
		FROM stores
		WHERE name = ?
	`, query.Name()).Row()

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.Category,
		&resp.Address,
		&resp.IsOpen,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return StoreResponse{}, errs.NewObjectNotFoundError("name", query.Name())
	}
	if err != nil {
		return StoreResponse{}, err
	}

	storeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return StoreResponse{}, err
	}
	resp.ID = storeID

	return resp, nil
}
