package queries

import (
	"context"

	"fastdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAvailableCouriersQueryHandler retrieves available couriers from the database.
type ListAvailableCouriersQueryHandler struct {
	db *gorm.DB
}

// NewListAvailableCouriersQueryHandler creates a handler for available courier queries.
func NewListAvailableCouriersQueryHandler(db *gorm.DB) ListAvailableCouriersQueryHandler {
	return ListAvailableCouriersQueryHandler{db: db}
}

// Handle executes the query and returns couriers with the availability flag set.
func (h ListAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]CourierResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			vehicle,
			available,
			created_at
		FROM couriers
		WHERE available
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp CourierResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Vehicle,
			&resp.Available,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = courierID
		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
