package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"fastdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves orders from the database, decoding the
// jsonb item list of each row.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. With a status filter set only exact matches are
// returned; otherwise every order is listed in insertion order.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			id,
			store_id,
			customer_name,
			items,
			total,
			status,
			courier_id,
			created_at,
			delivered_at
		FROM orders
	`

	tx := h.db.WithContext(ctx)
	var rows *sql.Rows
	var err error
	if query.Status() != "" {
		rows, err = tx.Raw(baseQuery+`WHERE status = ? ORDER BY created_at`, query.Status()).Rows()
	} else {
		rows, err = tx.Raw(baseQuery + `ORDER BY created_at`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id, storeID uuid.UUID
	var courierID uuid.NullUUID
	var items []byte
	var deliveredAt sql.NullTime

	err := rows.Scan(
		&id,
		&storeID,
		&resp.CustomerName,
		&items,
		&resp.Total,
		&resp.Status,
		&courierID,
		&resp.CreatedAt,
		&deliveredAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
		return OrderResponse{}, err
	}
	if courierID.Valid {
		cid, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		resp.CourierID = &cid
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		resp.DeliveredAt = &t
	}

	if err = json.Unmarshal(items, &resp.Items); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
