// Package orderrepo persists order aggregates. Line items are stored as a
// jsonb document inside the order row; they have no identity of their own and
// are always read and written with the whole aggregate.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status carries the wire name (PENDING, IN_DELIVERY, DELIVERED) and is
// indexed for the status filter of the order listing.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StoreID      uuid.UUID  `gorm:"type:uuid;index"`
	CustomerName string     `gorm:"not null"`
	Items        ItemsJSON  `gorm:"type:jsonb;not null"`
	Total        float64    `gorm:"not null"`
	Status       string     `gorm:"index;not null"`
	CourierID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	DeliveredAt  *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one line item inside the jsonb items document.
type ItemDTO struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// ItemsJSON marshals the item list to and from the jsonb column.
type ItemsJSON []ItemDTO

// Value implements driver.Valuer.
func (i ItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(i)
}

// Scan implements sql.Scanner.
func (i *ItemsJSON) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	domainItems := aggregate.Items()
	items := make(ItemsJSON, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, ItemDTO{
			Name:  item.Name(),
			Qty:   item.Qty(),
			Price: item.Price(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		StoreID:      aggregate.StoreID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		Items:        items,
		Total:        aggregate.Total(),
		Status:       aggregate.Status().String(),
		CourierID:    courierID,
		CreatedAt:    aggregate.CreatedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO back to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.RestoreItem(itemDTO.Name, itemDTO.Qty, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		storeID,
		dto.CustomerName,
		items,
		dto.Total,
		status,
		courierID,
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}
