// Package courierrepo persists courier aggregates.
package courierrepo

import (
	"time"

	"fastdelivery/internal/core/domain/model/courier"
	"fastdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
type CourierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Vehicle   string    `gorm:"not null"`
	Available bool
	CreatedAt time.Time
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Vehicle:   aggregate.Vehicle(),
		Available: aggregate.Available(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Vehicle, dto.Available, dto.CreatedAt)
}
