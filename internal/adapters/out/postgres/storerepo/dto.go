// Package storerepo persists store aggregates. The unique index on name is
// the only place duplicate store names are rejected; the index is
// case-sensitive, so names differing in case are distinct stores.
package storerepo

import (
	"time"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting store aggregates.
type StoreDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	Category  string    `gorm:"not null"`
	Address   string
	IsOpen    bool
	CreatedAt time.Time
}

// TableName specifies the database table name for store entities.
func (StoreDTO) TableName() string {
	return "stores"
}

func fromDomain(aggregate *store.Store) StoreDTO {
	return StoreDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Category:  aggregate.Category(),
		Address:   aggregate.Address(),
		IsOpen:    aggregate.IsOpen(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(id, dto.Name, dto.Category, dto.Address, dto.IsOpen, dto.CreatedAt)
}
