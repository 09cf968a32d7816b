// Package shelfrepo provides data transfer objects and mapping functions for shelf persistence.
// Shelves are keyed by their human-readable code, so the code column is the primary key.
package shelfrepo

import (
	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/shelf"

	"github.com/google/uuid"
)

// ShelfDTO represents the database structure for persisting shelf aggregates.
// Occupancy is stored only as the current order reference; whether a shelf is
// occupied is derived from it, never stored separately.
type ShelfDTO struct {
	Code           string     `gorm:"primaryKey"`
	Stage          int        `gorm:"index"`
	CurrentOrderID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for shelf entities.
func (ShelfDTO) TableName() string {
	return "shelves"
}

// fromDomain converts a shelf domain aggregate to its database representation.
func fromDomain(aggregate *shelf.Shelf) ShelfDTO {
	var currentOrderID *uuid.UUID
	if id := aggregate.CurrentOrder(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return ShelfDTO{
		Code:           aggregate.Code(),
		Stage:          int(aggregate.Stage()),
		CurrentOrderID: currentOrderID,
	}
}

// toDomain converts a database DTO to a shelf domain aggregate.
func toDomain(dto ShelfDTO) (*shelf.Shelf, error) {
	var currentOrder *kernel.UUID
	if dto.CurrentOrderID != nil {
		id, err := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if err != nil {
			return nil, err
		}
		currentOrder = &id
	}

	return shelf.RestoreShelf(dto.Code, shelf.Stage(dto.Stage), currentOrder)
}
