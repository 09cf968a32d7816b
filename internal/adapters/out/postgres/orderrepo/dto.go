// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes for
// querying by owner, status and tag binding. The status history is stored as
// a JSONB column alongside the order row so the aggregate loads in one read.
type OrderDTO struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID          `gorm:"type:uuid;index"`
	NfcTag        *string            `gorm:"index"`
	Status        int                `gorm:"index"`
	ShelfLocation string             `gorm:"column:shelf_location"`
	StatusLog     []StatusLogItemDTO `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusLogItemDTO represents one entry of the persisted status history.
type StatusLogItemDTO struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional NFC tag binding.
func fromDomain(aggregate *order.Order) OrderDTO {
	var nfcTag *string
	if tag := aggregate.Tag(); tag != nil {
		raw := tag.String()
		nfcTag = &raw
	}

	statusLog := make([]StatusLogItemDTO, 0, len(aggregate.StatusLog()))
	for _, entry := range aggregate.StatusLog() {
		statusLog = append(statusLog, StatusLogItemDTO{
			Status:    int(entry.Status),
			Timestamp: entry.Timestamp,
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		NfcTag:        nfcTag,
		Status:        int(aggregate.Status()),
		ShelfLocation: aggregate.ShelfLocation(),
		StatusLog:     statusLog,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the status history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var nfcTag *kernel.TagID
	if dto.NfcTag != nil {
		tag, tagErr := kernel.NewTagID(*dto.NfcTag)
		if tagErr != nil {
			return nil, tagErr
		}
		nfcTag = &tag
	}

	statusLog := make([]order.LogEntry, 0, len(dto.StatusLog))
	for _, item := range dto.StatusLog {
		statusLog = append(statusLog, order.LogEntry{
			Status:    order.Status(item.Status),
			Timestamp: item.Timestamp,
		})
	}

	return order.RestoreOrder(id, ownerID, nfcTag, order.Status(dto.Status), dto.ShelfLocation, statusLog)
}
