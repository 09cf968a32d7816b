package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/core/domain/model/shelf"
	"laundrytrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShelfQueryHandler retrieves one shelf joined with its occupant order.
type GetShelfQueryHandler struct {
	db *gorm.DB
}

// NewGetShelfQueryHandler creates a handler for single shelf lookups.
// Requires a GORM database connection for query execution.
func NewGetShelfQueryHandler(db *gorm.DB) GetShelfQueryHandler {
	return GetShelfQueryHandler{db: db}
}

// Handle executes the query.
// Returns ObjectNotFoundError for unknown shelf codes.
func (h GetShelfQueryHandler) Handle(ctx context.Context, query GetShelfQuery) (GetShelfQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShelfQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.code,
			s.stage,
			s.current_order_id,
			o.owner_id,
			o.nfc_tag,
			o.status,
			o.shelf_location
		FROM shelves s
		LEFT JOIN orders o ON o.id = s.current_order_id
		WHERE s.code = ?
	`, query.Code()).Row()

	var (
		code     string
		stage    int
		occupant occupantColumns
	)
	if err := row.Scan(&code, &stage,
		&occupant.orderID, &occupant.ownerID, &occupant.nfcTag,
		&occupant.status, &occupant.shelfLocation); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetShelfQueryResponse{}, errs.NewObjectNotFoundError("code", query.Code())
		}
		return GetShelfQueryResponse{}, err
	}

	return buildShelfResponse(code, stage, occupant)
}

// occupantColumns holds the nullable order side of the shelf join.
// Every field is nil on an empty shelf; ownerID and status are additionally
// nil when the shelf references an order that no longer exists.
type occupantColumns struct {
	orderID       *uuid.UUID
	ownerID       *uuid.UUID
	nfcTag        *string
	status        *int
	shelfLocation *string
}

func buildShelfResponse(code string, stage int, occupant occupantColumns) (GetShelfQueryResponse, error) {
	resp := GetShelfQueryResponse{
		Code:       code,
		Stage:      shelf.Stage(stage).String(),
		IsOccupied: occupant.orderID != nil,
	}

	if occupant.orderID == nil || occupant.ownerID == nil || occupant.status == nil {
		return resp, nil
	}

	orderID, err := kernel.UUIDFromBytes((*occupant.orderID)[:])
	if err != nil {
		return GetShelfQueryResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes((*occupant.ownerID)[:])
	if err != nil {
		return GetShelfQueryResponse{}, err
	}

	current := ShelfOccupant{
		ID:      orderID,
		OwnerID: ownerID,
		NfcTag:  occupant.nfcTag,
		Status:  order.Status(*occupant.status).String(),
	}
	if occupant.shelfLocation != nil {
		current.ShelfLocation = *occupant.shelfLocation
	}
	resp.CurrentOrder = &current

	return resp, nil
}
