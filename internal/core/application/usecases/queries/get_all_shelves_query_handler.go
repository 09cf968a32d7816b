package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllShelvesQueryHandler lists every shelf joined with its occupant order.
type GetAllShelvesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShelvesQueryHandler creates a handler for shelf board listings.
// Requires a GORM database connection for query execution.
func NewGetAllShelvesQueryHandler(db *gorm.DB) GetAllShelvesQueryHandler {
	return GetAllShelvesQueryHandler{db: db}
}

// Handle executes the query.
// Results are sorted by shelf code for consistent output.
func (h GetAllShelvesQueryHandler) Handle(
	ctx context.Context,
	query GetAllShelvesQuery,
) ([]GetShelfQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY s.code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shelves := make([]GetShelfQueryResponse, 0)
	for rows.Next() {
		var (
			code     string
			stage    int
			occupant occupantColumns
		)
		if err = rows.Scan(&code, &stage,
			&occupant.orderID, &occupant.ownerID, &occupant.nfcTag,
			&occupant.status, &occupant.shelfLocation); err != nil {
			return nil, err
		}

		resp, respErr := buildShelfResponse(code, stage, occupant)
		if respErr != nil {
			return nil, respErr
		}
		shelves = append(shelves, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shelves, nil
}
