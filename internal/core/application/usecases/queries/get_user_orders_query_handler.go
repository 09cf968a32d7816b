package queries

import (
	"context"

	"laundrytrack/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler lists one customer's orders from the database.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for customer order listings.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query.
// Results are sorted by order ID for consistent output. A customer with no
// orders gets an empty slice, not an error.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := services.AuthorizeOwnerOrAdmin(
		query.CallerRole(), query.CallerID(), query.OwnerID(), "get user orders"); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			nfc_tag,
			status,
			shelf_location,
			status_log
		FROM orders
		WHERE owner_id = ?
		ORDER BY id
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrderQueryResponse, 0)
	for rows.Next() {
		var (
			id, ownerID   uuid.UUID
			nfcTag        *string
			status        int
			shelfLocation string
			statusLogRaw  []byte
		)
		if err = rows.Scan(&id, &ownerID, &nfcTag, &status, &shelfLocation, &statusLogRaw); err != nil {
			return nil, err
		}

		resp, respErr := buildOrderResponse(id, ownerID, nfcTag, status, shelfLocation, statusLogRaw)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
