package queries

import (
	"context"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists every order for the back office, joined with
// the user directory. The users table is owned by the identity service; this
// handler only ever reads from it.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the back office listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Administrators only.
// Orders whose owner is missing from the user directory are still listed,
// with empty name and email.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := services.AuthorizeAdmin(query.CallerRole(), "get all orders"); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.owner_id,
			COALESCE(u.name, ''),
			COALESCE(u.email, ''),
			o.nfc_tag,
			o.status,
			o.shelf_location
		FROM orders o
		LEFT JOIN users u ON u.id = o.owner_id
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id, ownerID           uuid.UUID
			ownerName, ownerEmail string
			nfcTag                *string
			status                int
			shelfLocation         string
		)
		if err = rows.Scan(&id, &ownerID, &ownerName, &ownerEmail, &nfcTag, &status, &shelfLocation); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		owner, ownerErr := kernel.UUIDFromBytes(ownerID[:])
		if ownerErr != nil {
			return nil, ownerErr
		}

		orders = append(orders, GetAllOrdersQueryResponse{
			ID:            orderID,
			OwnerID:       owner,
			OwnerName:     ownerName,
			OwnerEmail:    ownerEmail,
			NfcTag:        nfcTag,
			Status:        order.Status(status).String(),
			ShelfLocation: shelfLocation,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
