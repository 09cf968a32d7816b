package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/core/domain/services"
	"laundrytrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// The ownership check happens after the row is loaded, since only the row
// knows who owns the order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns ObjectNotFoundError for unknown orders and AccessForbiddenError when
// a customer asks for somebody else's order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			nfc_tag,
			status,
			shelf_location,
			status_log
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id, ownerID   uuid.UUID
		nfcTag        *string
		status        int
		shelfLocation string
		statusLogRaw  []byte
	)
	if err := row.Scan(&id, &ownerID, &nfcTag, &status, &shelfLocation, &statusLogRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	resp, err := buildOrderResponse(id, ownerID, nfcTag, status, shelfLocation, statusLogRaw)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = services.AuthorizeOwnerOrAdmin(
		query.CallerRole(), query.CallerID(), resp.OwnerID, "get order"); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func buildOrderResponse(
	id, ownerID uuid.UUID,
	nfcTag *string,
	status int,
	shelfLocation string,
	statusLogRaw []byte,
) (GetOrderQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	statusLog, err := parseStatusLog(statusLogRaw)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:            orderID,
		OwnerID:       owner,
		NfcTag:        nfcTag,
		Status:        order.Status(status).String(),
		ShelfLocation: shelfLocation,
		StatusLog:     statusLog,
	}, nil
}

func parseStatusLog(raw []byte) ([]StatusLogItem, error) {
	if len(raw) == 0 {
		return []StatusLogItem{}, nil
	}

	var items []struct {
		Status    int    `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	statusLog := make([]StatusLogItem, 0, len(items))
	for _, item := range items {
		entry := StatusLogItem{Status: order.Status(item.Status).String()}
		if ts, err := parseTimestamp(item.Timestamp); err == nil {
			entry.Timestamp = ts
		}
		statusLog = append(statusLog, entry)
	}

	return statusLog, nil
}
