// Package http exposes the laundry tracking API over HTTP using echo.
// Request identity arrives in headers set by the API gateway; this layer
// translates HTTP shapes into commands and queries and maps domain errors
// to status codes.
package http

import "time"

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ShelfLocation string `json:"shelf_location"`
}

// CreateNfcOrderRequest is the body of POST /api/v1/orders/nfc.
// InitialStatus accepts canonical status names and the station aliases
// "Washing" and "Ready".
type CreateNfcOrderRequest struct {
	ShelfLocation string `json:"shelf_location"`
	InitialStatus string `json:"initial_status"`
}

// CreateOrderResponse is returned by both order creation endpoints.
type CreateOrderResponse struct {
	ID     string  `json:"id"`
	NfcTag *string `json:"nfc_tag,omitempty"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
// An empty shelf_location keeps the order where it is.
type UpdateOrderStatusRequest struct {
	Status        string `json:"status"`
	ShelfLocation string `json:"shelf_location,omitempty"`
}

// StatusLogItemResponse is one entry of an order's status history.
type StatusLogItemResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderResponse represents a single order.
type OrderResponse struct {
	ID            string                  `json:"id"`
	OwnerID       string                  `json:"owner_id"`
	NfcTag        *string                 `json:"nfc_tag,omitempty"`
	Status        string                  `json:"status"`
	ShelfLocation string                  `json:"shelf_location"`
	StatusLog     []StatusLogItemResponse `json:"status_log"`
}

// AdminOrderResponse represents one order in the back office listing,
// enriched with the owner's directory record.
type AdminOrderResponse struct {
	ID            string  `json:"id"`
	OwnerID       string  `json:"owner_id"`
	OwnerName     string  `json:"owner_name"`
	OwnerEmail    string  `json:"owner_email"`
	NfcTag        *string `json:"nfc_tag,omitempty"`
	Status        string  `json:"status"`
	ShelfLocation string  `json:"shelf_location"`
}

// CreateShelfRequest is the body of POST /api/v1/shelves.
type CreateShelfRequest struct {
	Code  string `json:"code"`
	Stage string `json:"stage"`
}

// UpdateShelfRequest is the body of PATCH /api/v1/shelves/:code.
// Omitted fields leave the shelf untouched. ClearOrder and CurrentOrderID
// are mutually exclusive.
type UpdateShelfRequest struct {
	Stage          *string `json:"stage,omitempty"`
	ClearOrder     bool    `json:"clear_order,omitempty"`
	CurrentOrderID *string `json:"current_order_id,omitempty"`
}

// ShelfOccupantResponse is the order record resting on an occupied shelf.
type ShelfOccupantResponse struct {
	ID            string  `json:"id"`
	OwnerID       string  `json:"owner_id"`
	NfcTag        *string `json:"nfc_tag,omitempty"`
	Status        string  `json:"status"`
	ShelfLocation string  `json:"shelf_location"`
}

// ShelfResponse represents a single shelf with its derived occupancy.
type ShelfResponse struct {
	Code         string                 `json:"code"`
	Stage        string                 `json:"stage"`
	IsOccupied   bool                   `json:"is_occupied"`
	CurrentOrder *ShelfOccupantResponse `json:"current_order,omitempty"`
}
