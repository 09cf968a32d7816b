package http

import (
	"net/http"

	"laundrytrack/internal/core/application/usecases/commands"
	"laundrytrack/internal/core/application/usecases/queries"
	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/core/domain/model/shelf"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	createNfcOrderHandler    commands.CreateNfcOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	completeOrderHandler     commands.CompleteOrderCommandHandler
	createShelfHandler       commands.CreateShelfCommandHandler
	updateShelfHandler       commands.UpdateShelfCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	getUserOrdersHandler queries.GetUserOrdersQueryHandler
	getAllOrdersHandler  queries.GetAllOrdersQueryHandler
	getShelfHandler      queries.GetShelfQueryHandler
	getAllShelvesHandler queries.GetAllShelvesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createNfcOrderHandler commands.CreateNfcOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	createShelfHandler commands.CreateShelfCommandHandler,
	updateShelfHandler commands.UpdateShelfCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getShelfHandler queries.GetShelfQueryHandler,
	getAllShelvesHandler queries.GetAllShelvesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		createNfcOrderHandler:    createNfcOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		completeOrderHandler:     completeOrderHandler,
		createShelfHandler:       createShelfHandler,
		updateShelfHandler:       updateShelfHandler,
		getOrderHandler:          getOrderHandler,
		getUserOrdersHandler:     getUserOrdersHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getShelfHandler:          getShelfHandler,
		getAllShelvesHandler:     getAllShelvesHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance. The /api/v1
// group requires gateway identity headers; /health and /metrics do not.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", IdentityMiddleware())

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/nfc", s.CreateNfcOrder)
	api.GET("/orders", s.GetAllOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.GET("/users/:id/orders", s.GetUserOrders)

	api.POST("/shelves", s.CreateShelf)
	api.GET("/shelves", s.GetAllShelves)
	api.GET("/shelves/:code", s.GetShelf)
	api.PATCH("/shelves/:code", s.UpdateShelf)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers an untagged order
// owned by the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, callerID(ctx), req.ShelfLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// CreateNfcOrder handles POST /api/v1/orders/nfc - registers an order and
// binds an NFC tag from the pool to it.
func (s *Server) CreateNfcOrder(ctx echo.Context) error {
	var req CreateNfcOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	initialStatus, err := order.StatusFromString(req.InitialStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateNfcOrderCommand(orderID, callerID(ctx), req.ShelfLocation, initialStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	tag, err := s.createNfcOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	tagValue := tag.String()

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:     orderID.String(),
		NfcTag: &tagValue,
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order
// along the pipeline and optionally relocates it.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, req.ShelfLocation, callerRole(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - marks an order as
// picked up and releases its NFC tag.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, callerRole(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
// Customers can only see their own orders.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, callerID(ctx), callerRole(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(found))
}

// GetUserOrders handles GET /api/v1/users/:id/orders - lists a user's orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	ownerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(ownerID, callerID(ctx), callerRole(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(found))
	for i, item := range found {
		response[i] = toOrderResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllOrders handles GET /api/v1/orders - the back office listing of all
// orders joined with the owner directory. Admin only.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	query, err := queries.NewGetAllOrdersQuery(callerRole(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AdminOrderResponse, len(found))
	for i, item := range found {
		response[i] = AdminOrderResponse{
			ID:            item.ID.String(),
			OwnerID:       item.OwnerID.String(),
			OwnerName:     item.OwnerName,
			OwnerEmail:    item.OwnerEmail,
			NfcTag:        item.NfcTag,
			Status:        item.Status,
			ShelfLocation: item.ShelfLocation,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShelf handles POST /api/v1/shelves - registers a shelf. Admin only.
func (s *Server) CreateShelf(ctx echo.Context) error {
	var req CreateShelfRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	stage, err := shelf.StageFromString(req.Stage)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateShelfCommand(req.Code, stage, callerRole(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createShelfHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateShelf handles PATCH /api/v1/shelves/:code - administrative correction
// of a shelf's stage or occupant.
func (s *Server) UpdateShelf(ctx echo.Context) error {
	var req UpdateShelfRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	var stage *shelf.Stage
	if req.Stage != nil {
		parsed, err := shelf.StageFromString(*req.Stage)
		if err != nil {
			return respondError(ctx, err)
		}
		stage = &parsed
	}

	var currentOrder *kernel.UUID
	if req.CurrentOrderID != nil {
		parsed, err := kernel.UUIDFromString(*req.CurrentOrderID)
		if err != nil {
			return respondError(ctx, err)
		}
		currentOrder = &parsed
	}

	cmd, err := commands.NewUpdateShelfCommand(ctx.Param("code"), stage, req.ClearOrder, currentOrder, callerRole(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateShelfHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShelf handles GET /api/v1/shelves/:code - retrieves one shelf with its
// derived occupancy.
func (s *Server) GetShelf(ctx echo.Context) error {
	query, err := queries.NewGetShelfQuery(ctx.Param("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getShelfHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShelfResponse(found))
}

// GetAllShelves handles GET /api/v1/shelves - the shelf board.
func (s *Server) GetAllShelves(ctx echo.Context) error {
	found, err := s.getAllShelvesHandler.Handle(ctx.Request().Context(), queries.NewGetAllShelvesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShelfResponse, len(found))
	for i, item := range found {
		response[i] = toShelfResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

func toOrderResponse(item queries.GetOrderQueryResponse) OrderResponse {
	statusLog := make([]StatusLogItemResponse, len(item.StatusLog))
	for i, entry := range item.StatusLog {
		statusLog[i] = StatusLogItemResponse{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
		}
	}

	return OrderResponse{
		ID:            item.ID.String(),
		OwnerID:       item.OwnerID.String(),
		NfcTag:        item.NfcTag,
		Status:        item.Status,
		ShelfLocation: item.ShelfLocation,
		StatusLog:     statusLog,
	}
}

func toShelfResponse(item queries.GetShelfQueryResponse) ShelfResponse {
	response := ShelfResponse{
		Code:       item.Code,
		Stage:      item.Stage,
		IsOccupied: item.IsOccupied,
	}
	if item.CurrentOrder != nil {
		response.CurrentOrder = &ShelfOccupantResponse{
			ID:            item.CurrentOrder.ID.String(),
			OwnerID:       item.CurrentOrder.OwnerID.String(),
			NfcTag:        item.CurrentOrder.NfcTag,
			Status:        item.CurrentOrder.Status,
			ShelfLocation: item.CurrentOrder.ShelfLocation,
		}
	}
	return response
}
