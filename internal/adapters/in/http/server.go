// Package http is the inbound HTTP adapter. It exposes the order tracking
// use cases as a JSON API under /api/v1 and owns the wire DTOs and the
// mapping from core errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/jobs"
	"ordertracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	AdvanceOrder      commands.AdvanceOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	UpdateOrderNotes  commands.UpdateOrderNotesCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	DuplicateOrder    commands.DuplicateOrderCommandHandler
	ClearOrders       commands.ClearOrdersCommandHandler
	ReplaceOrders     commands.ReplaceOrdersCommandHandler
}

// QueryHandlers bundles the read-side handlers.
type QueryHandlers struct {
	GetAllOrders       queries.GetAllOrdersQueryHandler
	GetOrderByID       queries.GetOrderByIDQueryHandler
	GetOrderStatistics queries.GetOrderStatisticsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commandHandlers CommandHandlers
	queryHandlers   QueryHandlers
	progressManager *jobs.ProgressManager
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	progressManager *jobs.ProgressManager,
) *Server {
	return &Server{
		commandHandlers: commandHandlers,
		queryHandlers:   queryHandlers,
		progressManager: progressManager,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders", s.ReplaceOrders)
	api.DELETE("/orders", s.ClearOrders)

	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.PUT("/orders/:id/notes", s.UpdateOrderNotes)
	api.POST("/orders/:id/duplicate", s.DuplicateOrder)
	api.POST("/orders/:id/auto-progress", s.StartAutoProgress)
	api.DELETE("/orders/:id/auto-progress", s.CancelAutoProgress)

	api.GET("/statistics", s.GetStatistics)
	api.GET("/health", s.Health)
}

// GetOrders handles GET /api/v1/orders - retrieves the full collection.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.queryHandlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.errorReply(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderPayloads(orders))
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(req.ProductName, req.CustomerName, req.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.commandHandlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorReply(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, toOrderPayload(created))
}

// ReplaceOrders handles PUT /api/v1/orders - bulk collection replacement.
func (s *Server) ReplaceOrders(ctx echo.Context) error {
	var payloads []orderPayload
	if err := ctx.Bind(&payloads); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orders := make([]*order.Order, 0, len(payloads))
	for _, p := range payloads {
		o, err := p.toDomain()
		if err != nil {
			return s.errorReply(ctx, err, "Invalid order data")
		}
		orders = append(orders, o)
	}

	cmd, err := commands.NewReplaceOrdersCommand(orders)
	if err != nil {
		return s.errorReply(ctx, err, "Invalid order data")
	}

	if err := s.commandHandlers.ReplaceOrders.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorReply(ctx, err, "Failed to replace orders")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearOrders handles DELETE /api/v1/orders - drops the collection.
func (s *Server) ClearOrders(ctx echo.Context) error {
	if err := s.commandHandlers.ClearOrders.Handle(ctx.Request().Context(), commands.NewClearOrdersCommand()); err != nil {
		return s.errorReply(ctx, err, "Failed to clear orders")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return s.errorReply(ctx, err, "Invalid order id")
	}

	found, err := s.queryHandlers.GetOrderByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorReply(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderPayload(found))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes one order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.errorReply(ctx, err, "Invalid order id")
	}

	// Stop a progress loop that might still reference the order
	s.progressManager.Cancel(orderID)

	if err := s.commandHandlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorReply(ctx, err, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - one step forward.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return s.errorReply(ctx, err, "Invalid order id")
	}

	result, err := s.commandHandlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorReply(ctx, err, "Failed to advance order")
	}

	return ctx.JSON(http.StatusOK, advanceResponse{
		Order:    toOrderPayload(result.Order),
		Advanced: result.Advanced,
		Terminal: result.Terminal,
	})
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req updateStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Status(*req.Status))
	if err != nil {
		return s.errorReply(ctx, err, "Invalid status")
	}

	if err := s.commandHandlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorReply(ctx, err, "Failed to update status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderNotes handles PUT /api/v1/orders/:id/notes.
func (s *Server) UpdateOrderNotes(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req updateNotesRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderNotesCommand(orderID, *req.Notes)
	if err != nil {
		return s.errorReply(ctx, err, "Invalid notes")
	}

	if err := s.commandHandlers.UpdateOrderNotes.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorReply(ctx, err, "Failed to update notes")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DuplicateOrder handles POST /api/v1/orders/:id/duplicate.
func (s *Server) DuplicateOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDuplicateOrderCommand(orderID)
	if err != nil {
		return s.errorReply(ctx, err, "Invalid order id")
	}

	duplicated, err := s.commandHandlers.DuplicateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorReply(ctx, err, "Failed to duplicate order")
	}

	return ctx.JSON(http.StatusCreated, toOrderPayload(duplicated))
}

// StartAutoProgress handles POST /api/v1/orders/:id/auto-progress.
func (s *Server) StartAutoProgress(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	// The body is optional; an empty one selects the default interval
	var req autoProgressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid interval")
	}

	interval := time.Duration(req.IntervalSeconds) * time.Second
	if err := s.progressManager.Start(ctx.Request().Context(), orderID, interval); err != nil {
		return s.errorReply(ctx, err, "Failed to start auto progress")
	}

	return ctx.NoContent(http.StatusAccepted)
}

// CancelAutoProgress handles DELETE /api/v1/orders/:id/auto-progress.
func (s *Server) CancelAutoProgress(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	s.progressManager.Cancel(orderID)
	return ctx.NoContent(http.StatusNoContent)
}

// GetStatistics handles GET /api/v1/statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	stats, err := s.queryHandlers.GetOrderStatistics.Handle(
		ctx.Request().Context(), queries.NewGetOrderStatisticsQuery())
	if err != nil {
		return s.errorReply(ctx, err, "Failed to compute statistics")
	}

	return ctx.JSON(http.StatusOK, toStatisticsResponse(stats))
}

// Health handles GET /api/v1/health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func parseOrderID(ctx echo.Context) (kernel.OrderID, error) {
	return kernel.OrderIDFromString(ctx.Param("id"))
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return badRequest(ctx, "Invalid request body: "+err.Error())
	}
	return nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorReply maps a core error to its HTTP status.
func (s *Server) errorReply(ctx echo.Context, err error, message string) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrOrderAlreadyDelivered),
		errors.Is(err, jobs.ErrOrderAlreadyDelivered),
		errors.Is(err, jobs.ErrAutoProgressAlreadyRunning),
		errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: message + ": " + err.Error(),
	})
}
