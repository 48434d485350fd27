// Package http exposes the order API over HTTP.
package http

import (
	"errors"
	"net/http"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP endpoints for submitting and querying orders.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler commands.SubmitOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	metrics *metrics.Registry
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	registry *metrics.Registry,
) *Server {
	return &Server{
		submitOrderHandler: submitOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
		metrics:            registry,
	}
}

// RegisterRoutes attaches the API endpoints to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.SubmitOrder)
	e.GET("/orders", s.ListOrders)
	e.GET("/orders/:orderId", s.GetOrder)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
}

// SubmitOrderRequest is the JSON body of POST /orders.
type SubmitOrderRequest struct {
	Customer string  `json:"customer"`
	Product  string  `json:"product"`
	Amount   float64 `json:"amount"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	OrderID   string     `json:"orderId"`
	Customer  string     `json:"customer"`
	Product   string     `json:"product"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ErrorResponse is the JSON body of error replies.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SubmitOrder handles POST /orders - accepts a new order and returns its
// created representation with the server-assigned identifier. The order is
// durably stored before the reply; the OrderCreated event follows through
// the outbox relay.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var request SubmitOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(orderID, request.Customer, request.Product, request.Amount)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, handleErr := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		if isValidationError(handleErr) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid order data: " + handleErr.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to submit order",
		})
	}

	s.metrics.OrdersSubmitted.Inc()
	return ctx.JSON(http.StatusCreated, OrderResponse{
		OrderID:   created.ID().String(),
		Customer:  created.Customer(),
		Product:   created.Product(),
		Amount:    created.Amount(),
		Status:    created.Status().String(),
		CreatedAt: created.CreatedAt(),
		UpdatedAt: created.UpdatedAt(),
	})
}

// GetOrder handles GET /orders/{orderId} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// ListOrders handles GET /orders - retrieves orders sorted by creation time
// descending, optionally filtered by status and paginated with page and
// pageSize parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var params struct {
		Status   string `query:"status"`
		Page     int    `query:"page"`
		PageSize int    `query:"pageSize"`
	}
	if err := ctx.Bind(&params); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid query parameters",
		})
	}

	query, err := queries.NewListOrdersQuery(params.Status, params.Page, params.PageSize)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid query parameters: " + err.Error(),
		})
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderResponse, len(orders))
	for i, result := range orders {
		response[i] = toOrderResponse(result)
	}

	return ctx.JSON(http.StatusOK, response)
}

func toOrderResponse(result queries.OrderResponse) OrderResponse {
	return OrderResponse{
		OrderID:   result.ID.String(),
		Customer:  result.Customer,
		Product:   result.Product,
		Amount:    result.Amount,
		Status:    result.Status,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}
}

// isValidationError reports whether the error stems from invalid input
// rather than an infrastructure failure.
func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired)
}
