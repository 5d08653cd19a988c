package handler

import (
	"log/slog"
	"net/http"

	"foodcart/internal/delivery/api/middleware"
	"foodcart/internal/delivery/api/response"
	"foodcart/internal/domain/entity"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssignmentHandlerParams holds dependencies for AssignmentHandler, injected by Fx.
type AssignmentHandlerParams struct {
	fx.In

	AssignmentUC usecase.AssignmentUsecase
	Logger       *slog.Logger
}

// AssignmentHandler serves the manager order panel
type AssignmentHandler struct {
	assignmentUC usecase.AssignmentUsecase
	logger       *slog.Logger
}

// NewAssignmentHandler is the constructor for AssignmentHandler
func NewAssignmentHandler(params AssignmentHandlerParams) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUC: params.AssignmentUC,
		logger:       params.Logger,
	}
}

// AssignRestaurantRequest represents the request body for an assignment
type AssignRestaurantRequest struct {
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
}

// AdvanceStatusRequest represents the request body for a status change
type AdvanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unprocessed cooking shipped delivered"`
}

// AssignRestaurantResponse is the assigned order with an optional warning
type AssignRestaurantResponse struct {
	Order   *OrderResponse `json:"order"`
	Warning string         `json:"warning,omitempty"`
}

// ListActiveOrders returns every active order with its candidate restaurants
func (h *AssignmentHandler) ListActiveOrders(c echo.Context) error {
	assignments, err := h.assignmentUC.ListActiveOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]*OrderAssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		resp = append(resp, newOrderAssignmentResponse(assignment))
	}

	return response.Success(c, http.StatusOK, resp)
}

// QualifyingRestaurants returns the candidate restaurants of one order
func (h *AssignmentHandler) QualifyingRestaurants(c echo.Context) error {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	assignment, err := h.assignmentUC.QualifyingRestaurants(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderAssignmentResponse(assignment))
}

// AssignRestaurant attaches a cooking restaurant to an order
func (h *AssignmentHandler) AssignRestaurant(c echo.Context) error {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req AssignRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	output, err := h.assignmentUC.AssignRestaurant(c.Request().Context(), orderID, req.RestaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	username, _ := middleware.GetUsername(c)
	h.logger.Info("Restaurant assigned by manager",
		slog.String("manager", username),
		slog.String("order_id", orderID.String()),
		slog.String("restaurant_id", req.RestaurantID.String()),
	)

	return response.Success(c, http.StatusOK, &AssignRestaurantResponse{
		Order:   newOrderResponse(output.Order),
		Warning: output.Warning,
	})
}

// AdvanceStatus moves an order to its next status
func (h *AssignmentHandler) AdvanceStatus(c echo.Context) error {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req AdvanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	order, err := h.assignmentUC.AdvanceStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// MarkCalled records that the customer was phoned
func (h *AssignmentHandler) MarkCalled(c echo.Context) error {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.assignmentUC.MarkCalled(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}
