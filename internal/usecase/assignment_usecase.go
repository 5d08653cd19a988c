package usecase

import (
	"context"

	"foodcart/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignRestaurantOutput is the result of attaching a restaurant to an order.
type AssignRestaurantOutput struct {
	Order *entity.Order
	// Warning is set when the restaurant does not offer every ordered product
	// and the assignment was allowed anyway.
	Warning string
}

// AssignmentUsecase defines the manager operations on active orders.
type AssignmentUsecase interface {
	// ListActiveOrders builds the assignment view: every active order with the
	// restaurants able to cook it, nearest first.
	ListActiveOrders(ctx context.Context) ([]*entity.OrderAssignment, error)
	// QualifyingRestaurants builds the assignment view for a single order.
	QualifyingRestaurants(ctx context.Context, orderID uuid.UUID) (*entity.OrderAssignment, error)
	AssignRestaurant(ctx context.Context, orderID, restaurantID uuid.UUID) (*AssignRestaurantOutput, error)
	// AdvanceStatus moves the order one step along its lifecycle.
	AdvanceStatus(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error)
	// MarkCalled records that the manager has phoned the customer.
	MarkCalled(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
}
