package repository

import (
	"context"

	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists the order together with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items from the primary database.
	// Returns ErrOrderNotFound when it does not exist.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListActiveWithItems retrieves orders in an active status with their items
	// and products, oldest first. Items are loaded with one extra query.
	ListActiveWithItems(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderState persists status, assignment, distance and timestamps.
	UpdateOrderState(ctx context.Context, order *entity.Order) error
}
