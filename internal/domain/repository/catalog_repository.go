// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// ListProducts retrieves every product with its category, ordered by name.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListAvailableProducts retrieves products offered by at least one restaurant.
	ListAvailableProducts(ctx context.Context) ([]*entity.Product, error)

	// FindProductsByIDs retrieves the products with the given IDs in a single query.
	// Unknown IDs are simply absent from the result.
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
}

// RestaurantRepository defines the interface for restaurant-related database operations.
type RestaurantRepository interface {
	// ListRestaurants retrieves every restaurant ordered by name.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)

	// FindRestaurantByID retrieves a restaurant by its unique ID.
	// Returns ErrRestaurantNotFound when it does not exist.
	FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
}

// MenuRepository defines the interface for restaurant menu rows.
type MenuRepository interface {
	// ListAvailableMenuItems retrieves every row with availability=true in one query.
	ListAvailableMenuItems(ctx context.Context) ([]*entity.MenuItem, error)

	// ListMenuItems retrieves every menu row regardless of availability.
	ListMenuItems(ctx context.Context) ([]*entity.MenuItem, error)

	// UpsertMenuItem creates the (restaurant, product) row or updates its availability.
	UpsertMenuItem(ctx context.Context, item *entity.MenuItem) error
}
