package usecase

import (
	"context"

	"foodcart/internal/domain/entity"

	"github.com/google/uuid"
)

// SetMenuAvailabilityInput toggles whether a restaurant offers a product.
type SetMenuAvailabilityInput struct {
	RestaurantID uuid.UUID
	ProductID    uuid.UUID
	Availability bool
}

// CatalogUsecase defines the interface for products, restaurants and their menus.
type CatalogUsecase interface {
	ListAvailableProducts(ctx context.Context) ([]*entity.Product, error)
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)
	// GetAvailabilityMatrix returns every product against every restaurant.
	GetAvailabilityMatrix(ctx context.Context) (*entity.AvailabilityMatrix, error)
	SetMenuAvailability(ctx context.Context, input *SetMenuAvailabilityInput) (*entity.MenuItem, error)
	ListBanners(ctx context.Context) []*entity.Banner
}
