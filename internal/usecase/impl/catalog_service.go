package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodcart/config"
	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo    repository.ProductRepository
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuRepository
	banners        []*entity.Banner
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo    repository.ProductRepository
	RestaurantRepo repository.RestaurantRepository
	MenuRepo       repository.MenuRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	var banners []*entity.Banner
	if params.Config != nil {
		banners = make([]*entity.Banner, 0, len(params.Config.Banners))
		for _, b := range params.Config.Banners {
			banners = append(banners, &entity.Banner{Title: b.Title, Src: b.Src, Text: b.Text})
		}
	}

	return &catalogService{
		productRepo:    params.ProductRepo,
		restaurantRepo: params.RestaurantRepo,
		menuRepo:       params.MenuRepo,
		banners:        banners,
		logger:         params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// ListAvailableProducts returns products that at least one restaurant offers.
func (srv *catalogService) ListAvailableProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAvailableProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available products")
	}

	return products, nil
}

// ListRestaurants returns every restaurant.
func (srv *catalogService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.ListRestaurants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return restaurants, nil
}

// GetAvailabilityMatrix builds the product x restaurant grid. Cells without a
// menu row are reported as unavailable.
func (srv *catalogService) GetAvailabilityMatrix(ctx context.Context) (*entity.AvailabilityMatrix, error) {
	products, err := srv.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	restaurants, err := srv.restaurantRepo.ListRestaurants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	items, err := srv.menuRepo.ListMenuItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	available := make(map[uuid.UUID]map[uuid.UUID]bool, len(products))
	for _, item := range items {
		row, ok := available[item.ProductID]
		if !ok {
			row = make(map[uuid.UUID]bool, len(restaurants))
			available[item.ProductID] = row
		}
		row[item.RestaurantID] = item.Availability
	}

	matrix := &entity.AvailabilityMatrix{
		Restaurants: restaurants,
		Rows:        make([]*entity.ProductAvailability, 0, len(products)),
	}
	for _, product := range products {
		cells := make(map[uuid.UUID]bool, len(restaurants))
		for _, restaurant := range restaurants {
			cells[restaurant.ID] = available[product.ID][restaurant.ID]
		}
		matrix.Rows = append(matrix.Rows, &entity.ProductAvailability{Product: product, Available: cells})
	}

	return matrix, nil
}

// SetMenuAvailability creates or updates the menu row of a restaurant product.
func (srv *catalogService) SetMenuAvailability(ctx context.Context, input *usecase.SetMenuAvailabilityInput) (*entity.MenuItem, error) {
	if _, err := srv.restaurantRepo.FindRestaurantByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound.WrapMessage(fmt.Sprintf("restaurant %s not found", input.RestaurantID))
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	products, err := srv.productRepo.FindProductsByIDs(ctx, []uuid.UUID{input.ProductID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}
	if len(products) == 0 {
		return nil, domainerrors.ErrProductNotFound.WrapMessage(fmt.Sprintf("product %s not found", input.ProductID))
	}

	item := &entity.MenuItem{
		ID:           uuid.New(),
		RestaurantID: input.RestaurantID,
		ProductID:    input.ProductID,
		Availability: input.Availability,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := srv.menuRepo.UpsertMenuItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to upsert menu item")
	}

	srv.log(ctx).Info("Menu availability changed",
		slog.String("restaurant_id", input.RestaurantID.String()),
		slog.String("product_id", input.ProductID.String()),
		slog.Bool("availability", input.Availability),
	)

	return item, nil
}

// ListBanners returns the storefront banners.
func (srv *catalogService) ListBanners(_ context.Context) []*entity.Banner {
	return srv.banners
}
