package impl

import (
	"context"
	"testing"

	"foodcart/config"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	mockRepo "foodcart/internal/mocks/repository"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T, cfg *config.Config) (
	usecase.CatalogUsecase,
	*mockRepo.MockProductRepository,
	*mockRepo.MockRestaurantRepository,
	*mockRepo.MockMenuRepository,
) {
	productRepo := mockRepo.NewMockProductRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)

	srv := NewCatalogService(CatalogServiceParams{
		ProductRepo:    productRepo,
		RestaurantRepo: restaurantRepo,
		MenuRepo:       menuRepo,
		Config:         cfg,
		Logger:         newTestLogger(),
	})

	return srv, productRepo, restaurantRepo, menuRepo
}

func TestCatalogService_GetAvailabilityMatrix(t *testing.T) {
	srv, productRepo, restaurantRepo, menuRepo := createTestCatalogService(t, &config.Config{})
	ctx := context.Background()
	f := newAssignmentFixture()

	productRepo.EXPECT().ListProducts(ctx).Return([]*entity.Product{f.productA, f.productB, f.productC}, nil)
	restaurantRepo.EXPECT().ListRestaurants(ctx).Return(f.restaurants(), nil)
	menuRepo.EXPECT().ListMenuItems(ctx).Return(append(f.menu,
		&entity.MenuItem{RestaurantID: f.beta.ID, ProductID: f.productB.ID, Availability: false},
	), nil)

	matrix, err := srv.GetAvailabilityMatrix(ctx)
	require.NoError(t, err)
	require.Len(t, matrix.Rows, 3)
	assert.Len(t, matrix.Restaurants, 3)

	rowA, rowB, rowC := matrix.Rows[0], matrix.Rows[1], matrix.Rows[2]
	assert.Equal(t, f.productA, rowA.Product)
	assert.True(t, rowA.Available[f.alpha.ID])
	assert.True(t, rowA.Available[f.beta.ID])
	assert.True(t, rowA.Available[f.gamma.ID])

	assert.True(t, rowB.Available[f.alpha.ID])
	assert.False(t, rowB.Available[f.beta.ID])
	assert.Len(t, rowB.Available, 3)

	for _, restaurant := range f.restaurants() {
		available, ok := rowC.Available[restaurant.ID]
		assert.True(t, ok)
		assert.False(t, available)
	}
}

func TestCatalogService_SetMenuAvailability(t *testing.T) {
	srv, productRepo, restaurantRepo, menuRepo := createTestCatalogService(t, &config.Config{})
	ctx := context.Background()
	f := newAssignmentFixture()

	restaurantRepo.EXPECT().FindRestaurantByID(ctx, f.beta.ID).Return(f.beta, nil)
	productRepo.EXPECT().FindProductsByIDs(ctx, []uuid.UUID{f.productB.ID}).Return([]*entity.Product{f.productB}, nil)
	menuRepo.EXPECT().
		UpsertMenuItem(ctx, mock.MatchedBy(func(item *entity.MenuItem) bool {
			return item.RestaurantID == f.beta.ID && item.ProductID == f.productB.ID && item.Availability
		})).
		Return(nil)

	item, err := srv.SetMenuAvailability(ctx, &usecase.SetMenuAvailabilityInput{
		RestaurantID: f.beta.ID,
		ProductID:    f.productB.ID,
		Availability: true,
	})
	require.NoError(t, err)
	assert.True(t, item.Availability)
}

func TestCatalogService_SetMenuAvailability_NotFound(t *testing.T) {
	t.Run("restaurant", func(t *testing.T) {
		srv, _, restaurantRepo, _ := createTestCatalogService(t, &config.Config{})
		ctx := context.Background()
		input := &usecase.SetMenuAvailabilityInput{RestaurantID: uuid.New(), ProductID: uuid.New()}

		restaurantRepo.EXPECT().FindRestaurantByID(ctx, input.RestaurantID).Return(nil, repository.ErrRestaurantNotFound)

		_, err := srv.SetMenuAvailability(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
	})

	t.Run("product", func(t *testing.T) {
		srv, productRepo, restaurantRepo, _ := createTestCatalogService(t, &config.Config{})
		ctx := context.Background()
		input := &usecase.SetMenuAvailabilityInput{RestaurantID: uuid.New(), ProductID: uuid.New()}

		restaurantRepo.EXPECT().FindRestaurantByID(ctx, input.RestaurantID).Return(&entity.Restaurant{ID: input.RestaurantID}, nil)
		productRepo.EXPECT().FindProductsByIDs(ctx, []uuid.UUID{input.ProductID}).Return(nil, nil)

		_, err := srv.SetMenuAvailability(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestCatalogService_ListAvailableProducts_Error(t *testing.T) {
	srv, productRepo, _, _ := createTestCatalogService(t, &config.Config{})
	ctx := context.Background()

	productRepo.EXPECT().ListAvailableProducts(ctx).Return(nil, errors.New("db down"))

	products, err := srv.ListAvailableProducts(ctx)
	require.Error(t, err)
	assert.Nil(t, products)
}

func TestCatalogService_ListBanners(t *testing.T) {
	srv, _, _, _ := createTestCatalogService(t, &config.Config{
		Banners: []config.Banner{{Title: "Burger", Src: "/static/burger.jpg", Text: "Tasty Burger at your door step"}},
	})

	banners := srv.ListBanners(context.Background())
	require.Len(t, banners, 1)
	assert.Equal(t, "Burger", banners[0].Title)
	assert.Equal(t, "/static/burger.jpg", banners[0].Src)
}
