package impl

import (
	"context"
	"testing"

	"foodcart/config"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/geo"
	"foodcart/internal/domain/repository"
	"foodcart/internal/domain/service"
	mockRepo "foodcart/internal/mocks/repository"
	mockSvc "foodcart/internal/mocks/service"
	mockUsecase "foodcart/internal/mocks/usecase"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assignmentFixture struct {
	productA, productB, productC *entity.Product
	alpha, beta, gamma           *entity.Restaurant
	menu                         []*entity.MenuItem
}

// newAssignmentFixture builds three restaurants: Alpha offers A and B and has
// stored coordinates, Beta offers only A (B is switched off), Gamma offers A
// at an address nobody can geocode.
func newAssignmentFixture() *assignmentFixture {
	f := &assignmentFixture{
		productA: newProduct("Burger", "100.00"),
		productB: newProduct("Fries", "50.00"),
		productC: newProduct("Sushi", "300.00"),
		alpha: &entity.Restaurant{
			ID: uuid.New(), Name: "Alpha", Address: "Moscow, Tverskaya 7",
			Latitude: floatPtr(55.760), Longitude: floatPtr(37.620),
		},
		beta:  &entity.Restaurant{ID: uuid.New(), Name: "Beta", Address: "Moscow, Arbat 10"},
		gamma: &entity.Restaurant{ID: uuid.New(), Name: "Gamma", Address: "Nowhere"},
	}
	f.menu = []*entity.MenuItem{
		{RestaurantID: f.alpha.ID, ProductID: f.productA.ID, Availability: true},
		{RestaurantID: f.alpha.ID, ProductID: f.productB.ID, Availability: true},
		{RestaurantID: f.beta.ID, ProductID: f.productA.ID, Availability: true},
		{RestaurantID: f.gamma.ID, ProductID: f.productA.ID, Availability: true},
	}

	return f
}

func (f *assignmentFixture) restaurants() []*entity.Restaurant {
	return []*entity.Restaurant{f.alpha, f.beta, f.gamma}
}

func newOrder(address string, status entity.OrderStatus, products ...*entity.Product) *entity.Order {
	order := &entity.Order{ID: uuid.New(), FirstName: "Ivan", LastName: "Petrov", Address: address, Status: status}
	for _, p := range products {
		order.Items = append(order.Items, &entity.OrderItem{
			ID: uuid.New(), OrderID: order.ID, ProductID: p.ID, Product: p, Quantity: 1, Price: p.Price,
		})
	}

	return order
}

type assignmentServiceMocks struct {
	orderRepo      *mockRepo.MockOrderRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	menuRepo       *mockRepo.MockMenuRepository
	geocoding      *mockUsecase.MockGeocodingUsecase
	publisher      *mockSvc.MockEventPublisher
}

func createTestAssignmentService(t *testing.T, allowNonQualifying bool) (usecase.AssignmentUsecase, *assignmentServiceMocks) {
	m := &assignmentServiceMocks{
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		menuRepo:       mockRepo.NewMockMenuRepository(t),
		geocoding:      mockUsecase.NewMockGeocodingUsecase(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}

	srv := NewAssignmentService(AssignmentServiceParams{
		OrderRepo:      m.orderRepo,
		RestaurantRepo: m.restaurantRepo,
		MenuRepo:       m.menuRepo,
		Geocoding:      m.geocoding,
		Publisher:      m.publisher,
		Config:         &config.Config{Assignment: &config.AssignmentConfig{AllowNonQualifying: allowNonQualifying}},
		Logger:         newTestLogger(),
	})

	return srv, m
}

var arbat = geo.Coordinates{Latitude: 55.7520, Longitude: 37.5929}

func TestAssignmentService_ListActiveOrders(t *testing.T) {
	srv, m := createTestAssignmentService(t, false)
	ctx := context.Background()
	f := newAssignmentFixture()

	full := newOrder("Moscow, Tverskaya 1", entity.OrderStatusUnprocessed, f.productA, f.productB)
	single := newOrder("moscow, tverskaya 1 ", entity.OrderStatusCooking, f.productA)
	lost := newOrder("Atlantis", entity.OrderStatusUnprocessed, f.productA)
	unmatched := newOrder("Moscow, Tverskaya 1", entity.OrderStatusUnprocessed, f.productC)

	m.orderRepo.EXPECT().ListActiveWithItems(ctx).Return([]*entity.Order{full, single, lost, unmatched}, nil)
	m.restaurantRepo.EXPECT().ListRestaurants(ctx).Return(f.restaurants(), nil)
	m.menuRepo.EXPECT().ListAvailableMenuItems(ctx).Return(f.menu, nil)
	m.geocoding.EXPECT().
		ResolveBatch(ctx, []string{
			"Moscow, Tverskaya 1", "moscow, tverskaya 1 ", "Atlantis", "Moscow, Tverskaya 1",
			"Moscow, Arbat 10", "Nowhere",
		}).
		Return(map[string]*geo.Coordinates{
			"moscow, tverskaya 1": &tverskaya,
			"atlantis":            nil,
			"moscow, arbat 10":    &arbat,
			"nowhere":             nil,
		})

	assignments, err := srv.ListActiveOrders(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 4)

	// Only Alpha offers both A and B.
	require.Len(t, assignments[0].Candidates, 1)
	assert.Equal(t, f.alpha.ID, assignments[0].Candidates[0].Restaurant.ID)
	require.NotNil(t, assignments[0].Candidates[0].DistanceKm)
	assert.Equal(t, "150.00", assignments[0].TotalCost.StringFixed(2))
	assert.Empty(t, assignments[0].Warning)

	// Nearest first, the ungeocodable restaurant last.
	names := candidateNames(assignments[1].Candidates)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names)
	assert.Less(t, *assignments[1].Candidates[0].DistanceKm, *assignments[1].Candidates[1].DistanceKm)
	assert.Nil(t, assignments[1].Candidates[2].DistanceKm)

	// Without customer coordinates every distance is unknown; order falls back to name.
	assert.Nil(t, assignments[2].Coordinates)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, candidateNames(assignments[2].Candidates))
	for _, c := range assignments[2].Candidates {
		assert.Nil(t, c.DistanceKm)
	}

	assert.Empty(t, assignments[3].Candidates)
	assert.NotEmpty(t, assignments[3].Warning)
}

func TestAssignmentService_QualifyingRestaurants(t *testing.T) {
	srv, m := createTestAssignmentService(t, false)
	ctx := context.Background()
	f := newAssignmentFixture()

	order := newOrder("Moscow, Tverskaya 1", entity.OrderStatusUnprocessed, f.productA, f.productB)

	m.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	m.restaurantRepo.EXPECT().ListRestaurants(ctx).Return(f.restaurants(), nil)
	m.menuRepo.EXPECT().ListAvailableMenuItems(ctx).Return(f.menu, nil)
	m.geocoding.EXPECT().ResolveBatch(ctx, mock.Anything).Return(map[string]*geo.Coordinates{
		"moscow, tverskaya 1": &tverskaya,
	})

	assignment, err := srv.QualifyingRestaurants(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha"}, candidateNames(assignment.Candidates))
}

func TestAssignmentService_QualifyingRestaurants_OrderNotFound(t *testing.T) {
	srv, m := createTestAssignmentService(t, false)
	ctx := context.Background()
	orderID := uuid.New()

	m.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := srv.QualifyingRestaurants(ctx, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestAssignmentService_AssignRestaurant_Qualifying(t *testing.T) {
	srv, m := createTestAssignmentService(t, false)
	ctx := context.Background()
	f := newAssignmentFixture()

	order := newOrder("Moscow, Tverskaya 1", entity.OrderStatusUnprocessed, f.productA, f.productB)

	m.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	m.restaurantRepo.EXPECT().FindRestaurantByID(ctx, f.alpha.ID).Return(f.alpha, nil)
	m.menuRepo.EXPECT().ListAvailableMenuItems(ctx).Return(f.menu, nil)
	m.geocoding.EXPECT().
		ResolveBatch(ctx, []string{"Moscow, Tverskaya 1"}).
		Return(map[string]*geo.Coordinates{"moscow, tverskaya 1": &tverskaya})
	m.orderRepo.EXPECT().
		UpdateOrderState(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Status == entity.OrderStatusCooking &&
				o.CookingRestaurantID != nil && *o.CookingRestaurantID == f.alpha.ID &&
				o.DistanceKm != nil
		})).
		Return(nil)
	m.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == constants.EventOrderAssigned && e.RestaurantID == f.alpha.ID.String()
		})).
		Return(nil)

	output, err := srv.AssignRestaurant(ctx, order.ID, f.alpha.ID)
	require.NoError(t, err)
	assert.Empty(t, output.Warning)
	assert.Equal(t, entity.OrderStatusCooking, output.Order.Status)
	want := geo.Distance(tverskaya.Latitude, tverskaya.Longitude, 55.760, 37.620)
	assert.InDelta(t, want, *output.Order.DistanceKm, 1e-9)
}

func TestAssignmentService_AssignRestaurant_NonQualifyingBlocked(t *testing.T) {
	srv, m := createTestAssignmentService(t, false)
	ctx := context.Background()
	f := newAssignmentFixture()

	order := newOrder("Moscow, Tverskaya 1", entity.OrderStatusUnprocessed, f.productA, f.productB)

	m.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	m.restaurantRepo.EXPECT().FindRestaurantByID(ctx, f.beta.ID).Return(f.beta, nil)
	m.menuRepo.EXPECT().ListAvailableMenuItems(ctx).Return(f.menu, nil)

	output, err := srv.AssignRestaurant(ctx, order.ID, f.beta.ID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotQualified)
	m.orderRepo.AssertNotCalled(t, "UpdateOrderState", mock.Anything, mock.Anything)
}

func TestAssignmentService_AssignRestaurant_NonQualifyingAllowedWithWarning(t *testing.T) {
	srv, m := createTestAssignmentService(t, true)
	ctx := context.Background()
	f := newAssignmentFixture()

	order := newOrder("Atlantis", entity.OrderStatusUnprocessed, f.productA, f.productB)

	m.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	m.restaurantRepo.EXPECT().FindRestaurantByID(ctx, f.beta.ID).Return(f.beta, nil)
	m.menuRepo.EXPECT().ListAvailableMenuItems(ctx).Return(f.menu, nil)
	m.geocoding.EXPECT().
		ResolveBatch(ctx, []string{"Atlantis", "Moscow, Arbat 10"}).
		Return(map[string]*geo.Coordinates{"atlantis": nil, "moscow, arbat 10": &arbat})
	m.orderRepo.EXPECT().UpdateOrderState(ctx, order).Return(nil)
	m.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	output, err := srv.AssignRestaurant(ctx, order.ID, f.beta.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, output.Warning)
	assert.Nil(t, output.Order.DistanceKm)
	assert.Equal(t, f.beta.ID, *output.Order.CookingRestaurantID)
}

func TestAssignmentService_AssignRestaurant_Rejections(t *testing.T) {
	f := newAssignmentFixture()

	t.Run("delivered order", func(t *testing.T) {
		srv, m := createTestAssignmentService(t, false)
		ctx := context.Background()
		order := newOrder("Moscow", entity.OrderStatusDelivered, f.productA)

		m.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

		_, err := srv.AssignRestaurant(ctx, order.ID, f.alpha.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		srv, m := createTestAssignmentService(t, false)
		ctx := context.Background()
		order := newOrder("Moscow", entity.OrderStatusUnprocessed, f.productA)
		restaurantID := uuid.New()

		m.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
		m.restaurantRepo.EXPECT().FindRestaurantByID(ctx, restaurantID).Return(nil, repository.ErrRestaurantNotFound)

		_, err := srv.AssignRestaurant(ctx, order.ID, restaurantID)
		assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
	})
}

func TestAssignmentService_AdvanceStatus(t *testing.T) {
	restaurantID := uuid.New()

	tests := []struct {
		name       string
		current    entity.OrderStatus
		restaurant *uuid.UUID
		next       entity.OrderStatus
		wantErr    error
	}{
		{name: "cooking to shipped", current: entity.OrderStatusCooking, restaurant: &restaurantID, next: entity.OrderStatusShipped},
		{name: "shipped to delivered", current: entity.OrderStatusShipped, restaurant: &restaurantID, next: entity.OrderStatusDelivered},
		{name: "unprocessed to cooking", current: entity.OrderStatusUnprocessed, restaurant: &restaurantID, next: entity.OrderStatusCooking},
		{name: "cooking without restaurant", current: entity.OrderStatusUnprocessed, next: entity.OrderStatusCooking, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "skipping a step", current: entity.OrderStatusUnprocessed, restaurant: &restaurantID, next: entity.OrderStatusShipped, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "going back", current: entity.OrderStatusShipped, restaurant: &restaurantID, next: entity.OrderStatusCooking, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "after delivery", current: entity.OrderStatusDelivered, restaurant: &restaurantID, next: entity.OrderStatusDelivered, wantErr: domainerrors.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := createTestAssignmentService(t, false)
			ctx := context.Background()
			order := &entity.Order{ID: uuid.New(), Status: tt.current, CookingRestaurantID: tt.restaurant}

			m.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
			if tt.wantErr == nil {
				m.orderRepo.EXPECT().UpdateOrderState(ctx, order).Return(nil)
			}

			got, err := srv.AdvanceStatus(ctx, order.ID, tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, got.Status)
			if tt.next == entity.OrderStatusDelivered {
				assert.NotNil(t, got.DeliveredAt)
			} else {
				assert.Nil(t, got.DeliveredAt)
			}
		})
	}
}

func TestAssignmentService_AdvanceStatus_UnknownStatus(t *testing.T) {
	srv, _ := createTestAssignmentService(t, false)

	_, err := srv.AdvanceStatus(context.Background(), uuid.New(), entity.OrderStatus("lost"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAssignmentService_MarkCalled(t *testing.T) {
	srv, m := createTestAssignmentService(t, false)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusUnprocessed, Items: []*entity.OrderItem{
		{ProductID: uuid.New(), Quantity: 2, Price: decimal.RequireFromString("10.00")},
	}}

	m.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	m.orderRepo.EXPECT().UpdateOrderState(ctx, order).Return(repository.ErrOrderNotFound).Once()

	_, err := srv.MarkCalled(ctx, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	m.orderRepo.EXPECT().UpdateOrderState(ctx, order).Return(nil).Once()

	got, err := srv.MarkCalled(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CalledAt)
	assert.Equal(t, entity.OrderStatusUnprocessed, got.Status)
}

func candidateNames(candidates []*entity.RestaurantCandidate) []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Restaurant.Name)
	}

	return names
}
