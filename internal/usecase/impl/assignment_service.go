package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"foodcart/config"
	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/geo"
	"foodcart/internal/domain/matching"
	"foodcart/internal/domain/repository"
	"foodcart/internal/domain/service"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const noCandidatesWarning = "no restaurant offers every product of this order"

// assignmentService implements the AssignmentUsecase interface.
type assignmentService struct {
	orderRepo          repository.OrderRepository
	restaurantRepo     repository.RestaurantRepository
	menuRepo           repository.MenuRepository
	geocoding          usecase.GeocodingUsecase
	publisher          service.EventPublisher
	allowNonQualifying bool
	logger             *slog.Logger
}

// AssignmentServiceParams holds dependencies for AssignmentService, injected by Fx.
type AssignmentServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	RestaurantRepo repository.RestaurantRepository
	MenuRepo       repository.MenuRepository
	Geocoding      usecase.GeocodingUsecase
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAssignmentService is the constructor for assignmentService.
func NewAssignmentService(params AssignmentServiceParams) usecase.AssignmentUsecase {
	allowNonQualifying := false
	if params.Config != nil && params.Config.Assignment != nil {
		allowNonQualifying = params.Config.Assignment.AllowNonQualifying
	}

	return &assignmentService{
		orderRepo:          params.OrderRepo,
		restaurantRepo:     params.RestaurantRepo,
		menuRepo:           params.MenuRepo,
		geocoding:          params.Geocoding,
		publisher:          params.Publisher,
		allowNonQualifying: allowNonQualifying,
		logger:             params.Logger,
	}
}

func (srv *assignmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// ListActiveOrders loads orders, restaurants and menus with one query each and
// geocodes every distinct address in a single batch.
func (srv *assignmentService) ListActiveOrders(ctx context.Context) ([]*entity.OrderAssignment, error) {
	orders, err := srv.orderRepo.ListActiveWithItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active orders")
	}

	restaurants, index, err := srv.loadMenus(ctx)
	if err != nil {
		return nil, err
	}

	assignments := srv.buildAssignments(ctx, orders, restaurants, index)
	srv.log(ctx).Debug("Built assignment view", slog.Int("orders", len(assignments)), slog.Int("restaurants", len(restaurants)))

	return assignments, nil
}

// QualifyingRestaurants builds the assignment view of a single order.
func (srv *assignmentService) QualifyingRestaurants(ctx context.Context, orderID uuid.UUID) (*entity.OrderAssignment, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	restaurants, index, err := srv.loadMenus(ctx)
	if err != nil {
		return nil, err
	}

	return srv.buildAssignments(ctx, []*entity.Order{order}, restaurants, index)[0], nil
}

// AssignRestaurant attaches a restaurant to the order and starts cooking it.
// A restaurant missing some ordered product is rejected unless the
// allowNonQualifying setting is on, in which case a warning is returned.
func (srv *assignmentService) AssignRestaurant(ctx context.Context, orderID, restaurantID uuid.UUID) (*usecase.AssignRestaurantOutput, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.OrderStatusUnprocessed && order.Status != entity.OrderStatusCooking {
		return nil, domainerrors.ErrInvalidStatusTransition.WrapMessage(
			fmt.Sprintf("cannot assign a restaurant to a %s order", order.Status))
	}

	restaurant, err := srv.restaurantRepo.FindRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound.WrapMessage(fmt.Sprintf("restaurant %s not found", restaurantID))
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	items, err := srv.menuRepo.ListAvailableMenuItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	output := &usecase.AssignRestaurantOutput{Order: order}
	if !matching.NewAvailabilityIndex(items).IsQualifying(restaurant.ID, order.ProductIDs()) {
		if !srv.allowNonQualifying {
			return nil, domainerrors.ErrRestaurantNotQualified.WrapMessage(
				fmt.Sprintf("restaurant %q does not offer every product of order %s", restaurant.Name, order.ID))
		}
		output.Warning = fmt.Sprintf("restaurant %q does not offer every product of this order", restaurant.Name)
		srv.log(ctx).Warn("Assigning non-qualifying restaurant",
			slog.String("order_id", order.ID.String()),
			slog.String("restaurant_id", restaurant.ID.String()),
		)
	}

	coords := srv.resolve(ctx, []*entity.Order{order}, []*entity.Restaurant{restaurant})
	order.CookingRestaurantID = &restaurant.ID
	order.DistanceKm = distanceTo(coords.order(order), coords.restaurant(restaurant))
	if order.Status == entity.OrderStatusUnprocessed {
		order.Status = entity.OrderStatusCooking
	}

	if err := srv.save(ctx, order); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Restaurant assigned",
		slog.String("order_id", order.ID.String()),
		slog.String("restaurant_id", restaurant.ID.String()),
	)

	event := &service.OrderEvent{
		RequestID:    deliverycontext.RequestIDFromContext(ctx),
		Type:         constants.EventOrderAssigned,
		OrderID:      order.ID.String(),
		Address:      order.Address,
		RestaurantID: restaurant.ID.String(),
		CustomerName: order.FullName(),
		TotalCost:    order.TotalCost().StringFixed(2),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}

	return output, nil
}

// AdvanceStatus moves the order to the next status of its lifecycle.
func (srv *assignmentService) AdvanceStatus(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown order status %q", next))
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidStatusTransition.WrapMessage(
			fmt.Sprintf("order %s cannot move from %s to %s", order.ID, order.Status, next))
	}
	if next == entity.OrderStatusCooking && order.CookingRestaurantID == nil {
		return nil, domainerrors.ErrInvalidStatusTransition.WrapMessage("a restaurant must be assigned before cooking")
	}

	order.Status = next
	if next == entity.OrderStatusDelivered {
		now := time.Now().UTC()
		order.DeliveredAt = &now
	}

	if err := srv.save(ctx, order); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status changed", slog.String("order_id", order.ID.String()), slog.String("status", next.String()))

	return order, nil
}

// MarkCalled stamps the time the manager phoned the customer.
func (srv *assignmentService) MarkCalled(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order.CalledAt = &now

	if err := srv.save(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (srv *assignmentService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage(fmt.Sprintf("order %s not found", orderID))
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *assignmentService) save(ctx context.Context, order *entity.Order) error {
	if err := srv.orderRepo.UpdateOrderState(ctx, order); err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			return domainerrors.ErrOrderNotFound.WrapMessage(fmt.Sprintf("order %s not found", order.ID))
		case errors.Is(err, repository.ErrRestaurantNotFound):
			return domainerrors.ErrRestaurantNotFound.WrapMessage("assigned restaurant no longer exists")
		}

		return errors.Wrap(err, "failed to update order")
	}

	return nil
}

func (srv *assignmentService) loadMenus(ctx context.Context) ([]*entity.Restaurant, *matching.AvailabilityIndex, error) {
	restaurants, err := srv.restaurantRepo.ListRestaurants(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list restaurants")
	}

	items, err := srv.menuRepo.ListAvailableMenuItems(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list menu items")
	}

	return restaurants, matching.NewAvailabilityIndex(items), nil
}

func (srv *assignmentService) buildAssignments(
	ctx context.Context,
	orders []*entity.Order,
	restaurants []*entity.Restaurant,
	index *matching.AvailabilityIndex,
) []*entity.OrderAssignment {
	byID := make(map[uuid.UUID]*entity.Restaurant, len(restaurants))
	for _, restaurant := range restaurants {
		byID[restaurant.ID] = restaurant
	}

	coords := srv.resolve(ctx, orders, restaurants)

	assignments := make([]*entity.OrderAssignment, 0, len(orders))
	for _, order := range orders {
		orderCoords := coords.order(order)

		qualifying := index.Qualifying(order.ProductIDs())
		candidates := make([]*entity.RestaurantCandidate, 0, len(qualifying))
		for _, id := range qualifying {
			restaurant, ok := byID[id]
			if !ok {
				continue
			}
			candidates = append(candidates, &entity.RestaurantCandidate{
				Restaurant: restaurant,
				DistanceKm: distanceTo(orderCoords, coords.restaurant(restaurant)),
			})
		}
		sortCandidates(candidates)

		assignment := &entity.OrderAssignment{
			Order:       order,
			Coordinates: orderCoords,
			Candidates:  candidates,
			TotalCost:   order.TotalCost(),
		}
		if len(candidates) == 0 {
			assignment.Warning = noCandidatesWarning
		}
		assignments = append(assignments, assignment)
	}

	return assignments
}

// resolvedAddresses maps normalized addresses to coordinates.
type resolvedAddresses map[string]*geo.Coordinates

func (r resolvedAddresses) order(order *entity.Order) *geo.Coordinates {
	return r[geo.NormalizeAddress(order.Address)]
}

// restaurant prefers the position stored on the restaurant record.
func (r resolvedAddresses) restaurant(restaurant *entity.Restaurant) *geo.Coordinates {
	if restaurant.HasCoordinates() {
		return &geo.Coordinates{Latitude: *restaurant.Latitude, Longitude: *restaurant.Longitude}
	}

	return r[geo.NormalizeAddress(restaurant.Address)]
}

func (srv *assignmentService) resolve(ctx context.Context, orders []*entity.Order, restaurants []*entity.Restaurant) resolvedAddresses {
	addresses := make([]string, 0, len(orders)+len(restaurants))
	for _, order := range orders {
		addresses = append(addresses, order.Address)
	}
	for _, restaurant := range restaurants {
		if !restaurant.HasCoordinates() {
			addresses = append(addresses, restaurant.Address)
		}
	}

	return srv.geocoding.ResolveBatch(ctx, addresses)
}

func distanceTo(from, to *geo.Coordinates) *float64 {
	if from == nil || to == nil {
		return nil
	}
	d := geo.DistanceBetween(*from, *to)

	return &d
}

// sortCandidates orders by distance with unknown distances last, then by name.
func sortCandidates(candidates []*entity.RestaurantCandidate) {
	slices.SortStableFunc(candidates, func(a, b *entity.RestaurantCandidate) int {
		switch {
		case a.DistanceKm == nil && b.DistanceKm != nil:
			return 1
		case a.DistanceKm != nil && b.DistanceKm == nil:
			return -1
		case a.DistanceKm != nil && b.DistanceKm != nil:
			if c := cmp.Compare(*a.DistanceKm, *b.DistanceKm); c != 0 {
				return c
			}
		}

		return cmp.Compare(a.Restaurant.Name, b.Restaurant.Name)
	})
}
