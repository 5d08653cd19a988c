package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/service"
	"foodcart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderEventService implements the OrderEventUsecase interface.
type orderEventService struct {
	geocoding    usecase.GeocodingUsecase
	notification service.NotificationService
	logger       *slog.Logger
}

// OrderEventServiceParams holds dependencies for OrderEventService, injected by Fx.
type OrderEventServiceParams struct {
	fx.In

	Geocoding    usecase.GeocodingUsecase
	Notification service.NotificationService
	Logger       *slog.Logger
}

// NewOrderEventService is the constructor for orderEventService.
func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	return &orderEventService{
		geocoding:    params.Geocoding,
		notification: params.Notification,
		logger:       params.Logger,
	}
}

func (srv *orderEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// HandleOrderEvent warms the geocode cache for new orders and notifies the
// kitchen of assigned ones.
func (srv *orderEventService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	switch event.Type {
	case constants.EventOrderCreated:
		coords := srv.geocoding.Resolve(ctx, event.Address)
		srv.log(ctx).Info("Warmed geocode cache",
			slog.String("order_id", event.OrderID),
			slog.Bool("resolved", coords != nil),
		)

		return nil

	case constants.EventOrderAssigned:
		if event.RestaurantID == "" {
			return errors.Wrapf(usecase.ErrInvalidOrderEvent, "order %s assigned without restaurant", event.OrderID)
		}

		topic := constants.RestaurantTopicPrefix + event.RestaurantID
		body := fmt.Sprintf("%s, %s", event.CustomerName, event.Address)
		if event.TotalCost != "" {
			body = fmt.Sprintf("%s, total %s", body, event.TotalCost)
		}
		data := map[string]string{
			"type":     event.Type,
			"order_id": event.OrderID,
		}

		if err := srv.notification.SendTopicNotification(ctx, topic, "New order to cook", body, data); err != nil {
			return errors.Wrap(err, "failed to notify restaurant")
		}

		srv.log(ctx).Info("Restaurant notified",
			slog.String("order_id", event.OrderID),
			slog.String("topic", topic),
		)

		return nil

	default:
		srv.log(ctx).Debug("Ignoring order event", slog.String("type", event.Type))

		return nil
	}
}
