package impl

import (
	"context"
	"testing"

	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/service"
	mockSvc "foodcart/internal/mocks/service"
	mockUsecase "foodcart/internal/mocks/usecase"
	"foodcart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderEventService(t *testing.T) (usecase.OrderEventUsecase, *mockUsecase.MockGeocodingUsecase, *mockSvc.MockNotificationService) {
	geocoding := mockUsecase.NewMockGeocodingUsecase(t)
	notification := mockSvc.NewMockNotificationService(t)

	return NewOrderEventService(OrderEventServiceParams{
		Geocoding:    geocoding,
		Notification: notification,
		Logger:       newTestLogger(),
	}), geocoding, notification
}

func TestOrderEventService_OrderCreatedWarmsCache(t *testing.T) {
	srv, geocoding, _ := createTestOrderEventService(t)
	ctx := context.Background()

	geocoding.EXPECT().Resolve(ctx, "Moscow, Tverskaya 1").Return(nil)

	err := srv.HandleOrderEvent(ctx, &service.OrderEvent{
		Type:    constants.EventOrderCreated,
		OrderID: "order-1",
		Address: "Moscow, Tverskaya 1",
	})
	require.NoError(t, err)
}

func TestOrderEventService_OrderAssignedNotifiesRestaurant(t *testing.T) {
	srv, _, notification := createTestOrderEventService(t)
	ctx := context.Background()

	notification.EXPECT().
		SendTopicNotification(ctx, "restaurant-r-42", mock.Anything, mock.Anything,
			map[string]string{"type": constants.EventOrderAssigned, "order_id": "order-1"}).
		Return(nil)

	err := srv.HandleOrderEvent(ctx, &service.OrderEvent{
		Type:         constants.EventOrderAssigned,
		OrderID:      "order-1",
		RestaurantID: "r-42",
		CustomerName: "Ivan Petrov",
		TotalCost:    "250.00",
	})
	require.NoError(t, err)
}

func TestOrderEventService_Errors(t *testing.T) {
	t.Run("assigned without restaurant", func(t *testing.T) {
		srv, _, _ := createTestOrderEventService(t)

		err := srv.HandleOrderEvent(context.Background(), &service.OrderEvent{Type: constants.EventOrderAssigned, OrderID: "order-1"})
		assert.ErrorIs(t, err, usecase.ErrInvalidOrderEvent)
	})

	t.Run("notification failure", func(t *testing.T) {
		srv, _, notification := createTestOrderEventService(t)
		notification.EXPECT().
			SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("fcm unavailable"))

		err := srv.HandleOrderEvent(context.Background(), &service.OrderEvent{
			Type: constants.EventOrderAssigned, OrderID: "order-1", RestaurantID: "r-42",
		})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, usecase.ErrInvalidOrderEvent)
	})

	t.Run("unknown type is ignored", func(t *testing.T) {
		srv, _, _ := createTestOrderEventService(t)

		assert.NoError(t, srv.HandleOrderEvent(context.Background(), &service.OrderEvent{Type: "order.refunded"}))
	})
}
