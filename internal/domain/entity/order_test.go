package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_TotalCostUsesSnapshots(t *testing.T) {
	productA := &Product{ID: uuid.New(), Price: decimal.RequireFromString("100.00")}
	productB := &Product{ID: uuid.New(), Price: decimal.RequireFromString("50.00")}

	order := &Order{Items: []*OrderItem{
		{ProductID: productA.ID, Product: productA, Quantity: 2, Price: productA.Price},
		{ProductID: productB.ID, Product: productB, Quantity: 1, Price: productB.Price},
	}}

	assert.Equal(t, "250.00", order.TotalCost().StringFixed(2))

	productA.Price = decimal.RequireFromString("999.99")
	assert.Equal(t, "250.00", order.TotalCost().StringFixed(2))
}

func TestOrder_ProductIDsDistinct(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	order := &Order{Items: []*OrderItem{
		{ProductID: a, Quantity: 1},
		{ProductID: b, Quantity: 1},
		{ProductID: a, Quantity: 3},
	}}

	assert.Equal(t, []uuid.UUID{a, b}, order.ProductIDs())
	assert.Empty(t, (&Order{}).ProductIDs())
}

func TestOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusUnprocessed, OrderStatusCooking, true},
		{OrderStatusCooking, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusUnprocessed, OrderStatusShipped, false},
		{OrderStatusCooking, OrderStatusUnprocessed, false},
		{OrderStatusDelivered, OrderStatusUnprocessed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.False(t, OrderStatusDelivered.IsActive())
	assert.True(t, OrderStatusShipped.IsActive())
	assert.False(t, OrderStatus("lost").IsValid())
}

func TestLocation_Coordinates(t *testing.T) {
	lat, lon := 55.75, 37.61

	assert.Nil(t, (&Location{Address: "nowhere"}).Coordinates())

	coords := (&Location{Latitude: &lat, Longitude: &lon}).Coordinates()
	assert.NotNil(t, coords)
	assert.Equal(t, lat, coords.Latitude)
	assert.Equal(t, lon, coords.Longitude)
}
