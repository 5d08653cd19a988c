package entity

import (
	"foodcart/internal/domain/geo"

	"github.com/shopspring/decimal"
)

// RestaurantCandidate is a restaurant able to cook an order with its
// straight-line distance to the customer. DistanceKm is nil when either
// address could not be geocoded.
type RestaurantCandidate struct {
	Restaurant *Restaurant
	DistanceKm *float64
}

// OrderAssignment is an active order as the manager sees it.
type OrderAssignment struct {
	Order       *Order
	Coordinates *geo.Coordinates
	Candidates  []*RestaurantCandidate
	TotalCost   decimal.Decimal
	Warning     string
}
