package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quantity bounds for a single order line.
const (
	MinItemQuantity = 1
	MaxItemQuantity = 100
)

// Order is a customer order and its line items.
type Order struct {
	ID                  uuid.UUID
	FirstName           string
	LastName            string
	PhoneNumber         string
	Address             string
	Status              OrderStatus
	PaymentType         PaymentType
	Comment             string
	CookingRestaurantID *uuid.UUID
	DistanceKm          *float64 // Distance to the assigned restaurant when both ends are geocoded.
	Items               []*OrderItem
	CreatedAt           time.Time
	CalledAt            *time.Time
	DeliveredAt         *time.Time
	UpdatedAt           time.Time
}

// OrderItem is one product line. Price is the product price at order time
// and is never recomputed.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Product   *Product
	Quantity  int
	Price     decimal.Decimal
}

// TotalPrice returns quantity times the price snapshot.
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalCost sums every line of the order from the stored snapshots.
func (o *Order) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice())
	}

	return total
}

// ProductIDs returns the distinct products of the order in line order.
func (o *Order) ProductIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(o.Items))
	ids := make([]uuid.UUID, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}

// FullName returns "FirstName LastName".
func (o *Order) FullName() string {
	if o.LastName == "" {
		return o.FirstName
	}

	return o.FirstName + " " + o.LastName
}
