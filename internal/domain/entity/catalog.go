// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCategory groups products on the storefront.
type ProductCategory struct {
	ID   uuid.UUID
	Name string
}

// Product is a dish sold to customers. Whether it can be ordered depends on
// the menus of the restaurants, not on the product itself.
type Product struct {
	ID            uuid.UUID
	Name          string
	Price         decimal.Decimal // Non-negative, two fractional digits.
	CategoryID    *uuid.UUID
	Category      *ProductCategory
	Description   string
	ImageURL      string
	SpecialStatus bool // Highlighted on the storefront.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Restaurant is a kitchen that can cook orders.
type Restaurant struct {
	ID           uuid.UUID
	Name         string
	Address      string
	ContactPhone string
	Latitude     *float64
	Longitude    *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCoordinates reports whether the restaurant position is stored on the record.
func (r *Restaurant) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// MenuItem records whether a restaurant currently offers a product.
// A (RestaurantID, ProductID) pair exists at most once.
type MenuItem struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	ProductID    uuid.UUID
	Availability bool
	UpdatedAt    time.Time
}

// AvailabilityMatrix is the product x restaurant grid shown to managers.
type AvailabilityMatrix struct {
	Restaurants []*Restaurant
	Rows        []*ProductAvailability
}

// ProductAvailability is one row of the matrix; Available is keyed by restaurant.
type ProductAvailability struct {
	Product   *Product
	Available map[uuid.UUID]bool
}

// Banner is a promotional slide on the storefront.
type Banner struct {
	Title string
	Src   string
	Text  string
}
