// Package matching decides which restaurants can cook an order.
package matching

import (
	"bytes"
	"slices"

	"foodcart/internal/domain/entity"

	"github.com/google/uuid"
)

// AvailabilityIndex maps each restaurant to the set of products it currently offers.
type AvailabilityIndex struct {
	byRestaurant map[uuid.UUID]map[uuid.UUID]struct{}
}

// NewAvailabilityIndex builds the index in one pass. Rows with
// Availability=false are ignored.
func NewAvailabilityIndex(items []*entity.MenuItem) *AvailabilityIndex {
	index := &AvailabilityIndex{byRestaurant: make(map[uuid.UUID]map[uuid.UUID]struct{})}
	for _, item := range items {
		if item == nil || !item.Availability {
			continue
		}

		products, ok := index.byRestaurant[item.RestaurantID]
		if !ok {
			products = make(map[uuid.UUID]struct{})
			index.byRestaurant[item.RestaurantID] = products
		}
		products[item.ProductID] = struct{}{}
	}

	return index
}

// Offers reports whether the restaurant currently offers the product.
func (idx *AvailabilityIndex) Offers(restaurantID, productID uuid.UUID) bool {
	_, ok := idx.byRestaurant[restaurantID][productID]

	return ok
}

// IsQualifying reports whether the restaurant offers every product.
// An empty product list qualifies nobody.
func (idx *AvailabilityIndex) IsQualifying(restaurantID uuid.UUID, productIDs []uuid.UUID) bool {
	if len(productIDs) == 0 {
		return false
	}

	products, ok := idx.byRestaurant[restaurantID]
	if !ok {
		return false
	}
	for _, id := range productIDs {
		if _, ok := products[id]; !ok {
			return false
		}
	}

	return true
}

// Qualifying returns the restaurants that offer every product, ordered by id.
func (idx *AvailabilityIndex) Qualifying(productIDs []uuid.UUID) []uuid.UUID {
	if len(productIDs) == 0 {
		return nil
	}

	var result []uuid.UUID
	for restaurantID := range idx.byRestaurant {
		if idx.IsQualifying(restaurantID, productIDs) {
			result = append(result, restaurantID)
		}
	}
	slices.SortFunc(result, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})

	return result
}
