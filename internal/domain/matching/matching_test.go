package matching

import (
	"testing"

	"foodcart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func menu(restaurantID, productID uuid.UUID, available bool) *entity.MenuItem {
	return &entity.MenuItem{RestaurantID: restaurantID, ProductID: productID, Availability: available}
}

func TestQualifying_SupersetOnly(t *testing.T) {
	r1, r2 := uuid.New(), uuid.New()
	a, b := uuid.New(), uuid.New()

	index := NewAvailabilityIndex([]*entity.MenuItem{
		menu(r1, a, true),
		menu(r1, b, true),
		menu(r2, a, true),
	})

	assert.Equal(t, []uuid.UUID{r1}, index.Qualifying([]uuid.UUID{a, b}))
	assert.ElementsMatch(t, []uuid.UUID{r1, r2}, index.Qualifying([]uuid.UUID{a}))
	assert.True(t, index.IsQualifying(r1, []uuid.UUID{a, b}))
	assert.False(t, index.IsQualifying(r2, []uuid.UUID{a, b}))
}

func TestQualifying_UnavailableRowsIgnored(t *testing.T) {
	r1 := uuid.New()
	a, b := uuid.New(), uuid.New()

	index := NewAvailabilityIndex([]*entity.MenuItem{
		menu(r1, a, true),
		menu(r1, b, false),
	})

	assert.Empty(t, index.Qualifying([]uuid.UUID{a, b}))
	assert.False(t, index.Offers(r1, b))
	assert.True(t, index.Offers(r1, a))
}

func TestQualifying_RemovingProductDropsRestaurant(t *testing.T) {
	r1, r2 := uuid.New(), uuid.New()
	a := uuid.New()

	before := NewAvailabilityIndex([]*entity.MenuItem{menu(r1, a, true), menu(r2, a, true)})
	after := NewAvailabilityIndex([]*entity.MenuItem{menu(r1, a, true), menu(r2, a, false)})

	assert.Len(t, before.Qualifying([]uuid.UUID{a}), 2)
	assert.Equal(t, []uuid.UUID{r1}, after.Qualifying([]uuid.UUID{a}))
}

func TestQualifying_EmptyProductsQualifiesNobody(t *testing.T) {
	r1 := uuid.New()
	index := NewAvailabilityIndex([]*entity.MenuItem{menu(r1, uuid.New(), true)})

	assert.Empty(t, index.Qualifying(nil))
	assert.False(t, index.IsQualifying(r1, nil))
}

func TestQualifying_Deterministic(t *testing.T) {
	a := uuid.New()
	var items []*entity.MenuItem
	for range 10 {
		items = append(items, menu(uuid.New(), a, true))
	}
	index := NewAvailabilityIndex(items)

	first := index.Qualifying([]uuid.UUID{a})
	for range 5 {
		assert.Equal(t, first, index.Qualifying([]uuid.UUID{a}))
	}
}
