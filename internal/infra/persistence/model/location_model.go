package model

import (
	"time"
)

// LocationModel is the GORM-specific struct for the 'locations' table,
// the geocode cache. Address holds the normalized form.
type LocationModel struct {
	Address   string   `gorm:"type:varchar(200);primaryKey"`
	Latitude  *float64 `gorm:"type:decimal(9,6)"`
	Longitude *float64 `gorm:"type:decimal(9,6)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&ProductCategoryModel{},
		&ProductModel{},
		&RestaurantModel{},
		&MenuItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&LocationModel{},
	}
}
