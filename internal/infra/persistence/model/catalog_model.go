package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCategoryModel is the GORM-specific struct for the 'product_categories' table.
type ProductCategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(50);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductCategoryModel) TableName() string {
	return "product_categories"
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Name          string                `gorm:"type:varchar(50);not null"`
	CategoryID    *uuid.UUID            `gorm:"type:uuid;index"`
	Category      *ProductCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Price         decimal.Decimal       `gorm:"type:decimal(8,2);not null;check:chk_products_price,price >= 0"`
	ImageURL      string                `gorm:"type:varchar(255);not null;default:''"`
	SpecialStatus bool                  `gorm:"not null;default:false;index"`
	Description   string                `gorm:"type:text;not null;default:''"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
type RestaurantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(50);not null"`
	Address      string    `gorm:"type:varchar(100);not null;default:''"`
	ContactPhone string    `gorm:"type:varchar(50);not null;default:''"`
	Latitude     *float64  `gorm:"type:decimal(9,6)"`
	Longitude    *float64  `gorm:"type:decimal(9,6)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// MenuItemModel is the GORM-specific struct for the 'restaurant_menu_items' table.
type MenuItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_menu_items_restaurant_product"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_menu_items_restaurant_product;index"`
	Availability bool      `gorm:"not null;index"`
	UpdatedAt    time.Time

	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Product    *ProductModel    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "restaurant_menu_items"
}
