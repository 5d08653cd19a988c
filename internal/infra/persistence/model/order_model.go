package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName           string     `gorm:"type:varchar(50);not null"`
	LastName            string     `gorm:"type:varchar(50);not null;default:''"`
	PhoneNumber         string     `gorm:"type:varchar(20);not null;index"`
	Address             string     `gorm:"type:text;not null"`
	Status              string     `gorm:"type:varchar(20);not null;default:'unprocessed';index"`
	PaymentType         string     `gorm:"type:varchar(10);not null;default:'cash'"`
	Comment             string     `gorm:"type:text;not null;default:''"`
	CookingRestaurantID *uuid.UUID `gorm:"type:uuid;index"`
	DistanceKm          *float64   `gorm:"type:decimal(8,2)"`
	CreatedAt           time.Time  `gorm:"index"`
	CalledAt            *time.Time
	DeliveredAt         *time.Time
	UpdatedAt           time.Time

	CookingRestaurant *RestaurantModel  `gorm:"foreignKey:CookingRestaurantID;constraint:OnDelete:SET NULL"`
	Items             []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_order_items_order_product"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_order_items_order_product;index"`
	Quantity  int             `gorm:"not null;check:chk_order_items_quantity,quantity BETWEEN 1 AND 100"`
	Price     decimal.Decimal `gorm:"type:decimal(8,2);not null;check:chk_order_items_price,price >= 0"`

	Order   *OrderModel   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
