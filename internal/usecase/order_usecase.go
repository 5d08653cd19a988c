package usecase

import (
	"context"

	"foodcart/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderProductInput is one line of a customer order. A missing quantity means one.
type OrderProductInput struct {
	ProductID uuid.UUID `json:"product" validate:"required"`
	Quantity  *int      `json:"quantity,omitempty"`
}

// CreateOrderInput defines the input for placing an order from the storefront.
type CreateOrderInput struct {
	FirstName   string              `json:"firstname" validate:"required,notblank,max=50"`
	LastName    string              `json:"lastname" validate:"required,notblank,max=50"`
	PhoneNumber string              `json:"phonenumber" validate:"required,phone"`
	Address     string              `json:"address" validate:"required,notblank,max=200"`
	Products    []OrderProductInput `json:"products"`
	PaymentType string              `json:"payment_type,omitempty" validate:"omitempty,oneof=cash card"`
	Comment     string              `json:"comment,omitempty" validate:"max=500"`
}

// OrderUsecase defines the interface for customer order operations.
type OrderUsecase interface {
	// CreateOrder validates the basket, snapshots prices and stores the order.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)
	// GetOrder retrieves an order with its items.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
	// GenerateOrderQR renders the tracking QR code of an existing order.
	GenerateOrderQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}
