package service

import (
	"context"
)

// OrderEvent represents an order lifecycle event processed by the worker
type OrderEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	Type         string `json:"type"`
	OrderID      string `json:"order_id"`
	Address      string `json:"address"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	TotalCost    string `json:"total_cost,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
