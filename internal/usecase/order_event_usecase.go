package usecase

import (
	"context"

	"foodcart/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrInvalidOrderEvent marks an event that can never be processed; redelivering
// it would fail the same way.
var ErrInvalidOrderEvent = errors.New("invalid order event")

// OrderEventUsecase handles order events delivered to the worker.
type OrderEventUsecase interface {
	// HandleOrderEvent processes a single event. Unknown event types are ignored.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error
}
