package handler

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/service"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retryableError wraps an error to indicate the event should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// EventProcessorParams holds dependencies for the EventProcessor
type EventProcessorParams struct {
	fx.In

	Logger       *slog.Logger
	OrderEventUC usecase.OrderEventUsecase
}

// EventProcessor runs order events from any transport through the usecase
type EventProcessor struct {
	logger       *slog.Logger
	orderEventUC usecase.OrderEventUsecase
}

// NewEventProcessor creates a new EventProcessor
func NewEventProcessor(params EventProcessorParams) *EventProcessor {
	return &EventProcessor{
		logger:       params.Logger,
		orderEventUC: params.OrderEventUC,
	}
}

// Process handles one event under a request-scoped logger. Failures other than
// malformed events are returned as retryable.
func (p *EventProcessor) Process(ctx context.Context, requestID string, event *service.OrderEvent) error {
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, requestID, p.logger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	if err := p.orderEventUC.HandleOrderEvent(ctx, event); err != nil {
		if !errors.Is(err, usecase.ErrInvalidOrderEvent) {
			err = newRetryableError(err)
		}
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", IsRetryableError(err)),
		)

		return err
	}

	reqLogger.Info("[Worker] Order event processed",
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	return nil
}
