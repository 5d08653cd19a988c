package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"foodcart/config"
	"foodcart/internal/delivery"
	"foodcart/internal/delivery/worker/handler"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	defaultMaxAttempts  = 3
	defaultRetryBackoff = time.Second
	defaultGroupID      = "foodcart-worker"
)

// messageReader is the part of *kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaConsumer reads order events from a Kafka consumer group. A message is
// committed once it is processed, rejected as malformed, or out of retries.
type kafkaConsumer struct {
	reader       messageReader
	processor    *handler.EventProcessor
	logger       *slog.Logger
	maxAttempts  int
	retryBackoff time.Duration
}

// disabledConsumer stands in when events are not delivered through Kafka.
type disabledConsumer struct {
	logger *slog.Logger
}

func (c *disabledConsumer) Serve(_ context.Context) error {
	c.logger.Info("Kafka consumer disabled, order events arrive by push")

	return nil
}

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.EventProcessor
}

// NewKafkaConsumer creates the consumer when pubsub.provider is kafka.
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return &disabledConsumer{logger: params.Logger}, nil
	}

	if len(cfg.Brokers) == 0 {
		return nil, errors.New("brokers are required for kafka provider")
	}
	if cfg.TopicID == "" {
		return nil, errors.New("topic ID is required for kafka provider")
	}

	groupID := cfg.GroupID
	if groupID == "" {
		groupID = defaultGroupID
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  groupID,
		Topic:    cfg.TopicID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})

	consumer := newKafkaConsumer(reader, params.Processor, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Kafka consumer")

			return errors.WithStack(reader.Close())
		},
	})

	params.Logger.Info("Using Kafka consumer for order events",
		slog.Any("brokers", cfg.Brokers),
		slog.String("topic", cfg.TopicID),
		slog.String("group_id", groupID),
	)

	return consumer, nil
}

func newKafkaConsumer(reader messageReader, processor *handler.EventProcessor, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader:       reader,
		processor:    processor,
		logger:       logger,
		maxAttempts:  defaultMaxAttempts,
		retryBackoff: defaultRetryBackoff,
	}
}

// Serve consumes until the reader is closed or ctx is done.
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if isConsumerClosed(err) {
				return nil
			}

			return errors.Wrap(err, "failed to fetch order event")
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if isConsumerClosed(err) {
				return nil
			}
			c.logger.Warn("[Kafka] Failed to commit order event",
				slog.Int("partition", msg.Partition),
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}
	}
}

func (c *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) {
	var event service.OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.Error("[Kafka] Dropping undecodable order event",
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return
	}

	requestID := headerValue(msg.Headers, "request_id")
	if requestID == "" {
		requestID = event.RequestID
	}

	for attempt := 1; ; attempt++ {
		err := c.processor.Process(ctx, requestID, &event)
		if err == nil || !handler.IsRetryableError(err) {
			return
		}

		if attempt >= c.maxAttempts {
			c.logger.Error("[Kafka] Giving up on order event",
				slog.String("order_id", event.OrderID),
				slog.Int("attempts", attempt),
				slog.Any("error", err),
			)

			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.retryBackoff * time.Duration(attempt)):
		}
	}
}

func headerValue(headers []kafka.Header, key string) string {
	for _, header := range headers {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}

func isConsumerClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}
