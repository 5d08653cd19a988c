package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"foodcart/config"
	"foodcart/internal/delivery/worker/handler"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/service"
	mocks "foodcart/internal/mocks/usecase"
	"foodcart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// fakeReader replays messages and reports io.EOF once drained, like a closed reader.
type fakeReader struct {
	messages  []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]

	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, msg := range msgs {
		r.committed = append(r.committed, msg.Offset)
	}

	return nil
}

func (r *fakeReader) Close() error {
	return nil
}

func eventMessage(t *testing.T, offset int64, event *service.OrderEvent, headers ...kafka.Header) kafka.Message {
	t.Helper()

	value, err := json.Marshal(event)
	require.NoError(t, err)

	return kafka.Message{Offset: offset, Value: value, Headers: headers}
}

func newTestConsumer(t *testing.T, reader *fakeReader) (*kafkaConsumer, *mocks.MockOrderEventUsecase) {
	t.Helper()

	orderEventUC := mocks.NewMockOrderEventUsecase(t)
	processor := handler.NewEventProcessor(handler.EventProcessorParams{Logger: slog.Default(), OrderEventUC: orderEventUC})
	consumer := newKafkaConsumer(reader, processor, slog.Default())
	consumer.retryBackoff = 0

	return consumer, orderEventUC
}

func TestKafkaConsumer_Serve(t *testing.T) {
	created := &service.OrderEvent{Type: constants.EventOrderCreated, OrderID: "order-1", Address: "Moscow"}
	assigned := &service.OrderEvent{Type: constants.EventOrderAssigned, OrderID: "order-2", RestaurantID: "r-1"}

	t.Run("processes and commits every message", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{
			eventMessage(t, 10, created, kafka.Header{Key: "request_id", Value: []byte("req-1")}),
			eventMessage(t, 11, assigned),
		}}
		consumer, orderEventUC := newTestConsumer(t, reader)
		orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.OrderID == "order-1"
		})).Return(nil).Once()
		orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.OrderID == "order-2"
		})).Return(nil).Once()

		require.NoError(t, consumer.Serve(context.Background()))
		assert.Equal(t, []int64{10, 11}, reader.committed)
	})

	t.Run("transient failure is retried then committed", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{eventMessage(t, 5, assigned)}}
		consumer, orderEventUC := newTestConsumer(t, reader)
		orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
			Return(errors.New("fcm unavailable")).Times(defaultMaxAttempts)

		require.NoError(t, consumer.Serve(context.Background()))
		assert.Equal(t, []int64{5}, reader.committed)
	})

	t.Run("recovers on second attempt", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{eventMessage(t, 6, assigned)}}
		consumer, orderEventUC := newTestConsumer(t, reader)
		orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(errors.New("timeout")).Once()
		orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		require.NoError(t, consumer.Serve(context.Background()))
		assert.Equal(t, []int64{6}, reader.committed)
	})

	t.Run("invalid event is not retried", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{eventMessage(t, 7, &service.OrderEvent{Type: constants.EventOrderAssigned})}}
		consumer, orderEventUC := newTestConsumer(t, reader)
		orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
			Return(errors.Wrap(usecase.ErrInvalidOrderEvent, "no restaurant")).Once()

		require.NoError(t, consumer.Serve(context.Background()))
		assert.Equal(t, []int64{7}, reader.committed)
	})

	t.Run("undecodable payload is skipped", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{{Offset: 8, Value: []byte("not json")}}}
		consumer, _ := newTestConsumer(t, reader)

		require.NoError(t, consumer.Serve(context.Background()))
		assert.Equal(t, []int64{8}, reader.committed)
	})
}

func TestNewKafkaConsumer(t *testing.T) {
	processor := handler.NewEventProcessor(handler.EventProcessorParams{Logger: slog.Default()})

	t.Run("disabled for other providers", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

		d, err := NewKafkaConsumer(KafkaConsumerParams{Lc: fxtest.NewLifecycle(t), Cfg: cfg, Logger: slog.Default(), Processor: processor})
		require.NoError(t, err)
		assert.IsType(t, &disabledConsumer{}, d)
		assert.NoError(t, d.Serve(context.Background()))
	})

	t.Run("kafka requires a topic", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderKafka, Brokers: []string{"localhost:9092"}}}

		_, err := NewKafkaConsumer(KafkaConsumerParams{Lc: fxtest.NewLifecycle(t), Cfg: cfg, Logger: slog.Default(), Processor: processor})
		assert.Error(t, err)
	})
}
