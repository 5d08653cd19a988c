package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodcart/config"
	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/service"
	mocks "foodcart/internal/mocks/usecase"
	"foodcart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mocks.MockOrderEventUsecase) {
	t.Helper()

	orderEventUC := mocks.NewMockOrderEventUsecase(t)
	processor := NewEventProcessor(EventProcessorParams{Logger: slog.Default(), OrderEventUC: orderEventUC})

	return NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default(), Processor: processor}), orderEventUC
}

func pushBody(t *testing.T, event *service.OrderEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/order-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.OrderEvent{
		Type:      constants.EventOrderCreated,
		OrderID:   "order-1",
		Address:   "Moscow, Tverskaya 1",
		RequestID: "from-event",
	}

	t.Run("processed with attribute request id", func(t *testing.T) {
		h, orderEventUC := newTestPushHandler(t, &config.Config{})
		orderEventUC.EXPECT().
			HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool { return e.OrderID == "order-1" })).
			Run(func(ctx context.Context, _ *service.OrderEvent) {
				assert.Equal(t, "from-attributes", deliverycontext.RequestIDFromContext(ctx))
			}).
			Return(nil).Once()

		rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "from-attributes"}), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		h, orderEventUC := newTestPushHandler(t, &config.Config{})
		orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(errors.New("fcm unavailable")).Once()

		rec := servePush(h, pushBody(t, event, nil), "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("malformed event is acknowledged", func(t *testing.T) {
		h, orderEventUC := newTestPushHandler(t, &config.Config{})
		orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
			Return(errors.Wrap(usecase.ErrInvalidOrderEvent, "order assigned without restaurant")).Once()

		rec := servePush(h, pushBody(t, event, nil), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		rec := servePush(h, `{"message":{"data":"%%%"}}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifyToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)

		rec := servePush(h, "{}", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "evil.example.com"}, nil
		}

		rec := servePush(h, "{}", "Bearer signed")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("google issuer", func(t *testing.T) {
		h, orderEventUC := newTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		body := pushBody(t, &service.OrderEvent{Type: constants.EventOrderCreated, OrderID: "order-2"}, nil)
		rec := servePush(h, body, "Bearer signed")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("develop skips verification", func(t *testing.T) {
		devCfg := &config.Config{PubSub: cfg.PubSub}
		devCfg.Env.Env = constants.EnvDevelop
		h, _ := newTestPushHandler(t, devCfg)

		assert.False(t, h.verifyPushAuth)
	})
}
