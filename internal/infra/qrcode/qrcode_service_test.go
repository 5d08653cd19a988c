package qrcode

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		level string
	}{
		{"small low", 128, "L"},
		{"medium default", 256, "invalid"},
		{"large highest", 512, "H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.level, "https://foodcart.example/orders")

			png, err := svc.GenerateOrderQR(uuid.New())
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(png, pngMagic))
		})
	}
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")
	orderID := uuid.New()

	got, err := svc.ParseOrderQR(`{"order_id":"` + orderID.String() + `","type":"order"}`)
	require.NoError(t, err)
	assert.Equal(t, orderID, got)
}

func TestQRCodeService_ParseOrderQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "hello"},
		{"wrong type", `{"order_id":"` + uuid.NewString() + `","type":"subscription"}`},
		{"bad uuid", `{"order_id":"42","type":"order"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseOrderQR(tt.data)
			assert.Error(t, err)
		})
	}
}
