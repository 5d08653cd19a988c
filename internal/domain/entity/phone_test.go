package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		region string
		want   string
	}{
		{name: "international with punctuation", raw: "+7 (999) 123-45-67", want: "+79991234567"},
		{name: "national trunk prefix", raw: "8 999 123 45 67", region: "RU", want: "+79991234567"},
		{name: "lowercase region", raw: "8 999 123 45 67", region: "ru", want: "+79991234567"},
		{name: "other country", raw: "+1 650-253-0000", want: "+16502530000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tt.raw, tt.region)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhoneNumber_Invalid(t *testing.T) {
	for _, raw := range []string{"", "       ", "-------", "(((((((", "call me maybe", "+7 999 123", "12345"} {
		t.Run(raw, func(t *testing.T) {
			got, err := NormalizePhoneNumber(raw, DefaultPhoneRegion)
			assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
			assert.Empty(t, got)
		})
	}
}
