package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geocoder": map[string]any{
			"apiKey":          "",
			"resolveOnCreate": true,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEOCODER_APIKEY", want: "geocoder.apiKey"},
		{envKey: "GEOCODER_RESOLVEONCREATE", want: "geocoder.resolveOnCreate"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultGeocoderBaseURL, cfg.Geocoder.BaseURL)
	assert.Equal(t, defaultGeocoderTimeout, cfg.Geocoder.Timeout)
	assert.True(t, cfg.Geocoder.ResolveOnCreate)
	assert.False(t, cfg.Assignment.AllowNonQualifying)
	assert.Equal(t, defaultAccessTokenTTL, cfg.ManagerAuth.AccessTokenTTL)
	assert.Equal(t, defaultPhoneRegion, cfg.PhoneRegion())
	assert.Nil(t, cfg.Cache)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Geocoder: &GeocoderConfig{BaseURL: "http://geo.local", Timeout: 10 * time.Second},
		Cache:    &CacheConfig{Enabled: true},
		Phone:    &PhoneConfig{DefaultRegion: "KZ"},
	}
	applyDefaults(cfg)

	assert.Equal(t, "http://geo.local", cfg.Geocoder.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Geocoder.Timeout)
	assert.False(t, cfg.Geocoder.ResolveOnCreate)
	assert.Equal(t, defaultCacheTTL, cfg.Cache.TTL)
	assert.Equal(t, "KZ", cfg.PhoneRegion())
}
