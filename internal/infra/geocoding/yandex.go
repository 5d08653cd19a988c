// Package geocoding implements the Yandex HTTP geocoder.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodcart/config"
	"foodcart/internal/domain/geo"
	"foodcart/internal/domain/service"

	"github.com/pkg/errors"
)

const maxResponseBytes = 1 << 20

// yandexResponse is the subset of the geocoder JSON we read.
type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// YandexGeocoder resolves addresses through the Yandex geocoder HTTP API.
type YandexGeocoder struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewYandexGeocoder creates the geocoder from config. The HTTP timeout covers
// the whole request and there are no retries.
func NewYandexGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	return NewYandexGeocoderWithClient(cfg.Geocoder.BaseURL, cfg.Geocoder.APIKey, &http.Client{
		Timeout: cfg.Geocoder.Timeout,
	}, logger)
}

// NewYandexGeocoderWithClient creates the geocoder with a caller supplied client.
func NewYandexGeocoderWithClient(baseURL, apiKey string, client *http.Client, logger *slog.Logger) *YandexGeocoder {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}

	return &YandexGeocoder{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: client,
		logger:     logger,
	}
}

// Geocode resolves a free-text address to its first match.
func (g *YandexGeocoder) Geocode(ctx context.Context, address string) (*geo.Coordinates, error) {
	query := url.Values{}
	query.Set("geocode", address)
	query.Set("apikey", g.apiKey)
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build geocoder request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoder request failed")
	}
	defer resp.Body.Close()

	g.logger.DebugContext(ctx, "Geocoder responded",
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

		return nil, errors.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var payload yandexResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoder response")
	}

	members := payload.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return nil, service.ErrGeocodeNoResults
	}

	coords, err := ParsePosition(members[0].GeoObject.Point.Pos)
	if err != nil {
		return nil, err
	}

	return coords, nil
}

// ParsePosition parses a "lon lat" pair as returned in Point.pos.
func ParsePosition(pos string) (*geo.Coordinates, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return nil, errors.Errorf("malformed position %q", pos)
	}

	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed longitude in %q", pos)
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed latitude in %q", pos)
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, errors.Errorf("position %q out of range", pos)
	}

	return &geo.Coordinates{Longitude: lon, Latitude: lat}, nil
}
