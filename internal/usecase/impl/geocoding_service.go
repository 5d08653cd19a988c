// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/geo"
	"foodcart/internal/domain/repository"
	"foodcart/internal/domain/service"
	"foodcart/internal/errors"
	"foodcart/internal/usecase"

	"go.uber.org/fx"
)

// geocodingService implements the GeocodingUsecase interface.
type geocodingService struct {
	locationRepo repository.LocationRepository
	cache        service.CoordinateCache
	geocoder     service.Geocoder
	logger       *slog.Logger
}

// GeocodingServiceParams holds dependencies for GeocodingService, injected by Fx.
type GeocodingServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Cache        service.CoordinateCache
	Geocoder     service.Geocoder
	Logger       *slog.Logger
}

// NewGeocodingService is the constructor for geocodingService.
func NewGeocodingService(params GeocodingServiceParams) usecase.GeocodingUsecase {
	return &geocodingService{
		locationRepo: params.LocationRepo,
		cache:        params.Cache,
		geocoder:     params.Geocoder,
		logger:       params.Logger,
	}
}

func (srv *geocodingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// Resolve looks the address up in the cache first and asks the provider only
// on a miss. Every provider outcome is written back, failures as null rows.
func (srv *geocodingService) Resolve(ctx context.Context, address string) *geo.Coordinates {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		srv.log(ctx).Warn("Skipping geocode of empty address")

		return nil
	}

	key := geo.NormalizeAddress(trimmed)
	if coords, ok := srv.cache.Get(ctx, key); ok {
		return coords
	}

	location, err := srv.locationRepo.FindLocationByAddress(ctx, key)
	switch {
	case err == nil:
		if coords := location.Coordinates(); coords != nil {
			srv.cache.Set(ctx, key, *coords)

			return coords
		}
	case !errors.Is(err, repository.ErrLocationNotFound):
		srv.log(ctx).Warn("Failed to read geocode cache", slog.String("address", key), slog.Any("error", err))
	}

	return srv.fetch(ctx, trimmed, key)
}

// ResolveBatch resolves every distinct address with one cache query and at
// most one provider call per address that is missing or unresolved.
func (srv *geocodingService) ResolveBatch(ctx context.Context, addresses []string) map[string]*geo.Coordinates {
	result := make(map[string]*geo.Coordinates, len(addresses))
	originals := make(map[string]string, len(addresses))
	pending := make([]string, 0, len(addresses))

	for _, address := range addresses {
		trimmed := strings.TrimSpace(address)
		if trimmed == "" {
			continue
		}
		key := geo.NormalizeAddress(trimmed)
		if _, seen := originals[key]; seen {
			continue
		}
		originals[key] = trimmed
		result[key] = nil

		if coords, ok := srv.cache.Get(ctx, key); ok {
			result[key] = coords

			continue
		}
		pending = append(pending, key)
	}

	if len(pending) == 0 {
		return result
	}

	locations, err := srv.locationRepo.FindLocationsByAddresses(ctx, pending)
	if err != nil {
		srv.log(ctx).Warn("Failed to read geocode cache in batch", slog.Int("count", len(pending)), slog.Any("error", err))
	}

	cached := make(map[string]*geo.Coordinates, len(locations))
	for _, location := range locations {
		if coords := location.Coordinates(); coords != nil {
			cached[location.Address] = coords
		}
	}

	for _, key := range pending {
		if coords, ok := cached[key]; ok {
			srv.cache.Set(ctx, key, *coords)
			result[key] = coords

			continue
		}
		result[key] = srv.fetch(ctx, originals[key], key)
	}

	srv.log(ctx).Debug("Resolved address batch",
		slog.Int("addresses", len(result)),
		slog.Int("cache_misses", len(pending)-len(cached)),
	)

	return result
}

// fetch calls the provider with the original-case address and records the
// outcome under the normalized key.
func (srv *geocodingService) fetch(ctx context.Context, address, key string) *geo.Coordinates {
	coords, err := srv.geocoder.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, service.ErrGeocodeNoResults) {
			srv.log(ctx).Info("Address not found by geocoder", slog.String("address", address))
		} else {
			srv.log(ctx).Warn("Geocoder request failed", slog.String("address", address), slog.Any("error", err))
		}
		srv.store(ctx, key, nil)

		return nil
	}

	srv.store(ctx, key, coords)
	srv.cache.Set(ctx, key, *coords)

	return coords
}

func (srv *geocodingService) store(ctx context.Context, key string, coords *geo.Coordinates) {
	location := &entity.Location{Address: key}
	if coords != nil {
		lat, lon := coords.Latitude, coords.Longitude
		location.Latitude = &lat
		location.Longitude = &lon
	}

	if err := srv.locationRepo.UpsertLocation(ctx, location); err != nil {
		srv.log(ctx).Warn("Failed to write geocode cache", slog.String("address", key), slog.Any("error", err))
	}
}
