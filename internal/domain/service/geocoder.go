package service

import (
	"context"

	"foodcart/internal/domain/geo"
	"foodcart/internal/errors"
)

// ErrGeocodeNoResults is returned when the provider knows nothing about an address.
var ErrGeocodeNoResults = errors.New("geocoder returned no results")

// Geocoder defines the interface for the external address geocoding provider.
type Geocoder interface {
	// Geocode resolves a free-text address. It makes a single attempt and
	// returns ErrGeocodeNoResults when the address is unknown to the provider.
	Geocode(ctx context.Context, address string) (*geo.Coordinates, error)
}

// CoordinateCache is a fast lookaside for resolved coordinates, keyed by
// normalized address. Implementations may lose entries at any time.
type CoordinateCache interface {
	// Get returns the cached coordinates and whether they were present.
	Get(ctx context.Context, address string) (*geo.Coordinates, bool)

	// Set stores the coordinates. Failures are not reported.
	Set(ctx context.Context, address string, coords geo.Coordinates)
}
