package usecase

import (
	"context"

	"foodcart/internal/domain/geo"
)

// GeocodingUsecase resolves free-text addresses through the persistent cache
// and the external provider. Failures never surface to callers.
type GeocodingUsecase interface {
	// Resolve returns the coordinates of address, or nil when it is unknown.
	Resolve(ctx context.Context, address string) *geo.Coordinates
	// ResolveBatch resolves many addresses at once. The result is keyed by
	// normalized address; unknown addresses map to nil.
	ResolveBatch(ctx context.Context, addresses []string) map[string]*geo.Coordinates
}
