package repository

import (
	"context"

	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"
)

// ErrLocationNotFound is returned when an address has never been looked up.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository is the persistent geocode cache. Addresses are stored
// and matched in normalized form.
type LocationRepository interface {
	// FindLocationByAddress retrieves the cached entry for a normalized address.
	// Returns ErrLocationNotFound when the address has never been looked up.
	FindLocationByAddress(ctx context.Context, address string) (*entity.Location, error)

	// FindLocationsByAddresses retrieves cached entries for many normalized addresses
	// in a single query.
	FindLocationsByAddresses(ctx context.Context, addresses []string) ([]*entity.Location, error)

	// UpsertLocation inserts the entry or overwrites its coordinates.
	// Concurrent upserts of the same address never fail.
	UpsertLocation(ctx context.Context, location *entity.Location) error
}
