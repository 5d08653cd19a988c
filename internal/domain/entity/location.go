package entity

import (
	"time"

	"foodcart/internal/domain/geo"
)

// Location is a cached geocoding result keyed by normalized address.
// Nil coordinates record that the provider could not resolve the address.
type Location struct {
	Address   string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Coordinates returns the cached position, or nil when unresolved.
func (l *Location) Coordinates() *geo.Coordinates {
	if l == nil || l.Latitude == nil || l.Longitude == nil {
		return nil
	}

	return &geo.Coordinates{Latitude: *l.Latitude, Longitude: *l.Longitude}
}
