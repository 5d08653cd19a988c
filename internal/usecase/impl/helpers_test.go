package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"
	mockSvc "foodcart/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// newMissingCache returns a coordinate cache that never holds anything.
func newMissingCache(t *testing.T) *mockSvc.MockCoordinateCache {
	cache := mockSvc.NewMockCoordinateCache(t)
	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false).Maybe()
	cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	return cache
}

// memoryLocationRepository is an in-memory LocationRepository for exercising
// the geocoding flow end to end.
type memoryLocationRepository struct {
	mu        sync.Mutex
	locations map[string]*entity.Location
	batches   int
}

func newMemoryLocationRepository() *memoryLocationRepository {
	return &memoryLocationRepository{locations: make(map[string]*entity.Location)}
}

func (r *memoryLocationRepository) FindLocationByAddress(_ context.Context, address string) (*entity.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	location, ok := r.locations[address]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}
	copied := *location

	return &copied, nil
}

func (r *memoryLocationRepository) FindLocationsByAddresses(_ context.Context, addresses []string) ([]*entity.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.batches++
	result := make([]*entity.Location, 0, len(addresses))
	for _, address := range addresses {
		if location, ok := r.locations[address]; ok {
			copied := *location
			result = append(result, &copied)
		}
	}

	return result, nil
}

func (r *memoryLocationRepository) UpsertLocation(_ context.Context, location *entity.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *location
	r.locations[location.Address] = &copied

	return nil
}

func (r *memoryLocationRepository) get(address string) (*entity.Location, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	location, ok := r.locations[address]

	return location, ok
}
