package impl

import (
	"context"
	"testing"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/geo"
	"foodcart/internal/domain/repository"
	"foodcart/internal/domain/service"
	mockRepo "foodcart/internal/mocks/repository"
	mockSvc "foodcart/internal/mocks/service"
	"foodcart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var tverskaya = geo.Coordinates{Latitude: 55.757718, Longitude: 37.611347}

func newTestGeocodingService(t *testing.T, repo repository.LocationRepository, cache service.CoordinateCache) (usecase.GeocodingUsecase, *mockSvc.MockGeocoder) {
	geocoder := mockSvc.NewMockGeocoder(t)
	if cache == nil {
		cache = newMissingCache(t)
	}

	return NewGeocodingService(GeocodingServiceParams{
		LocationRepo: repo,
		Cache:        cache,
		Geocoder:     geocoder,
		Logger:       newTestLogger(),
	}), geocoder
}

func TestGeocodingService_Resolve_SecondLookupIsCacheHit(t *testing.T) {
	repo := newMemoryLocationRepository()
	srv, geocoder := newTestGeocodingService(t, repo, nil)
	ctx := context.Background()

	// The provider sees the trimmed original-case address exactly once.
	geocoder.EXPECT().
		Geocode(mock.Anything, "Moscow, Tverskaya 1").
		Return(&tverskaya, nil).
		Once()

	first := srv.Resolve(ctx, "  Moscow, Tverskaya 1 ")
	second := srv.Resolve(ctx, "moscow, TVERSKAYA 1")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, tverskaya, *first)
	assert.Equal(t, tverskaya, *second)

	stored, ok := repo.get("moscow, tverskaya 1")
	require.True(t, ok)
	assert.Equal(t, tverskaya, *stored.Coordinates())
}

func TestGeocodingService_Resolve_FailureStoresNullAndRetries(t *testing.T) {
	repo := newMemoryLocationRepository()
	srv, geocoder := newTestGeocodingService(t, repo, nil)
	ctx := context.Background()

	geocoder.EXPECT().
		Geocode(mock.Anything, "Nowhere 13").
		Return(nil, service.ErrGeocodeNoResults).
		Once()
	geocoder.EXPECT().
		Geocode(mock.Anything, "Nowhere 13").
		Return(nil, errors.New("connection reset")).
		Once()

	assert.Nil(t, srv.Resolve(ctx, "Nowhere 13"))

	stored, ok := repo.get("nowhere 13")
	require.True(t, ok)
	assert.Nil(t, stored.Latitude)
	assert.Nil(t, stored.Longitude)

	// A null row is a miss, so the provider is asked again.
	assert.Nil(t, srv.Resolve(ctx, "Nowhere 13"))
}

func TestGeocodingService_Resolve_EmptyAddress(t *testing.T) {
	repo := mockRepo.NewMockLocationRepository(t)
	srv, _ := newTestGeocodingService(t, repo, mockSvc.NewMockCoordinateCache(t))

	assert.Nil(t, srv.Resolve(context.Background(), "   "))
}

func TestGeocodingService_Resolve_FastCacheHitSkipsDatabase(t *testing.T) {
	repo := mockRepo.NewMockLocationRepository(t)
	cache := mockSvc.NewMockCoordinateCache(t)
	srv, _ := newTestGeocodingService(t, repo, cache)

	cache.EXPECT().Get(mock.Anything, "moscow, tverskaya 1").Return(&tverskaya, true)

	coords := srv.Resolve(context.Background(), "Moscow, Tverskaya 1")
	require.NotNil(t, coords)
	assert.Equal(t, tverskaya, *coords)
}

func TestGeocodingService_Resolve_DatabaseHitFillsFastCache(t *testing.T) {
	repo := mockRepo.NewMockLocationRepository(t)
	cache := mockSvc.NewMockCoordinateCache(t)
	srv, _ := newTestGeocodingService(t, repo, cache)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, "moscow, tverskaya 1").Return(nil, false)
	repo.EXPECT().FindLocationByAddress(ctx, "moscow, tverskaya 1").Return(&entity.Location{
		Address:   "moscow, tverskaya 1",
		Latitude:  floatPtr(tverskaya.Latitude),
		Longitude: floatPtr(tverskaya.Longitude),
	}, nil)
	cache.EXPECT().Set(ctx, "moscow, tverskaya 1", tverskaya).Return()

	coords := srv.Resolve(ctx, "Moscow, Tverskaya 1")
	require.NotNil(t, coords)
	assert.Equal(t, tverskaya, *coords)
}

func TestGeocodingService_Resolve_StorageErrorsDoNotSurface(t *testing.T) {
	repo := mockRepo.NewMockLocationRepository(t)
	srv, geocoder := newTestGeocodingService(t, repo, nil)
	ctx := context.Background()

	repo.EXPECT().FindLocationByAddress(ctx, "moscow, tverskaya 1").Return(nil, errors.New("db down"))
	geocoder.EXPECT().Geocode(ctx, "Moscow, Tverskaya 1").Return(&tverskaya, nil)
	repo.EXPECT().UpsertLocation(ctx, mock.AnythingOfType("*entity.Location")).Return(errors.New("db down"))

	coords := srv.Resolve(ctx, "Moscow, Tverskaya 1")
	require.NotNil(t, coords)
	assert.Equal(t, tverskaya, *coords)
}

func TestGeocodingService_ResolveBatch(t *testing.T) {
	repo := newMemoryLocationRepository()
	srv, geocoder := newTestGeocodingService(t, repo, nil)
	ctx := context.Background()

	pushkin := geo.Coordinates{Latitude: 59.71, Longitude: 30.39}
	require.NoError(t, repo.UpsertLocation(ctx, &entity.Location{
		Address:   "pushkin, sadovaya 7",
		Latitude:  floatPtr(pushkin.Latitude),
		Longitude: floatPtr(pushkin.Longitude),
	}))

	geocoder.EXPECT().Geocode(mock.Anything, "Moscow, Tverskaya 1").Return(&tverskaya, nil).Once()
	geocoder.EXPECT().Geocode(mock.Anything, "Atlantis").Return(nil, service.ErrGeocodeNoResults).Once()

	result := srv.ResolveBatch(ctx, []string{
		"Moscow, Tverskaya 1",
		" moscow, tverskaya 1",
		"Pushkin, Sadovaya 7",
		"Atlantis",
		"",
	})

	assert.Len(t, result, 3)
	assert.Equal(t, tverskaya, *result["moscow, tverskaya 1"])
	assert.Equal(t, pushkin, *result["pushkin, sadovaya 7"])
	assert.Contains(t, result, "atlantis")
	assert.Nil(t, result["atlantis"])
	assert.Equal(t, 1, repo.batches)
}
