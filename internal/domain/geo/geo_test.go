package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistance_KnownGeodesic(t *testing.T) {
	// Flinders Peak to Buninyong, 54 972.271 m on WGS-84.
	got := Distance(-37.95103342, 144.42486789, -37.65282114, 143.92649554)

	assert.InDelta(t, 54.97, got, 0.001)
}

func TestDistance_MoscowToSaintPetersburg(t *testing.T) {
	got := Distance(55.7558, 37.6173, 59.9343, 30.3351)

	assert.InDelta(t, 635, got, 2)
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][4]float64{
		{55.7558, 37.6173, 59.9343, 30.3351},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{0, 0, 0, 90},
		{10.5, -20.25, 10.5, -20.26},
	}

	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1], p[2], p[3]), Distance(p[2], p[3], p[0], p[1]))
	}
}

func TestDistance_Zero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(55.7558, 37.6173, 55.7558, 37.6173))
	assert.Equal(t, 0.0, Distance(0, 0, 0, 0))
}

func TestDistance_NearAntipodalFallsBack(t *testing.T) {
	got := Distance(0, 0, 0.5, 179.7)

	assert.Greater(t, got, 19000.0)
	assert.Less(t, got, 20100.0)
}

func TestVincenty_ReportsNonConvergence(t *testing.T) {
	_, ok := vincenty(orb.Point{0, 0}, orb.Point{179.7, 0.5})

	assert.False(t, ok)
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "moscow, tverskaya 1", NormalizeAddress("  Moscow, Tverskaya 1 \n"))
	assert.Equal(t, "", NormalizeAddress("   "))
}

func TestCoordinates_Point(t *testing.T) {
	c := Coordinates{Latitude: 55.75, Longitude: 37.61}

	assert.Equal(t, orb.Point{37.61, 55.75}, c.Point())
}
