// Package geo holds the straight-line geometry used to rank restaurants.
package geo

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// WGS-84 ellipsoid.
const (
	semiMajorAxis = 6378137.0
	flattening    = 1 / 298.257223563
	semiMinorAxis = (1 - flattening) * semiMajorAxis

	vincentyMaxIterations = 200
	vincentyTolerance     = 1e-12
)

// Coordinates is a WGS-84 position in degrees.
type Coordinates struct {
	Longitude float64 `json:"lon"`
	Latitude  float64 `json:"lat"`
}

// Point returns the position as an orb point (lon, lat).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// NormalizeAddress is the cache key form of an address: trimmed and lowercased.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// Distance returns the ellipsoidal distance in kilometres between two points,
// rounded to two decimals. Argument order does not affect the result.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	return DistanceBetween(
		Coordinates{Latitude: lat1, Longitude: lon1},
		Coordinates{Latitude: lat2, Longitude: lon2},
	)
}

// DistanceBetween is Distance over Coordinates.
func DistanceBetween(from, to Coordinates) float64 {
	p1, p2 := from.Point(), to.Point()
	if pointLess(p2, p1) {
		p1, p2 = p2, p1
	}

	meters, ok := vincenty(p1, p2)
	if !ok {
		meters = orbgeo.DistanceHaversine(p1, p2)
	}

	return math.Round(meters/10) / 100
}

func pointLess(a, b orb.Point) bool {
	if a.Lon() != b.Lon() {
		return a.Lon() < b.Lon()
	}

	return a.Lat() < b.Lat()
}

// vincenty solves the inverse geodesic problem in metres. It reports false
// when the iteration does not converge, which happens for nearly antipodal points.
func vincenty(p1, p2 orb.Point) (float64, bool) {
	if p1.Equal(p2) {
		return 0, true
	}

	L := deg2rad(p2.Lon() - p1.Lon())
	U1 := math.Atan((1 - flattening) * math.Tan(deg2rad(p1.Lat())))
	U2 := math.Atan((1 - flattening) * math.Tan(deg2rad(p2.Lat())))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	lambda := L
	var sinSigma, cosSigma, sigma, cos2Alpha, cos2SigmaM float64

	converged := false
	for range vincentyMaxIterations {
		sinLambda, cosLambda := math.Sincos(lambda)

		sinSigma = math.Hypot(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
		if sinSigma == 0 {
			return 0, true
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cos2Alpha = 1 - sinAlpha*sinAlpha

		// Both points on the equator.
		cos2SigmaM = 0
		if cos2Alpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cos2Alpha
		}

		C := flattening / 16 * cos2Alpha * (4 + flattening*(4-3*cos2Alpha))
		prev := lambda
		lambda = L + (1-C)*flattening*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-prev) < vincentyTolerance {
			converged = true

			break
		}
	}
	if !converged {
		return 0, false
	}

	uSq := cos2Alpha * (semiMajorAxis*semiMajorAxis - semiMinorAxis*semiMinorAxis) / (semiMinorAxis * semiMinorAxis)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return semiMinorAxis * A * (sigma - deltaSigma), true
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
