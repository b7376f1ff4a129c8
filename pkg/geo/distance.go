// Package geo provides spherical-earth geodesy: great-circle distance and
// initial bearing between latitude/longitude points.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// EarthRadiusMeters is the mean radius of Earth in metres.
	EarthRadiusMeters = 6371000.0
	// EarthRadiusKm is the mean radius of Earth in kilometers.
	EarthRadiusKm = 6371.0
	// EarthRadiusMiles is the mean radius of Earth in miles.
	EarthRadiusMiles = 3958.8
)

// ErrUnknownUnit is returned by RadiusForUnit for unsupported unit names.
var ErrUnknownUnit = errors.New("unknown distance unit")

// RadiusForUnit returns the mean Earth radius expressed in the given unit
// ("m", "km" or "mi").
func RadiusForUnit(unit string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "m", "meter", "meters", "metre", "metres":
		return EarthRadiusMeters, nil
	case "km", "kilometer", "kilometers", "kilometre", "kilometres":
		return EarthRadiusKm, nil
	case "mi", "mile", "miles":
		return EarthRadiusMiles, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
}

// DistanceTo returns the great-circle distance between origin and destination
// on a sphere of the given radius, using the haversine formula. The result is
// in the same unit as radius.
func DistanceTo(origin, destination Point, radius float64) float64 {
	lat1 := origin.lat.Radians()
	lat2 := destination.lat.Radians()
	deltaLat := lat2 - lat1
	deltaLon := destination.lon.Radians() - origin.lon.Radians()

	sinLat := math.Sin(deltaLat / 2)
	sinLon := math.Sin(deltaLon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Rounding near antipodes can push a just outside [0, 1].
	a = math.Max(0, math.Min(1, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return radius * c
}

// DistanceTo returns the great-circle distance from p to destination.
func (p Point) DistanceTo(destination Point, radius float64) float64 {
	return DistanceTo(p, destination, radius)
}

// HaversineWithRadius calculates the great-circle distance between two points
// given in decimal degrees. Inputs are not validated.
func HaversineWithRadius(lat1, lon1, lat2, lon2, radius float64) float64 {
	return DistanceTo(pointFromDegrees(lat1, lon1), pointFromDegrees(lat2, lon2), radius)
}
