package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

var (
	// ErrInvalidLatitude is returned for latitudes that are not finite or
	// fall outside [-90, 90].
	ErrInvalidLatitude = errors.New("invalid latitude")
	// ErrInvalidLongitude is returned for longitudes that are not finite.
	ErrInvalidLongitude = errors.New("invalid longitude")
)

// Latitude is an immutable angle north (positive) or south of the equator.
type Latitude struct {
	angle s1.Angle
}

// NewLatitude returns the latitude for the given decimal degrees.
func NewLatitude(degrees float64) (Latitude, error) {
	if math.IsNaN(degrees) || degrees < -90 || degrees > 90 {
		return Latitude{}, fmt.Errorf("%w: %v", ErrInvalidLatitude, degrees)
	}
	return Latitude{angle: s1.Angle(degrees) * s1.Degree}, nil
}

// Radians returns the latitude in radians.
func (l Latitude) Radians() float64 { return l.angle.Radians() }

// Degrees returns the latitude in decimal degrees.
func (l Latitude) Degrees() float64 { return l.angle.Degrees() }

// Angle returns the latitude as an s1.Angle.
func (l Latitude) Angle() s1.Angle { return l.angle }

func (l Latitude) String() string {
	return formatHemisphere(l.Degrees(), "N", "S")
}

// Longitude is an immutable angle east (positive) or west of the prime
// meridian, held within (-180, 180].
type Longitude struct {
	angle s1.Angle
}

// NewLongitude returns the longitude for the given decimal degrees. Finite
// values outside (-180, 180] are wrapped, so 190 becomes -170.
func NewLongitude(degrees float64) (Longitude, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return Longitude{}, fmt.Errorf("%w: %v", ErrInvalidLongitude, degrees)
	}
	return Longitude{angle: s1.Angle(Wrap180(degrees)) * s1.Degree}, nil
}

// Radians returns the longitude in radians.
func (l Longitude) Radians() float64 { return l.angle.Radians() }

// Degrees returns the longitude in decimal degrees.
func (l Longitude) Degrees() float64 { return l.angle.Degrees() }

// Angle returns the longitude as an s1.Angle.
func (l Longitude) Angle() s1.Angle { return l.angle }

func (l Longitude) String() string {
	return formatHemisphere(l.Degrees(), "E", "W")
}

func formatHemisphere(degrees float64, positive, negative string) string {
	hemisphere := positive
	if degrees < 0 {
		hemisphere = negative
	}
	return fmt.Sprintf("%.6f°%s", math.Abs(degrees), hemisphere)
}
