package geo

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Point is an immutable geographic position. The zero value is (0°, 0°).
type Point struct {
	lat Latitude
	lon Longitude
}

// NewPoint returns the point at lat, lon.
func NewPoint(lat Latitude, lon Longitude) Point {
	return Point{lat: lat, lon: lon}
}

// PointFromDegrees validates lat and lon (decimal degrees) and returns the
// corresponding point.
func PointFromDegrees(lat, lon float64) (Point, error) {
	latitude, err := NewLatitude(lat)
	if err != nil {
		return Point{}, fmt.Errorf("point: %w", err)
	}
	longitude, err := NewLongitude(lon)
	if err != nil {
		return Point{}, fmt.Errorf("point: %w", err)
	}
	return NewPoint(latitude, longitude), nil
}

// MustPoint is like PointFromDegrees but panics on invalid input. Intended
// for fixed coordinates known at compile time.
func MustPoint(lat, lon float64) Point {
	p, err := PointFromDegrees(lat, lon)
	if err != nil {
		panic(err)
	}
	return p
}

// pointFromDegrees builds a point without range checks.
func pointFromDegrees(lat, lon float64) Point {
	return Point{
		lat: Latitude{angle: s1.Angle(lat) * s1.Degree},
		lon: Longitude{angle: s1.Angle(lon) * s1.Degree},
	}
}

// Latitude returns the latitude of p.
func (p Point) Latitude() Latitude { return p.lat }

// Longitude returns the longitude of p.
func (p Point) Longitude() Longitude { return p.lon }

// Equal reports whether p and q hold exactly the same coordinates.
func (p Point) Equal(q Point) bool {
	return p.lat == q.lat && p.lon == q.lon
}

// LatLng returns p as an s2.LatLng.
func (p Point) LatLng() s2.LatLng {
	return s2.LatLng{Lat: p.lat.angle, Lng: p.lon.angle}
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.lat, p.lon)
}
