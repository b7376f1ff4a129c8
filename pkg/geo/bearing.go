package geo

import "math"

// InitialBearingTo returns the initial bearing, in degrees clockwise from
// true north within [0, 360), of the great-circle path from origin to
// destination.
//
// Coincident points have no defined bearing; 0 is returned for them.
func InitialBearingTo(origin, destination Point) float64 {
	lat1 := origin.lat.Radians()
	lat2 := destination.lat.Radians()
	deltaLon := destination.lon.Radians() - origin.lon.Radians()

	y := math.Sin(deltaLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLon)
	if x == 0 && y == 0 {
		return 0
	}

	return Wrap360(ToDegrees(math.Atan2(y, x)))
}

// InitialBearingTo returns the initial bearing from p to destination.
func (p Point) InitialBearingTo(destination Point) float64 {
	return InitialBearingTo(p, destination)
}
