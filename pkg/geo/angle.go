package geo

import "math"

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Wrap360 maps any angle in degrees into [0, 360). Exact multiples of 360
// map to 0 and negative angles wrap upward, so -90 becomes 270.
func Wrap360(degrees float64) float64 {
	if degrees == 0 {
		return 0
	}
	if 0 < degrees && degrees < 360 {
		return degrees
	}
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	// d+360 rounds to 360 for tiny negative d
	if d >= 360 || d == 0 {
		return 0
	}
	return d
}

// Wrap180 maps any angle in degrees into (-180, 180].
func Wrap180(degrees float64) float64 {
	if -180 < degrees && degrees <= 180 {
		return degrees
	}
	d := math.Mod(degrees+180, 360)
	if d <= 0 {
		d += 360
	}
	return d - 180
}

// Wrap90 maps any angle in degrees into [-90, 90], reflecting over the
// poles: 100 becomes 80 and -100 becomes -80.
func Wrap90(degrees float64) float64 {
	if -90 <= degrees && degrees <= 90 {
		return degrees
	}
	d := math.Mod(degrees-90, 360)
	if d < 0 {
		d += 360
	}
	return math.Abs(d-180) - 90
}
