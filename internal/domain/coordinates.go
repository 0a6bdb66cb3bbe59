package domain

import "math"

// Galactic coordinates of a system, in light years.
type Coord3 struct {
	X float64
	Y float64
	Z float64
}

// Report whether every component is a finite number.
// Missing upstream values are decoded as NaN and fail this check.
func (c Coord3) Valid() bool {
	for _, v := range [...]float64{c.X, c.Y, c.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Euclidean distance between two points in light years.
func (c Coord3) DistanceTo(o Coord3) float64 {
	dx := o.X - c.X
	dy := o.Y - c.Y
	dz := o.Z - c.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
