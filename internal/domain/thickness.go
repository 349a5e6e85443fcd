package domain

import "math"

// NACA thickness polynomial coefficients. The closed variant replaces the
// last term so the half-width is zero at x = 1.
const (
	thicknessA0       = 0.2969
	thicknessA1       = -0.1260
	thicknessA2       = -0.3516
	thicknessA3       = 0.2843
	thicknessA4Open   = -0.1015
	thicknessA4Closed = -0.1036
)

// halfThickness returns the half-width yt at each normalized position for a
// section of thickness ratio t.
func halfThickness(x []float64, t float64, closedTrailingEdge bool) []float64 {
	a4 := thicknessA4Open
	if closedTrailingEdge {
		a4 = thicknessA4Closed
	}
	yt := make([]float64, len(x))
	for i, v := range x {
		yt[i] = 5 * t * (thicknessA0*math.Sqrt(v) + thicknessA1*v + thicknessA2*v*v + thicknessA3*v*v*v + a4*v*v*v*v)
	}
	return yt
}
