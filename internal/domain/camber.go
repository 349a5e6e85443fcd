package domain

import (
	"fmt"
	"math"
)

// camberLine evaluates a mean line and its slope at normalized chord positions.
type camberLine interface {
	eval(x []float64) (yc, slope []float64)
}

// flatCamber is the mean line of a symmetric section.
type flatCamber struct{}

func (flatCamber) eval(x []float64) (yc, slope []float64) {
	return make([]float64, len(x)), make([]float64, len(x))
}

// segment is one closed-form piece of a mean line.
type segment func(x float64) (y, dy float64)

func (s segment) over(x []float64) (y, dy []float64) {
	y = make([]float64, len(x))
	dy = make([]float64, len(x))
	for i, v := range x {
		y[i], dy[i] = s(v)
	}
	return y, dy
}

// piecewiseCamber joins two segments at split. Samples with x < split take
// the fore segment; x == split belongs to the aft segment.
type piecewiseCamber struct {
	split float64
	fore  segment
	aft   segment
}

func (c piecewiseCamber) eval(x []float64) (yc, slope []float64) {
	foreY, foreDY := c.fore.over(x)
	aftY, aftDY := c.aft.over(x)
	ahead := predicate(x, func(v float64) bool { return v < c.split })
	return where(ahead, foreY, aftY), where(ahead, foreDY, aftDY)
}

func predicate(x []float64, fn func(float64) bool) []bool {
	out := make([]bool, len(x))
	for i, v := range x {
		out[i] = fn(v)
	}
	return out
}

// where picks a[i] where cond[i] holds and b[i] otherwise.
func where(cond []bool, a, b []float64) []float64 {
	out := make([]float64, len(cond))
	for i, ok := range cond {
		if ok {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// fourDigitCamber is the NACA four-digit mean line: two parabolas meeting
// with zero slope at the maximum camber m located at p.
func fourDigitCamber(m, p float64) camberLine {
	if m == 0 || p == 0 {
		return flatCamber{}
	}
	fore := m / (p * p)
	aft := m / ((1 - p) * (1 - p))
	return piecewiseCamber{
		split: p,
		fore: func(x float64) (float64, float64) {
			return fore * (2*p*x - x*x), 2 * fore * (p - x)
		},
		aft: func(x float64) (float64, float64) {
			return aft * ((1 - 2*p) + 2*p*x - x*x), 2 * aft * (p - x)
		},
	}
}

// fiveDigitMeanLines holds the standard non-reflexed five-digit constants for
// a design lift coefficient of 0.3, keyed by the camber position digit.
var fiveDigitMeanLines = map[int]struct{ r, k1 float64 }{
	1: {r: 0.0580, k1: 361.400},
	2: {r: 0.1260, k1: 51.640},
	3: {r: 0.2025, k1: 15.957},
	4: {r: 0.2900, k1: 6.643},
	5: {r: 0.3910, k1: 3.230},
}

// fiveDigitCamber is the NACA five-digit mean line: a cubic ahead of r and a
// straight line to the trailing edge behind it, scaled linearly with the
// design lift coefficient.
func fiveDigitCamber(cld, p float64) (camberLine, error) {
	if cld == 0 || p == 0 {
		return flatCamber{}, nil
	}
	pos := int(math.Round(p * 20))
	row, ok := fiveDigitMeanLines[pos]
	if !ok {
		return nil, fmt.Errorf("%w: no standard five-digit mean line for camber position %.2f", ErrUnsupportedSeries, p)
	}

	r := row.r
	k := row.k1 * cld / 0.3 / 6
	tail := k * r * r * r
	return piecewiseCamber{
		split: r,
		fore: func(x float64) (float64, float64) {
			return k * (x*x*x - 3*r*x*x + r*r*(3-r)*x), k * (3*x*x - 6*r*x + r*r*(3-r))
		},
		aft: func(x float64) (float64, float64) {
			return tail * (1 - x), -tail
		},
	}, nil
}
