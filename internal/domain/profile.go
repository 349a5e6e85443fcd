package domain

import (
	"math"
	"slices"
)

// Point is a surface coordinate in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Profile is the generated outline of one section. Points runs from the
// trailing edge over the upper surface to the leading edge and back along
// the lower surface, 2·Samples−1 entries in all. Camber holds the scaled
// mean line at each chordwise sample.
type Profile struct {
	Designation Designation `json:"designation"`
	Label       string      `json:"label"`
	Chord       float64     `json:"chord"`
	Samples     int         `json:"samples"`
	Points      []Point     `json:"points"`
	Camber      []Point     `json:"camber"`

	// Approximate is set when the shape comes from a fallback model rather
	// than the series' own geometry. Notice explains what was substituted.
	Approximate bool   `json:"approximate,omitempty"`
	Notice      string `json:"notice,omitempty"`
}

// Upper returns the upper surface ordered from leading to trailing edge.
func (p Profile) Upper() []Point {
	if p.Samples == 0 || len(p.Points) < p.Samples {
		return nil
	}
	upper := slices.Clone(p.Points[:p.Samples])
	slices.Reverse(upper)
	return upper
}

// Lower returns the lower surface ordered from leading to trailing edge,
// including the shared leading-edge point.
func (p Profile) Lower() []Point {
	if p.Samples == 0 || len(p.Points) < p.Samples {
		return nil
	}
	return slices.Clone(p.Points[p.Samples-1:])
}

// MaxThickness returns the largest yu − yl over the chordwise samples and the
// chordwise station (camber-line x) where it occurs.
func (p Profile) MaxThickness() (x, thickness float64) {
	upper, lower := p.Upper(), p.Lower()
	thickness = math.Inf(-1)
	for i := range upper {
		if i >= len(lower) || i >= len(p.Camber) {
			break
		}
		if d := upper[i].Y - lower[i].Y; d > thickness {
			thickness = d
			x = p.Camber[i].X
		}
	}
	if math.IsInf(thickness, -1) {
		return 0, 0
	}
	return x, thickness
}

// Bounds returns the extent of the outline.
func (p Profile) Bounds() (minX, maxX, minY, maxY float64) {
	if len(p.Points) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = p.Points[0].X, p.Points[0].X
	minY, maxY = p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points[1:] {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	return minX, maxX, minY, maxY
}

// XY splits the outline into coordinate columns.
func (p Profile) XY() (xs, ys []float64) {
	xs = make([]float64, len(p.Points))
	ys = make([]float64, len(p.Points))
	for i, pt := range p.Points {
		xs[i], ys[i] = pt.X, pt.Y
	}
	return xs, ys
}

// Clone returns a deep copy so callers may keep a profile that is shared
// elsewhere, e.g. in a cache.
func (p Profile) Clone() Profile {
	p.Points = slices.Clone(p.Points)
	p.Camber = slices.Clone(p.Camber)
	return p
}
