package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Limits bounds the inputs a Generator accepts.
type Limits struct {
	MaxChord      float64 // meters
	MaxPoints     int     // chordwise samples
	DefaultPoints int     // used when a Request leaves Points at zero
}

// DefaultLimits matches the chord range of the interactive tool: up to 100 m,
// 100 samples unless asked otherwise.
func DefaultLimits() Limits {
	return Limits{MaxChord: 100, MaxPoints: 10000, DefaultPoints: 100}
}

// Request carries the inputs of one generation.
type Request struct {
	Series             Series
	Digits             string
	Chord              float64
	Points             int // zero selects Limits.DefaultPoints
	ClosedTrailingEdge bool
}

// ProfileGenerator produces profiles from requests. *Generator implements it;
// adapters decorate it with caching and instrumentation.
type ProfileGenerator interface {
	Generate(req Request) (Profile, error)
}

// Generator turns designations into profiles. It holds no mutable state and
// is safe for concurrent use.
type Generator struct {
	limits          Limits
	strictSixSeries bool
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLimits replaces the default input limits.
func WithLimits(l Limits) GeneratorOption {
	return func(g *Generator) { g.limits = l }
}

// WithStrictSixSeries makes cambered six-digit designations fail with
// ErrUnsupportedSeries instead of falling back to a symmetric section.
func WithStrictSixSeries() GeneratorOption {
	return func(g *Generator) { g.strictSixSeries = true }
}

// NewGenerator creates a Generator with DefaultLimits unless overridden.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{limits: DefaultLimits()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate produces the profile of designation d at the given chord with
// numPoints chordwise samples, using DefaultLimits and an open trailing edge.
func Generate(d Designation, chord float64, numPoints int) (Profile, error) {
	return defaultGenerator.build(d, chord, numPoints, false)
}

// Generate parses and validates req, then builds its profile.
func (g *Generator) Generate(req Request) (Profile, error) {
	d, err := ParseDesignation(req.Series, req.Digits)
	if err != nil {
		return Profile{}, err
	}
	n := req.Points
	if n == 0 {
		n = g.limits.DefaultPoints
	}
	return g.build(d, req.Chord, n, req.ClosedTrailingEdge)
}

func (g *Generator) build(d Designation, chord float64, n int, closedTE bool) (Profile, error) {
	// Re-derive the parameters so a hand-built Designation cannot disagree
	// with its digits.
	d, err := ParseDesignation(d.Series, d.Digits)
	if err != nil {
		return Profile{}, err
	}
	if err := g.checkChord(chord); err != nil {
		return Profile{}, err
	}
	if err := g.checkSamples(n); err != nil {
		return Profile{}, err
	}
	line, notice, err := g.meanLine(d)
	if err != nil {
		return Profile{}, err
	}

	x := floats.Span(make([]float64, n), 0, 1)
	x[n-1] = 1
	yt := halfThickness(x, d.Thickness, closedTE)
	yc, slope := line.eval(x)

	xs := make([]float64, 2*n-1)
	ys := make([]float64, 2*n-1)
	for i := 0; i < n; i++ {
		theta := math.Atan(slope[i])
		sin, cos := math.Sincos(theta)

		// Upper surface is written back to front so index 0 is the trailing edge.
		u := n - 1 - i
		xs[u] = x[i] - yt[i]*sin
		ys[u] = yc[i] + yt[i]*cos

		if i > 0 {
			l := n - 1 + i
			xs[l] = x[i] + yt[i]*sin
			ys[l] = yc[i] - yt[i]*cos
		}
	}
	floats.Scale(chord, xs)
	floats.Scale(chord, ys)

	camberX := floats.ScaleTo(make([]float64, n), chord, x)
	camberY := floats.ScaleTo(make([]float64, n), chord, yc)

	return Profile{
		Designation: d,
		Label:       d.Label(),
		Chord:       chord,
		Samples:     n,
		Points:      zipPoints(xs, ys),
		Camber:      zipPoints(camberX, camberY),
		Approximate: notice != "",
		Notice:      notice,
	}, nil
}

func (g *Generator) checkChord(chord float64) error {
	if math.IsNaN(chord) || chord <= 0 {
		return fmt.Errorf("%w: chord must be positive, got %g", ErrInvalidChord, chord)
	}
	if chord > g.limits.MaxChord {
		return fmt.Errorf("%w: chord %g exceeds maximum %g", ErrInvalidChord, chord, g.limits.MaxChord)
	}
	return nil
}

func (g *Generator) checkSamples(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidSampleCount, n)
	}
	if g.limits.MaxPoints > 0 && n > g.limits.MaxPoints {
		return fmt.Errorf("%w: %d samples exceeds maximum %d", ErrInvalidSampleCount, n, g.limits.MaxPoints)
	}
	return nil
}

// meanLine selects the camber model for d. A non-empty notice means the
// result is an approximation the caller must be told about.
func (g *Generator) meanLine(d Designation) (camberLine, string, error) {
	switch d.Series {
	case FourDigit:
		return fourDigitCamber(d.MaxCamber, d.CamberPosition), "", nil
	case FiveDigit:
		if d.Reflexed && !d.Symmetric() {
			return nil, "", fmt.Errorf("%w: reflexed five-digit mean line %s", ErrUnsupportedSeries, d.Digits)
		}
		line, err := fiveDigitCamber(d.DesignLift, d.CamberPosition)
		return line, "", err
	case SixDigit:
		if d.Symmetric() {
			return flatCamber{}, "six-digit thickness approximated with the four-digit envelope", nil
		}
		if g.strictSixSeries {
			return nil, "", fmt.Errorf("%w: six-digit mean line for %s", ErrUnsupportedSeries, d.Digits)
		}
		return flatCamber{}, fmt.Sprintf("six-digit thickness approximated with the four-digit envelope; design lift %.1f camber omitted", d.DesignLift), nil
	default:
		return nil, "", fmt.Errorf("%w: unknown series %d", ErrInvalidDesignation, int(d.Series))
	}
}

func zipPoints(xs, ys []float64) []Point {
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return pts
}
