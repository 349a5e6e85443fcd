package domain

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDesignation(t *testing.T, series Series, digits string) Designation {
	t.Helper()
	d, err := ParseDesignation(series, digits)
	require.NoError(t, err)
	return d
}

func mustGenerate(t *testing.T, series Series, digits string, chord float64, n int) Profile {
	t.Helper()
	p, err := Generate(mustDesignation(t, series, digits), chord, n)
	require.NoError(t, err)
	return p
}

func TestGenerate_OutputLength(t *testing.T) {
	for _, n := range []int{2, 3, 10, 100, 257} {
		p := mustGenerate(t, FourDigit, "2412", 1.0, n)
		assert.Len(t, p.Points, 2*n-1, "n=%d", n)
		assert.Len(t, p.Camber, n, "n=%d", n)
		assert.Equal(t, n, p.Samples)
	}
}

func TestGenerate_SymmetricFourDigitHasZeroCamber(t *testing.T) {
	for _, digits := range []string{"0012", "0006", "2012", "9015", "0400"} {
		t.Run(digits, func(t *testing.T) {
			p := mustGenerate(t, FourDigit, digits, 1.0, 100)
			for i, c := range p.Camber {
				require.Zero(t, c.Y, "camber at sample %d", i)
			}
		})
	}
}

func TestGenerate_0012MaxThickness(t *testing.T) {
	p := mustGenerate(t, FourDigit, "0012", 1.0, 100)

	x, thickness := p.MaxThickness()
	assert.InDelta(t, 0.3, x, 0.02)
	assert.InDelta(t, 0.12, thickness, 0.001)
}

func TestGenerate_MaxThicknessScalesWithChord(t *testing.T) {
	p := mustGenerate(t, FourDigit, "0012", 2.5, 100)

	x, thickness := p.MaxThickness()
	assert.InDelta(t, 0.75, x, 0.05)
	assert.InDelta(t, 0.30, thickness, 0.0025)
}

func TestGenerate_ChordScalingIsExact(t *testing.T) {
	cases := []struct {
		series Series
		digits string
	}{
		{FourDigit, "2412"},
		{FourDigit, "0012"},
		{FiveDigit, "23012"},
		{SixDigit, "641212"},
	}
	for _, tc := range cases {
		for _, n := range []int{2, 37, 100} {
			unit := mustGenerate(t, tc.series, tc.digits, 1.0, n)
			double := mustGenerate(t, tc.series, tc.digits, 2.0, n)

			require.Len(t, double.Points, len(unit.Points))
			for i := range unit.Points {
				require.Equal(t, 2.0*unit.Points[i].X, double.Points[i].X, "%s n=%d i=%d", tc.digits, n, i)
				require.Equal(t, 2.0*unit.Points[i].Y, double.Points[i].Y, "%s n=%d i=%d", tc.digits, n, i)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first := mustGenerate(t, FiveDigit, "23015", 1.3, 150)
	second := mustGenerate(t, FiveDigit, "23015", 1.3, 150)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated generation differs (-first +second):\n%s", diff)
	}
}

func TestGenerate_InvalidDesignation(t *testing.T) {
	for _, digits := range []string{"241", "24a2", "", "24125"} {
		t.Run(digits, func(t *testing.T) {
			p, err := Generate(Designation{Series: FourDigit, Digits: digits}, 1.0, 100)
			require.ErrorIs(t, err, ErrInvalidDesignation)
			assert.Empty(t, p.Points)
		})
	}
}

func TestGenerate_InvalidChord(t *testing.T) {
	d := mustDesignation(t, FourDigit, "2412")
	for _, chord := range []float64{0, -1, math.NaN(), math.Inf(-1), math.Inf(1), 100.5} {
		p, err := Generate(d, chord, 100)
		require.ErrorIs(t, err, ErrInvalidChord, "chord=%g", chord)
		assert.Empty(t, p.Points)
	}
}

func TestGenerate_InvalidSampleCount(t *testing.T) {
	d := mustDesignation(t, FourDigit, "2412")
	for _, n := range []int{-5, 0, 1, 10001} {
		p, err := Generate(d, 1.0, n)
		require.ErrorIs(t, err, ErrInvalidSampleCount, "n=%d", n)
		assert.Empty(t, p.Points)
	}
}

func TestGenerate_DesignationCheckedBeforeChord(t *testing.T) {
	_, err := Generate(Designation{Series: FourDigit, Digits: "24a2"}, -1, 0)
	require.ErrorIs(t, err, ErrInvalidDesignation)

	_, err = Generate(mustDesignation(t, FourDigit, "2412"), -1, 0)
	require.ErrorIs(t, err, ErrInvalidChord)
}

func TestGenerate_2412Outline(t *testing.T) {
	p := mustGenerate(t, FourDigit, "2412", 1.0, 100)
	require.Len(t, p.Points, 199)
	assert.Equal(t, "NACA 2412", p.Label)
	assert.False(t, p.Approximate)

	minX, maxX, _, _ := p.Bounds()
	assert.InDelta(t, 0.0, minX, 1e-3)
	assert.InDelta(t, 1.0, maxX, 1e-3)

	le := 0
	for i, pt := range p.Points {
		if pt.X < p.Points[le].X {
			le = i
		}
	}
	assert.InDelta(t, 0.0, p.Points[le].Y, 1e-3)
	assert.Equal(t, Point{}, p.Points[99], "leading-edge sample")

	// Open polyline approximating a closed loop: the trailing-edge gap is tiny.
	first, last := p.Points[0], p.Points[len(p.Points)-1]
	assert.Less(t, math.Hypot(first.X-last.X, first.Y-last.Y), 0.01)

	assert.False(t, selfIntersects(p.Points), "outline must not cross itself")

	// Cambered: the upper surface sits above the lower everywhere but the nose.
	upper, lower := p.Upper(), p.Lower()
	for i := 1; i < len(upper); i++ {
		assert.Greater(t, upper[i].Y, lower[i].Y, "sample %d", i)
	}
}

func TestGenerate_0006IsMirrorSymmetric(t *testing.T) {
	p := mustGenerate(t, FourDigit, "0006", 1.0, 100)
	upper, lower := p.Upper(), p.Lower()
	require.Len(t, upper, 100)
	require.Len(t, lower, 100)

	for i := range upper {
		assert.InDelta(t, upper[i].X, lower[i].X, 1e-12, "sample %d", i)
		assert.InDelta(t, -upper[i].Y, lower[i].Y, 1e-12, "sample %d", i)
	}
}

func TestGenerate_ZeroThicknessFollowsCamberLine(t *testing.T) {
	p := mustGenerate(t, FourDigit, "2400", 1.0, 50)
	upper, lower := p.Upper(), p.Lower()

	for i := range p.Camber {
		assert.InDelta(t, p.Camber[i].Y, upper[i].Y, 1e-15)
		assert.InDelta(t, p.Camber[i].Y, lower[i].Y, 1e-15)
		assert.InDelta(t, p.Camber[i].X, upper[i].X, 1e-15)
	}
	_, thickness := p.MaxThickness()
	assert.InDelta(t, 0.0, thickness, 1e-15)
}

func TestGenerate_FourDigitCamberPeak(t *testing.T) {
	p := mustGenerate(t, FourDigit, "4412", 1.0, 11) // x = 0, 0.1, ..., 1

	peak := 0
	for i, c := range p.Camber {
		if c.Y > p.Camber[peak].Y {
			peak = i
		}
	}
	assert.InDelta(t, 0.4, p.Camber[peak].X, 1e-12)
	assert.InDelta(t, 0.04, p.Camber[peak].Y, 1e-12)
	assert.InDelta(t, 0.0, p.Camber[0].Y, 1e-15)
	assert.InDelta(t, 0.0, p.Camber[10].Y, 1e-15)
}

func TestGenerate_FiveDigitCamber(t *testing.T) {
	p := mustGenerate(t, FiveDigit, "23012", 1.0, 201)

	peak := 0
	for i, c := range p.Camber {
		if c.Y > p.Camber[peak].Y {
			peak = i
		}
	}
	assert.InDelta(t, 0.15, p.Camber[peak].X, 0.01)
	assert.InDelta(t, 0.0184, p.Camber[peak].Y, 0.0005)
	assert.InDelta(t, 0.0, p.Camber[len(p.Camber)-1].Y, 1e-12, "mean line returns to the trailing edge")

	x, thickness := p.MaxThickness()
	assert.InDelta(t, 0.12, thickness, 0.002)
	assert.InDelta(t, 0.3, x, 0.05)
}

func TestGenerate_FiveDigitCamberScalesWithDesignLift(t *testing.T) {
	low := mustGenerate(t, FiveDigit, "23012", 1.0, 51)
	high := mustGenerate(t, FiveDigit, "43012", 1.0, 51)

	for i := range low.Camber {
		assert.InDelta(t, 2*low.Camber[i].Y, high.Camber[i].Y, 1e-12)
	}
}

func TestGenerate_SymmetricFiveDigitMatchesFourDigit(t *testing.T) {
	five := mustGenerate(t, FiveDigit, "00012", 1.0, 80)
	four := mustGenerate(t, FourDigit, "0012", 1.0, 80)

	if diff := cmp.Diff(four.Points, five.Points); diff != "" {
		t.Errorf("outline mismatch (-four +five):\n%s", diff)
	}
}

func TestGenerate_FiveDigitUnsupported(t *testing.T) {
	for _, digits := range []string{"23112", "26012", "29012"} {
		t.Run(digits, func(t *testing.T) {
			p, err := Generate(mustDesignation(t, FiveDigit, digits), 1.0, 100)
			require.ErrorIs(t, err, ErrUnsupportedSeries)
			assert.Empty(t, p.Points)
		})
	}
}

func TestGenerate_SixDigitFallsBackToSymmetric(t *testing.T) {
	six := mustGenerate(t, SixDigit, "641212", 1.0, 100)
	four := mustGenerate(t, FourDigit, "0012", 1.0, 100)

	assert.True(t, six.Approximate)
	assert.Contains(t, six.Notice, "camber omitted")
	assert.Equal(t, "NACA 641212", six.Label)
	if diff := cmp.Diff(four.Points, six.Points); diff != "" {
		t.Errorf("outline mismatch (-four +six):\n%s", diff)
	}
}

func TestGenerator_StrictSixSeries(t *testing.T) {
	g := NewGenerator(WithStrictSixSeries())

	_, err := g.Generate(Request{Series: SixDigit, Digits: "641212", Chord: 1})
	require.ErrorIs(t, err, ErrUnsupportedSeries)

	p, err := g.Generate(Request{Series: SixDigit, Digits: "640012", Chord: 1})
	require.NoError(t, err)
	assert.True(t, p.Approximate)
	assert.NotContains(t, p.Notice, "camber omitted")
}

func TestGenerator_DefaultPoints(t *testing.T) {
	g := NewGenerator()
	p, err := g.Generate(Request{Series: FourDigit, Digits: "2412", Chord: 1})
	require.NoError(t, err)
	assert.Len(t, p.Points, 199)
}

func TestGenerator_CustomLimits(t *testing.T) {
	g := NewGenerator(WithLimits(Limits{MaxChord: 5, MaxPoints: 50, DefaultPoints: 20}))

	p, err := g.Generate(Request{Series: FourDigit, Digits: "2412", Chord: 5})
	require.NoError(t, err)
	assert.Len(t, p.Points, 39)

	_, err = g.Generate(Request{Series: FourDigit, Digits: "2412", Chord: 5.01})
	require.ErrorIs(t, err, ErrInvalidChord)

	_, err = g.Generate(Request{Series: FourDigit, Digits: "2412", Chord: 1, Points: 51})
	require.ErrorIs(t, err, ErrInvalidSampleCount)
}

func TestGenerator_ClosedTrailingEdge(t *testing.T) {
	g := NewGenerator()
	p, err := g.Generate(Request{Series: FourDigit, Digits: "0012", Chord: 1, Points: 60, ClosedTrailingEdge: true})
	require.NoError(t, err)

	first, last := p.Points[0], p.Points[len(p.Points)-1]
	assert.InDelta(t, first.X, last.X, 1e-12)
	assert.InDelta(t, first.Y, last.Y, 1e-12)

	open, err := g.Generate(Request{Series: FourDigit, Digits: "0012", Chord: 1, Points: 60})
	require.NoError(t, err)
	assert.Greater(t, open.Points[0].Y-open.Points[len(open.Points)-1].Y, 0.002)
}

func TestGenerate_UsesDigitsOverHandSetParameters(t *testing.T) {
	d := Designation{Series: FourDigit, Digits: "0012", MaxCamber: 0.09, CamberPosition: 0.5}
	p, err := Generate(d, 1.0, 20)
	require.NoError(t, err)
	assert.Zero(t, p.Designation.MaxCamber)
	for _, c := range p.Camber {
		assert.Zero(t, c.Y)
	}
}

func TestPiecewiseCamber_SplitSampleTakesAftBranch(t *testing.T) {
	c := piecewiseCamber{
		split: 0.5,
		fore:  func(float64) (float64, float64) { return 1, 10 },
		aft:   func(float64) (float64, float64) { return 2, 20 },
	}
	yc, slope := c.eval([]float64{0.25, 0.49, 0.5, 0.75})

	assert.Equal(t, []float64{1, 1, 2, 2}, yc)
	assert.Equal(t, []float64{10, 10, 20, 20}, slope)
}

func TestFiveDigitCamber_ContinuousAtSplit(t *testing.T) {
	for pos, row := range fiveDigitMeanLines {
		line, err := fiveDigitCamber(0.3, float64(pos)/20)
		require.NoError(t, err)

		pc, ok := line.(piecewiseCamber)
		require.True(t, ok)
		foreY, _ := pc.fore(row.r)
		aftY, _ := pc.aft(row.r)
		assert.InDelta(t, foreY, aftY, 1e-9, "position digit %d", pos)
	}
}

func TestHalfThickness(t *testing.T) {
	yt := halfThickness([]float64{0, 1}, 0.12, false)
	assert.Zero(t, yt[0])
	assert.InDelta(t, 0.00126, yt[1], 1e-9)

	closed := halfThickness([]float64{1}, 0.12, true)
	assert.InDelta(t, 0.0, closed[0], 1e-12)
}

// selfIntersects reports whether any two non-adjacent segments of the
// polyline properly cross.
func selfIntersects(pts []Point) bool {
	for i := 0; i+1 < len(pts); i++ {
		for j := i + 2; j+1 < len(pts); j++ {
			if segmentsCross(pts[i], pts[i+1], pts[j], pts[j+1]) {
				return true
			}
		}
	}
	return false
}

func segmentsCross(a, b, c, d Point) bool {
	orient := func(p, q, r Point) float64 {
		return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	}
	d1, d2 := orient(c, d, a), orient(c, d, b)
	d3, d4 := orient(a, b, c), orient(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
