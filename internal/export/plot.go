package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/couchcryptid/naca-airfoil-service/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 4 * vg.Inch
	plotPad    = 0.05 // fraction of each axis span left empty on both sides
)

var outlineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Title captions plots, e.g. "NACA 2412 Airfoil (Chord = 1 m)". Fallback
// shapes are marked so a plot is never mistaken for the true section.
func Title(p domain.Profile) string {
	title := fmt.Sprintf("%s Airfoil (Chord = %s m)", p.Label, formatChord(p.Chord))
	if p.Approximate {
		title += " [approximate]"
	}
	return title
}

// WritePlot renders the outline as a line plot with equal axis scaling in
// FormatPNG or FormatSVG.
func WritePlot(w io.Writer, p domain.Profile, f Format) error {
	pl, err := newPlot(p)
	if err != nil {
		return err
	}
	wt, err := pl.WriterTo(plotWidth, plotHeight, string(f))
	if err != nil {
		return fmt.Errorf("create %s canvas: %w", f, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s plot: %w", f, err)
	}
	return nil
}

func newPlot(p domain.Profile) (*plot.Plot, error) {
	if len(p.Points) == 0 {
		return nil, fmt.Errorf("plot %s: no points", p.Label)
	}

	pl := plot.New()
	pl.Title.Text = Title(p)
	pl.X.Label.Text = Columns[0]
	pl.Y.Label.Text = Columns[1]
	pl.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(p.Points))
	for i, pt := range p.Points {
		pts[i].X, pts[i].Y = pt.X, pt.Y
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("plot %s: %w", p.Label, err)
	}
	line.Color = outlineColor
	line.Width = vg.Points(1.5)
	pl.Add(line)
	pl.Legend.Add(p.Label, line)
	pl.Legend.Top = true

	equalAxes(pl, p, plotWidth, plotHeight)
	return pl, nil
}

// equalAxes widens the shorter axis so one meter spans the same length on
// both axes of a w×h canvas.
func equalAxes(pl *plot.Plot, p domain.Profile, w, h vg.Length) {
	minX, maxX, minY, maxY := p.Bounds()
	xSpan, ySpan := maxX-minX, maxY-minY
	if xSpan <= 0 || w <= 0 {
		return
	}

	aspect := float64(h / w)
	if ySpan < xSpan*aspect {
		mid, half := (minY+maxY)/2, xSpan*aspect/2
		minY, maxY = mid-half, mid+half
	} else {
		mid, half := (minX+maxX)/2, ySpan/aspect/2
		minX, maxX = mid-half, mid+half
	}

	dx, dy := (maxX-minX)*plotPad, (maxY-minY)*plotPad
	pl.X.Min, pl.X.Max = minX-dx, maxX+dx
	pl.Y.Min, pl.Y.Max = minY-dy, maxY+dy
}
