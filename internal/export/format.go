// Package export renders generated profiles as coordinate tables and plots.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/couchcryptid/naca-airfoil-service/internal/domain"
)

// Format is an output encoding for a profile.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
)

// Columns heads every coordinate table.
var Columns = []string{"x (m)", "y (m)"}

// ParseFormat accepts a format name or file extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	switch f {
	case FormatCSV, FormatXLSX, FormatPNG, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// ContentType is the media type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// Write encodes p to w in format f.
func Write(w io.Writer, p domain.Profile, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, p)
	case FormatXLSX:
		return WriteXLSX(w, p)
	case FormatPNG, FormatSVG:
		return WritePlot(w, p, f)
	default:
		return fmt.Errorf("unknown export format %q", string(f))
	}
}

// FileName names a download after the designation and chord, e.g.
// "NACA_2412_chord_1.5m.xlsx". Approximate profiles get an "_approx" suffix
// so a saved table still says it is not the true section.
func FileName(p domain.Profile, f Format) string {
	var suffix string
	if p.Approximate {
		suffix = "_approx"
	}
	return fmt.Sprintf("NACA_%s_chord_%sm%s.%s", p.Designation.Digits, formatChord(p.Chord), suffix, f)
}

func formatChord(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
