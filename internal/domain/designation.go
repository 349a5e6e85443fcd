package domain

import (
	"fmt"
	"strings"
)

// Designation is a validated NACA digit code together with the shape
// parameters derived from it. Values are fractions of chord.
type Designation struct {
	Series Series `json:"series"`
	Digits string `json:"digits"`

	MaxCamber      float64 `json:"max_camber,omitempty"`      // m, four-digit
	CamberPosition float64 `json:"camber_position,omitempty"` // p, four- and five-digit
	DesignLift     float64 `json:"design_lift,omitempty"`     // cld (five-digit) or design Cl (six-digit)
	Reflexed       bool    `json:"reflexed,omitempty"`        // five-digit third digit == 1
	Thickness      float64 `json:"thickness"`                 // t

	MinPressurePosition float64 `json:"min_pressure_position,omitempty"` // six-digit
}

// ParseDesignation validates a digit string against its series and derives
// the shape parameters. Surrounding whitespace is ignored. Six-digit
// thickness is the last two digits over 100 (641212 is 12%), the standard
// 6-series reading, not the last three.
func ParseDesignation(series Series, digits string) (Designation, error) {
	want := series.Digits()
	if want == 0 {
		return Designation{}, fmt.Errorf("%w: unknown series %d", ErrInvalidDesignation, int(series))
	}

	digits = strings.TrimSpace(digits)
	if len(digits) != want {
		return Designation{}, fmt.Errorf("%w: %s designation needs %d digits, got %q", ErrInvalidDesignation, series, want, digits)
	}
	d := make([]int, len(digits))
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return Designation{}, fmt.Errorf("%w: %q contains non-digit %q", ErrInvalidDesignation, digits, c)
		}
		d[i] = int(c - '0')
	}

	des := Designation{Series: series, Digits: digits}
	switch series {
	case FourDigit:
		des.MaxCamber = float64(d[0]) / 100
		des.CamberPosition = float64(d[1]) / 10
		des.Thickness = float64(d[2]*10+d[3]) / 100
	case FiveDigit:
		if d[2] > 1 {
			return Designation{}, fmt.Errorf("%w: reflex digit of %q must be 0 or 1", ErrInvalidDesignation, digits)
		}
		des.DesignLift = float64(d[0]) * 0.15
		des.CamberPosition = float64(d[1]) / 20
		des.Reflexed = d[2] == 1
		des.Thickness = float64(d[3]*10+d[4]) / 100
	case SixDigit:
		des.MinPressurePosition = float64(d[1]) / 10
		des.DesignLift = float64(d[3]) / 10
		des.Thickness = float64(d[4]*10+d[5]) / 100
	}
	return des, nil
}

// Label is the caption used for plots and exports, e.g. "NACA 2412".
func (d Designation) Label() string {
	return "NACA " + d.Digits
}

// Symmetric reports whether the designation describes an uncambered section.
func (d Designation) Symmetric() bool {
	switch d.Series {
	case FourDigit:
		return d.MaxCamber == 0 || d.CamberPosition == 0
	case FiveDigit:
		return d.DesignLift == 0 || d.CamberPosition == 0
	case SixDigit:
		return d.DesignLift == 0
	default:
		return true
	}
}
