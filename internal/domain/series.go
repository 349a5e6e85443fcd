package domain

import (
	"fmt"
	"strings"
)

// Series identifies a NACA designation family.
type Series int

const (
	FourDigit Series = iota + 1
	FiveDigit
	SixDigit
)

// Digits returns the number of digits a designation of this series carries.
func (s Series) Digits() int {
	switch s {
	case FourDigit:
		return 4
	case FiveDigit:
		return 5
	case SixDigit:
		return 6
	default:
		return 0
	}
}

func (s Series) String() string {
	switch s {
	case FourDigit:
		return "four-digit"
	case FiveDigit:
		return "five-digit"
	case SixDigit:
		return "six-digit"
	default:
		return fmt.Sprintf("series(%d)", int(s))
	}
}

// MarshalText encodes the series as its digit count, e.g. "4".
func (s Series) MarshalText() ([]byte, error) {
	if s.Digits() == 0 {
		return nil, fmt.Errorf("%w: unknown series %d", ErrInvalidDesignation, int(s))
	}
	return []byte(fmt.Sprintf("%d", s.Digits())), nil
}

// UnmarshalText accepts any spelling understood by ParseSeries.
func (s *Series) UnmarshalText(text []byte) error {
	parsed, err := ParseSeries(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeries maps user input such as "4", "naca4", "four-digit" or "6-digit"
// to a Series.
func ParseSeries(s string) (Series, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "naca")
	v = strings.TrimSpace(strings.TrimLeft(v, " -_"))

	switch v {
	case "4", "4-digit", "4digit", "four", "four-digit", "fourdigit":
		return FourDigit, nil
	case "5", "5-digit", "5digit", "five", "five-digit", "fivedigit":
		return FiveDigit, nil
	case "6", "6-digit", "6digit", "six", "six-digit", "sixdigit":
		return SixDigit, nil
	default:
		return 0, fmt.Errorf("%w: unknown series %q", ErrInvalidDesignation, s)
	}
}

// InferSeries picks the series whose digit count matches digits.
func InferSeries(digits string) (Series, error) {
	switch n := len(strings.TrimSpace(digits)); n {
	case 4:
		return FourDigit, nil
	case 5:
		return FiveDigit, nil
	case 6:
		return SixDigit, nil
	default:
		return 0, fmt.Errorf("%w: cannot infer series from %d digits", ErrInvalidDesignation, n)
	}
}
