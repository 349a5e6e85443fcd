package domain

import "errors"

var (
	// ErrInvalidDesignation reports a digit string that does not match its series.
	ErrInvalidDesignation = errors.New("invalid designation")

	// ErrInvalidChord reports a chord length outside (0, MaxChord].
	ErrInvalidChord = errors.New("invalid chord")

	// ErrInvalidSampleCount reports a sample count below 2 or above MaxPoints.
	ErrInvalidSampleCount = errors.New("invalid sample count")

	// ErrUnsupportedSeries reports a recognized designation whose camber
	// model is not implemented.
	ErrUnsupportedSeries = errors.New("unsupported series")

	// ErrInvalidRequest reports a request payload that could not be decoded.
	ErrInvalidRequest = errors.New("invalid request")
)

// ErrorKind returns a stable snake_case label for a generation error, used in
// API responses and metric labels. Unknown errors map to "internal".
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidDesignation):
		return "invalid_designation"
	case errors.Is(err, ErrInvalidChord):
		return "invalid_chord"
	case errors.Is(err, ErrInvalidSampleCount):
		return "invalid_sample_count"
	case errors.Is(err, ErrUnsupportedSeries):
		return "unsupported_series"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	default:
		return "internal"
	}
}
