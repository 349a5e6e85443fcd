package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/couchcryptid/naca-airfoil-service/internal/domain"
	"github.com/couchcryptid/naca-airfoil-service/internal/export"
)

const defaultChord = 1.0

// Downloads carry the approximation flag in headers since the file body has
// no room for it.
const (
	approximateHeader = "X-Airfoil-Approximate"
	noticeHeader      = "X-Airfoil-Notice"
)

var errBadQuery = errors.New("invalid query")

// airfoilResponse is the JSON body of a successful generation.
type airfoilResponse struct {
	domain.Profile
	MaxThickness  float64 `json:"max_thickness"`
	MaxThicknessX float64 `json:"max_thickness_x"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// handleAirfoil serves GET /api/v1/airfoils?series=4&digits=2412 and the
// path form /api/v1/airfoils/{digits}, where the series follows from the
// digit count unless given explicitly.
func (s *Server) handleAirfoil(w http.ResponseWriter, r *http.Request) {
	req, format, err := parseAirfoilQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	p, err := s.generator.Generate(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if format == "" || strings.EqualFold(format, "json") {
		maxX, maxT := p.MaxThickness()
		writeJSON(w, http.StatusOK, airfoilResponse{Profile: p, MaxThickness: maxT, MaxThicknessX: maxX})
		return
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %w", errBadQuery, err))
		return
	}

	// Render fully before writing headers so a failure can still become a 500.
	var buf bytes.Buffer
	if err := export.Write(&buf, p, f); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	if p.Approximate {
		w.Header().Set(approximateHeader, "true")
		w.Header().Set(noticeHeader, p.Notice)
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(p, f)))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func parseAirfoilQuery(r *http.Request) (domain.Request, string, error) {
	q := r.URL.Query()

	digits := r.PathValue("digits")
	if digits == "" {
		digits = q.Get("digits")
	}

	var (
		series domain.Series
		err    error
	)
	if v := q.Get("series"); v != "" {
		series, err = domain.ParseSeries(v)
	} else {
		series, err = domain.InferSeries(digits)
	}
	if err != nil {
		return domain.Request{}, "", err
	}

	req := domain.Request{Series: series, Digits: digits, Chord: defaultChord}

	if v := q.Get("chord"); v != "" {
		req.Chord, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Request{}, "", fmt.Errorf("%w: %q is not a number", domain.ErrInvalidChord, v)
		}
	}
	if v := q.Get("points"); v != "" {
		req.Points, err = strconv.Atoi(v)
		if err != nil {
			return domain.Request{}, "", fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidSampleCount, v)
		}
		if req.Points == 0 {
			return domain.Request{}, "", fmt.Errorf("%w: need at least 2 samples, got 0", domain.ErrInvalidSampleCount)
		}
	}
	if v := q.Get("closed_te"); v != "" {
		req.ClosedTrailingEdge, err = strconv.ParseBool(v)
		if err != nil {
			return domain.Request{}, "", fmt.Errorf("%w: closed_te %q is not a boolean", errBadQuery, v)
		}
	}

	return req, q.Get("format"), nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.ErrorKind(err)
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, errBadQuery):
		kind = "invalid_query"
	case errors.Is(err, domain.ErrUnsupportedSeries):
		status = http.StatusUnprocessableEntity
	case kind == "internal":
		status = http.StatusInternalServerError
		s.logger.Error("airfoil request failed", "path", r.URL.Path, "error", err)
	default:
		s.logger.Debug("airfoil request rejected", "path", r.URL.Path, "kind", kind, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}
