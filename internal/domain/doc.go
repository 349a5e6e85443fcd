// Package domain generates NACA airfoil section coordinates.
//
// # Designations
//
// A NACA section is identified by a short digit code whose meaning depends on
// the series:
//
//	Four-digit "MPTT":    M = max camber (% chord), P = camber position (tenths),
//	                      TT = max thickness (% chord). "2412" → m=0.02, p=0.4, t=0.12.
//	Five-digit "LPQTT":   L = design lift (× 0.15), P = camber position (× 0.05),
//	                      Q = reflex flag, TT = thickness. "23012" → cld=0.3, p=0.15.
//	Six-digit "6PRLTT":   series 6, P = min-pressure position (tenths),
//	                      R = low-drag range, L = design lift (tenths), TT = thickness.
//
// Digit strings must contain exactly the series' digit count and only decimal
// digits. Anything else is rejected with [ErrInvalidDesignation].
//
// # Geometry
//
// All series share the NACA thickness envelope
//
//	yt = 5t(0.2969√x − 0.1260x − 0.3516x² + 0.2843x³ − 0.1015x⁴)
//
// applied perpendicular to a mean camber line yc(x). The four-digit camber
// line is a pair of parabolas joined at p. The five-digit line is a cubic
// ahead of the split point r and a straight line behind it, with r and k1
// taken from the standard NACA table and scaled by the design lift.
// Reflexed five-digit lines are not modeled and fail with
// [ErrUnsupportedSeries].
//
// Six-digit sections are generated with the shared envelope about a flat
// camber line. The result is flagged [Profile.Approximate] so callers never
// mistake it for a true 6-series shape; [Generator] can be configured to
// reject cambered 6-series designations instead.
//
// # Output
//
// A [Profile] lists 2n−1 points: the upper surface from trailing edge to
// leading edge, then the lower surface back to the trailing edge, sharing the
// leading-edge sample. Chord scaling is the last step, so doubling the chord
// doubles every coordinate exactly.
package domain
