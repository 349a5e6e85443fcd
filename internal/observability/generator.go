package observability

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/naca-airfoil-service/internal/domain"
)

// InstrumentedGenerator records generation counts, failures, and latency
// around another ProfileGenerator.
type InstrumentedGenerator struct {
	inner   domain.ProfileGenerator
	metrics *Metrics
	logger  *slog.Logger
}

// NewInstrumentedGenerator wraps inner with metrics and debug logging.
func NewInstrumentedGenerator(inner domain.ProfileGenerator, metrics *Metrics, logger *slog.Logger) *InstrumentedGenerator {
	return &InstrumentedGenerator{inner: inner, metrics: metrics, logger: logger}
}

func (g *InstrumentedGenerator) Generate(req domain.Request) (domain.Profile, error) {
	start := time.Now()
	p, err := g.inner.Generate(req)
	g.metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		kind := domain.ErrorKind(err)
		g.metrics.GenerationErrors.WithLabelValues(kind).Inc()
		g.logger.Debug("generation rejected", "kind", kind, "error", err,
			"series", req.Series.String(), "digits", req.Digits, "chord", req.Chord)
		return p, err
	}

	g.metrics.ProfilesGenerated.WithLabelValues(strconv.Itoa(req.Series.Digits()), strconv.FormatBool(p.Approximate)).Inc()
	if p.Approximate {
		g.logger.Info("approximate profile generated", "designation", p.Label, "notice", p.Notice)
	}
	return p, nil
}
