package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/naca-airfoil-service/internal/domain"
)

// AirfoilTransformer implements Transformer by generating the profile a
// request describes and serializing it for the sink topic.
type AirfoilTransformer struct {
	generator domain.ProfileGenerator
	logger    *slog.Logger
}

// NewTransformer creates an AirfoilTransformer around a generator.
func NewTransformer(generator domain.ProfileGenerator, logger *slog.Logger) *AirfoilTransformer {
	return &AirfoilTransformer{
		generator: generator,
		logger:    logger,
	}
}

func (t *AirfoilTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	id, req, err := domain.ParseProfileRequest(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	profile, err := t.generator.Generate(req)
	if err != nil {
		return domain.OutputEvent{}, fmt.Errorf("request %s: %w", id, err)
	}

	event := domain.NewProfileEvent(id, profile)
	data, err := json.Marshal(event)
	if err != nil {
		return domain.OutputEvent{}, fmt.Errorf("serialize profile %s: %w", id, err)
	}

	headers := map[string]string{
		"designation":  profile.Label,
		"processed_at": event.ProcessedAt.Format(time.RFC3339),
	}
	if profile.Approximate {
		headers["approximate"] = "true"
	}
	return domain.OutputEvent{Key: []byte(id), Value: data, Headers: headers}, nil
}
