package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// ProfileRequest is the JSON payload of a generation request on the source
// topic, e.g. {"series":"4","digits":"2412","chord":1.5}.
type ProfileRequest struct {
	ID                 string  `json:"id,omitempty"`
	Series             string  `json:"series"`
	Digits             string  `json:"digits"`
	Chord              float64 `json:"chord"`
	Points             int     `json:"points,omitempty"`
	ClosedTrailingEdge bool    `json:"closed_trailing_edge,omitempty"`
}

// ParseProfileRequest decodes a raw event into a generation request and its
// ID. The ID comes from the payload, then the message key, and otherwise is
// derived from the request fields.
func ParseProfileRequest(raw RawEvent) (string, Request, error) {
	var pr ProfileRequest
	if err := json.Unmarshal(raw.Value, &pr); err != nil {
		return "", Request{}, fmt.Errorf("%w: parse profile request: %w", ErrInvalidRequest, err)
	}
	series, err := ParseSeries(pr.Series)
	if err != nil {
		return "", Request{}, err
	}
	req := Request{
		Series:             series,
		Digits:             strings.TrimSpace(pr.Digits),
		Chord:              pr.Chord,
		Points:             pr.Points,
		ClosedTrailingEdge: pr.ClosedTrailingEdge,
	}

	id := pr.ID
	if id == "" {
		id = string(raw.Key)
	}
	if id == "" {
		id = generateID(req)
	}
	return id, req, nil
}

// generateID produces a deterministic ID from the request fields so replayed
// requests map to the same profile.
func generateID(req Request) string {
	input := fmt.Sprintf("%d|%s|%g|%d|%t", req.Series.Digits(), req.Digits, req.Chord, req.Points, req.ClosedTrailingEdge)
	hash := sha256.Sum256([]byte(input))
	return "naca" + req.Digits + "-" + hex.EncodeToString(hash[:8])
}

// ProfileEvent is a generated profile as published to the sink topic.
type ProfileEvent struct {
	ID string `json:"id"`
	Profile
	ProcessedAt time.Time `json:"processed_at"`
}

// NewProfileEvent stamps a profile with its request ID and processing time.
func NewProfileEvent(id string, p Profile) ProfileEvent {
	return ProfileEvent{ID: id, Profile: p, ProcessedAt: clock.Now().UTC()}
}
