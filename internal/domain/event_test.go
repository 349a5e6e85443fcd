package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRequestID = "req-123"

func TestParseProfileRequest(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		raw := RawEvent{Value: []byte(`{"id":"req-123","series":"naca4","digits":" 2412 ","chord":1.5,"points":60,"closed_trailing_edge":true}`)}
		id, req, err := ParseProfileRequest(raw)

		require.NoError(t, err)
		assert.Equal(t, testRequestID, id)
		assert.Equal(t, Request{Series: FourDigit, Digits: "2412", Chord: 1.5, Points: 60, ClosedTrailingEdge: true}, req)
	})

	t.Run("id falls back to message key", func(t *testing.T) {
		raw := RawEvent{Key: []byte("key-7"), Value: []byte(`{"series":"5","digits":"23012","chord":1}`)}
		id, req, err := ParseProfileRequest(raw)

		require.NoError(t, err)
		assert.Equal(t, "key-7", id)
		assert.Equal(t, FiveDigit, req.Series)
		assert.Zero(t, req.Points)
	})

	t.Run("id derived from request", func(t *testing.T) {
		raw := RawEvent{Value: []byte(`{"series":"4","digits":"0012","chord":2}`)}
		id1, _, err := ParseProfileRequest(raw)
		require.NoError(t, err)
		id2, _, err := ParseProfileRequest(raw)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(id1, "naca0012-"))
		assert.Equal(t, id1, id2)

		other, _, err := ParseProfileRequest(RawEvent{Value: []byte(`{"series":"4","digits":"0012","chord":3}`)})
		require.NoError(t, err)
		assert.NotEqual(t, id1, other)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, _, err := ParseProfileRequest(RawEvent{Value: []byte(`{not json`)})
		require.ErrorIs(t, err, ErrInvalidRequest)
		assert.Contains(t, err.Error(), "parse profile request")
		assert.Equal(t, "invalid_request", ErrorKind(err))
	})

	t.Run("unknown series", func(t *testing.T) {
		_, _, err := ParseProfileRequest(RawEvent{Value: []byte(`{"series":"8","digits":"2412","chord":1}`)})
		require.ErrorIs(t, err, ErrInvalidDesignation)
	})
}

func TestNewProfileEvent_UsesClock(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	t.Cleanup(func() { SetClock(nil) })

	p := mustGenerate(t, FourDigit, "2412", 1.0, 5)
	ev := NewProfileEvent(testRequestID, p)

	assert.Equal(t, testRequestID, ev.ID)
	assert.Equal(t, fixed, ev.ProcessedAt)

	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, testRequestID, decoded["id"])
	assert.Equal(t, "NACA 2412", decoded["label"])
	assert.Equal(t, "2026-03-14T09:26:53Z", decoded["processed_at"])
	assert.Len(t, decoded["points"], 9)

	des, ok := decoded["designation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "4", des["series"])
	assert.Equal(t, "2412", des["digits"])
}
