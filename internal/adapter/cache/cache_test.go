package cache

import (
	"errors"
	"sync"
	"testing"

	"github.com/couchcryptid/naca-airfoil-service/internal/domain"
	"github.com/couchcryptid/naca-airfoil-service/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock for cache tests ---

type countingGenerator struct {
	mu    sync.Mutex
	calls int
	err   error
	inner *domain.Generator
}

func newCountingGenerator() *countingGenerator {
	return &countingGenerator{inner: domain.NewGenerator()}
}

func (m *countingGenerator) Generate(req domain.Request) (domain.Profile, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.err != nil {
		return domain.Profile{}, m.err
	}
	return m.inner.Generate(req)
}

func request(digits string, chord float64) domain.Request {
	return domain.Request{Series: domain.FourDigit, Digits: digits, Chord: chord, Points: 20}
}

// --- CachedGenerator tests ---

func TestCachedGenerator_CacheHit(t *testing.T) {
	inner := newCountingGenerator()
	metrics := observability.NewMetricsForTesting()
	cached := NewCachedGenerator(inner, 10, metrics)

	p1, err := cached.Generate(request("2412", 1))
	require.NoError(t, err)
	p2, err := cached.Generate(request("2412", 1))
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, 1, inner.calls, "should only call inner once")
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.GeneratorCache.WithLabelValues("hit")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.GeneratorCache.WithLabelValues("miss")), 1e-9)
}

func TestCachedGenerator_ReturnsCopies(t *testing.T) {
	cached := NewCachedGenerator(newCountingGenerator(), 10, observability.NewMetricsForTesting())

	p1, err := cached.Generate(request("2412", 1))
	require.NoError(t, err)
	want := p1.Points[0]
	p1.Points[0] = domain.Point{X: 42, Y: 42}

	p2, err := cached.Generate(request("2412", 1))
	require.NoError(t, err)
	assert.Equal(t, want, p2.Points[0])

	p2.Camber[0] = domain.Point{X: 7}
	p3, err := cached.Generate(request("2412", 1))
	require.NoError(t, err)
	assert.NotEqual(t, domain.Point{X: 7}, p3.Camber[0])
}

func TestCachedGenerator_DifferentKeysMiss(t *testing.T) {
	inner := newCountingGenerator()
	cached := NewCachedGenerator(inner, 10, observability.NewMetricsForTesting())

	_, _ = cached.Generate(request("2412", 1))
	_, _ = cached.Generate(request("2412", 2))
	_, _ = cached.Generate(request("0012", 1))
	closed := request("0012", 1)
	closed.ClosedTrailingEdge = true
	_, _ = cached.Generate(closed)

	assert.Equal(t, 4, inner.calls)
}

func TestCachedGenerator_ErrorsNotCached(t *testing.T) {
	inner := newCountingGenerator()
	inner.err = errors.New("boom")
	cached := NewCachedGenerator(inner, 10, observability.NewMetricsForTesting())

	_, err := cached.Generate(request("2412", 1))
	require.Error(t, err)
	_, err = cached.Generate(request("2412", 1))
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
	assert.Zero(t, cached.cache.len())
}

func TestCachedGenerator_ZeroSizeDisablesCaching(t *testing.T) {
	inner := newCountingGenerator()
	cached := NewCachedGenerator(inner, 0, observability.NewMetricsForTesting())

	_, _ = cached.Generate(request("2412", 1))
	_, _ = cached.Generate(request("2412", 1))

	assert.Equal(t, 2, inner.calls)
}

func TestCachedGenerator_Concurrent(t *testing.T) {
	cached := NewCachedGenerator(newCountingGenerator(), 4, observability.NewMetricsForTesting())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := cached.Generate(request("2412", float64(i%6+1)))
			assert.NoError(t, err)
			assert.Len(t, p.Points, 39)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, cached.cache.len(), 4)
}

// --- LRU cache unit tests ---

func profile(label string) domain.Profile {
	return domain.Profile{Label: label}
}

func TestLRUCache_BasicGetPut(t *testing.T) {
	c := newLRUCache(3)

	c.put("a", profile("A"))
	c.put("b", profile("B"))

	result, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "A", result.Label)

	_, ok = c.get("missing")
	assert.False(t, ok)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", profile("A"))
	c.put("b", profile("B"))
	c.put("c", profile("C")) // evicts "a"

	_, ok := c.get("a")
	assert.False(t, ok, "a should have been evicted")

	result, ok := c.get("b")
	assert.True(t, ok)
	assert.Equal(t, "B", result.Label)

	result, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, "C", result.Label)
}

func TestLRUCache_AccessPromotesEntry(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", profile("A"))
	c.put("b", profile("B"))

	c.get("a")

	// "b" is now least recently used.
	c.put("c", profile("C"))

	_, ok := c.get("a")
	assert.True(t, ok, "a was accessed recently, should not be evicted")

	_, ok = c.get("b")
	assert.False(t, ok, "b should have been evicted")
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", profile("A1"))
	c.put("a", profile("A2"))

	result, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "A2", result.Label)
	assert.Equal(t, 1, c.len())
}
