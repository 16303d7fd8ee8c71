package money

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

var errSourceDown = errors.New("source down")

// flakySource fails the first failures calls and then returns rates.
type flakySource struct {
	failures int
	calls    int
	rates    map[Currency]float64
}

func (s *flakySource) FetchRates(ctx context.Context) (map[Currency]float64, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, errSourceDown
	}
	return s.rates, nil
}

func newTestRefresher(cache *RateCache, src RateSource, opts ...RefresherOption) *Refresher {
	opts = append([]RefresherOption{
		WithRetry([]time.Duration{time.Millisecond, time.Millisecond}),
		WithRefreshLimit(rate.Inf, 1),
	}, opts...)
	return NewRefresher(cache, src, opts...)
}

func TestRefresher_Refresh(t *testing.T) {
	cache := NewRateCache()
	notified := 0
	cache.Subscribe(func() { notified++ })
	src := &flakySource{rates: map[Currency]float64{USD: 350.25, EUR: 320, JPY: 51000}}
	f := newTestRefresher(cache, src)

	require.NoError(t, f.Refresh(context.Background()))
	assert.Equal(t, 1, notified, "one notification per cycle")
	assert.Equal(t, src.rates, cache.Rates())

	require.NoError(t, f.Refresh(context.Background()))
	assert.Equal(t, 1, notified, "unchanged rates do not notify")
	assert.Equal(t, 2, src.calls)
}

func TestRefresher_Retry(t *testing.T) {
	cache := NewRateCache()
	src := &flakySource{failures: 2, rates: map[Currency]float64{USD: 1}}
	f := newTestRefresher(cache, src)

	require.NoError(t, f.Refresh(context.Background()))
	assert.Equal(t, 3, src.calls)
	assert.True(t, cache.IsReady(USD))
}

func TestRefresher_GiveUp(t *testing.T) {
	var buf bytes.Buffer
	cache := NewRateCache()
	src := &flakySource{failures: 10}
	f := newTestRefresher(cache, src, WithRefresherLogger(zerolog.New(&buf)))

	err := f.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errSourceDown)
	assert.Equal(t, 3, src.calls)
	assert.Zero(t, cache.Len())
	assert.Contains(t, buf.String(), `"attempt":3`)
}

func TestRefresher_DropsUnusableRates(t *testing.T) {
	cache := NewRateCache()
	src := &flakySource{rates: map[Currency]float64{USD: 2, EUR: -1, XWP: 1, None: 3}}
	f := newTestRefresher(cache, src)

	require.NoError(t, f.Refresh(context.Background()))
	assert.Equal(t, map[Currency]float64{USD: 2}, cache.Rates())
}

func TestRefresher_Limit(t *testing.T) {
	cache := NewRateCache()
	src := &flakySource{rates: map[Currency]float64{USD: 1}}
	f := newTestRefresher(cache, src, WithRefreshLimit(rate.Every(time.Hour), 1))

	require.NoError(t, f.Refresh(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := f.Refresh(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, src.calls)
}

func TestRefresher_Run(t *testing.T) {
	cache := NewRateCache()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cache.Subscribe(cancel)
	src := RateSourceFunc(func(context.Context) (map[Currency]float64, error) {
		return map[Currency]float64{GBP: 280}, nil
	})
	f := newTestRefresher(cache, src, WithInterval(time.Hour))

	err := f.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, cache.IsReady(GBP))
}

func TestRefresher_RunKeepsGoing(t *testing.T) {
	cache := NewRateCache()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cache.Subscribe(cancel)
	src := &flakySource{failures: 4, rates: map[Currency]float64{CAD: 250}}
	f := newTestRefresher(cache, src, WithInterval(time.Millisecond), WithRetry(nil))

	err := f.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled, "a failed cycle must not stop the loop")
	assert.Equal(t, 5, src.calls)
	assert.True(t, cache.IsReady(CAD))
}
