package money

import (
	"context"
	"fmt"
	"time"

	"github.com/eapache/go-resiliency/retrier"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	defaultRefreshInterval = time.Minute
	defaultRefreshGap      = 5 * time.Second
)

// RateSource fetches the current rates from the native currency to fiat
// currencies, for example from an exchange API.
type RateSource interface {
	FetchRates(ctx context.Context) (map[Currency]float64, error)
}

// RateSourceFunc adapts a function to [RateSource].
type RateSourceFunc func(ctx context.Context) (map[Currency]float64, error)

// FetchRates calls f(ctx).
func (f RateSourceFunc) FetchRates(ctx context.Context) (map[Currency]float64, error) {
	return f(ctx)
}

// Refresher keeps a [RateCache] up to date from a [RateSource].
// Every refresh cycle ends in at most one [RateCache.SetBatch] call, so
// subscribers of the cache see one notification per cycle.
type Refresher struct {
	cache    *RateCache
	source   RateSource
	interval time.Duration    // time between cycles of Run
	retry    *retrier.Retrier // backoff between failed fetches of one cycle
	limiter  *rate.Limiter    // minimum gap between cycles
	log      zerolog.Logger
}

// RefresherOption configures a [Refresher].
type RefresherOption func(*Refresher)

// WithInterval sets the time between refresh cycles of [Refresher.Run].
// The default is one minute.
func WithInterval(d time.Duration) RefresherOption {
	return func(f *Refresher) {
		f.interval = d
	}
}

// WithRetry sets the waits between failed fetch attempts of one cycle.
// An empty slice disables retries.
func WithRetry(backoff []time.Duration) RefresherOption {
	return func(f *Refresher) {
		f.retry = retrier.New(backoff, nil)
	}
}

// WithRefreshLimit limits how often cycles may start, which protects the
// source from callers of [Refresher.Refresh].
// The default allows one cycle every 5 seconds.
func WithRefreshLimit(limit rate.Limit, burst int) RefresherOption {
	return func(f *Refresher) {
		f.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithRefresherLogger sets the logger used to report failed cycles.
func WithRefresherLogger(l zerolog.Logger) RefresherOption {
	return func(f *Refresher) {
		f.log = l
	}
}

// NewRefresher returns a refresher that feeds cache from source.
func NewRefresher(cache *RateCache, source RateSource, opts ...RefresherOption) *Refresher {
	f := &Refresher{
		cache:    cache,
		source:   source,
		interval: defaultRefreshInterval,
		retry:    retrier.New(retrier.ExponentialBackoff(3, time.Second), nil),
		limiter:  rate.NewLimiter(rate.Every(defaultRefreshGap), 1),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Refresh runs one cycle: it waits for the limiter, fetches the rates,
// retrying failed attempts, and applies them to the cache.
// Entries the cache cannot hold are dropped and logged.
// Refresh returns the error of the last attempt or the context error.
func (f *Refresher) Refresh(ctx context.Context) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for refresh slot: %w", err)
	}
	var rates map[Currency]float64
	attempt := 0
	err := f.retry.RunCtx(ctx, func(ctx context.Context) error {
		attempt++
		var err error
		rates, err = f.source.FetchRates(ctx)
		if err != nil {
			f.log.Warn().Err(err).Int("attempt", attempt).Msg("unable to fetch rates")
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("fetching rates: %w", err)
	}
	f.cache.SetBatch(f.usable(rates))
	return nil
}

func (f *Refresher) usable(rates map[Currency]float64) map[Currency]float64 {
	valid := make(map[Currency]float64, len(rates))
	for c, r := range rates {
		if !c.IsFiat() || !validRate(r) {
			f.log.Warn().Stringer("currency", c).Float64("rate", r).Msg("dropping unusable rate")
			continue
		}
		valid[c] = r
	}
	return valid
}

// Run refreshes the cache immediately and then once per interval until ctx
// is done. Failed cycles are logged and retried on the next tick.
// Run always returns ctx.Err().
func (f *Refresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		if err := f.Refresh(ctx); err != nil && ctx.Err() == nil {
			f.log.Error().Err(err).Dur("retry_in", f.interval).Msg("unable to refresh rates")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
