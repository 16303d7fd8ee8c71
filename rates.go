package money

import (
	"math"
	"sync"

	"github.com/rs/zerolog"
)

// RateOracle answers how many units of a fiat currency one unit of the
// native currency is worth.
// A false second result means the rate is not known yet.
type RateOracle interface {
	Rate(c Currency) (float64, bool)
}

// RateCache holds the latest known exchange rate from the native currency
// to each fiat currency and notifies subscribers when rates change.
//
// A rate is either unknown or known; once known it can be replaced but
// never removed, so [RateCache.IsReady] never goes back to false.
//
// RateCache is safe for concurrent use by multiple goroutines.
// Subscribers are called on the goroutine that changed the rates, after
// the cache lock has been released, so they may read the cache.
type RateCache struct {
	mu     sync.RWMutex         // guards rates
	rates  map[Currency]float64 // units of fiat per unit of XWP
	notify Notifier
	log    zerolog.Logger
}

// RateCacheOption configures a [RateCache].
type RateCacheOption func(*RateCache)

// WithLogger sets the logger used to report applied rate updates.
// By default the cache does not log.
func WithLogger(l zerolog.Logger) RateCacheOption {
	return func(r *RateCache) {
		r.log = l
	}
}

// NewRateCache returns an empty cache in which every rate is unknown.
func NewRateCache(opts ...RateCacheOption) *RateCache {
	r := &RateCache{
		rates: make(map[Currency]float64),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// mustFiat panics unless c can hold an exchange rate.
func mustFiat(op string, c Currency) {
	if !c.IsFiat() {
		invalidArgument("%v: currency %q has no exchange rate", op, c)
	}
}

// IsReady returns true if the rate for c is known.
//
// IsReady panics if c is [None] or [XWP].
func (r *RateCache) IsReady(c Currency) bool {
	mustFiat("IsReady", c)
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rates[c]
	return ok
}

// Rate returns the rate for c, or false if it is not known yet.
// Rate implements [RateOracle].
//
// Rate panics if c is [None] or [XWP].
func (r *RateCache) Rate(c Currency) (float64, bool) {
	mustFiat("Rate", c)
	r.mu.RLock()
	defer r.mu.RUnlock()
	rate, ok := r.rates[c]
	return rate, ok
}

// Rates returns a copy of every known rate.
func (r *RateCache) Rates() map[Currency]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rates := make(map[Currency]float64, len(r.rates))
	for c, rate := range r.rates {
		rates[c] = rate
	}
	return rates
}

// Len returns the number of currencies with a known rate.
func (r *RateCache) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rates)
}

// Set stores the rate for c and, if it differs from the previous one,
// notifies subscribers. An unknown rate differs from any rate.
// Set returns true if the stored rate changed.
//
// Set panics if c is [None] or [XWP], or if rate is not a positive
// finite number.
func (r *RateCache) Set(c Currency, rate float64) bool {
	changed := r.SetQuiet(c, rate)
	if changed {
		r.log.Debug().Stringer("currency", c).Float64("rate", rate).Msg("rate updated")
		r.notify.Notify()
	}
	return changed
}

// SetQuiet is like [RateCache.Set] but never notifies subscribers.
func (r *RateCache) SetQuiet(c Currency, rate float64) bool {
	mustValidRate("SetQuiet", c, rate)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store(c, rate)
}

// SetBatch stores every rate in rates and notifies subscribers once if at
// least one of them changed. Subscribers see the whole batch applied.
// SetBatch returns true if any rate changed.
//
// SetBatch panics, before storing anything, if any key is [None] or [XWP]
// or any rate is not a positive finite number.
func (r *RateCache) SetBatch(rates map[Currency]float64) bool {
	for c, rate := range rates {
		mustValidRate("SetBatch", c, rate)
	}
	changes := zerolog.Dict()
	changed := 0
	r.mu.Lock()
	for c, rate := range rates {
		if r.store(c, rate) {
			changes.Float64(c.Code(), rate)
			changed++
		}
	}
	r.mu.Unlock()
	if changed == 0 {
		r.log.Debug().Int("received", len(rates)).Msg("rates unchanged")
		return false
	}
	r.log.Debug().Int("received", len(rates)).Int("changed", changed).Dict("rates", changes).Msg("rates updated")
	r.notify.Notify()
	return true
}

// store must be called with r.mu held for writing.
func (r *RateCache) store(c Currency, rate float64) bool {
	prev, ok := r.rates[c]
	r.rates[c] = rate
	return !ok || prev != rate
}

func mustValidRate(op string, c Currency, rate float64) {
	mustFiat(op, c)
	if !validRate(rate) {
		invalidArgument("%v: rate %v for %v must be positive and finite", op, rate, c)
	}
}

func validRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 1)
}

// Subscribe registers fn to be called after every change of the rates.
// Callbacks run in subscription order.
func (r *RateCache) Subscribe(fn func()) Subscription {
	return r.notify.Subscribe(fn)
}

// Unsubscribe removes a callback registered with [RateCache.Subscribe].
// It returns false if s is not registered.
func (r *RateCache) Unsubscribe(s Subscription) bool {
	return r.notify.Unsubscribe(s)
}
