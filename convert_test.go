package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rateMap is a fixed oracle that records how often it was consulted.
type rateMap struct {
	rates map[Currency]float64
	calls int
}

func (m *rateMap) Rate(c Currency) (float64, bool) {
	m.calls++
	r, ok := m.rates[c]
	return r, ok
}

func TestDisplayAmount_EndToEnd(t *testing.T) {
	cache := NewRateCache()
	one := NewAmount(1_000_000_000_000, false)
	half := NewAmount(500_000_000_000, false)

	_, ok := DisplayAmount(one, USD, cache)
	assert.False(t, ok, "unknown rate")

	cache.Set(USD, 350.25)

	got, ok := DisplayAmount(one, USD, cache)
	require.True(t, ok)
	assert.Equal(t, 350.25, got)

	got, ok = DisplayAmount(half, USD, cache)
	require.True(t, ok)
	assert.Equal(t, 175.13, got, "175.125 rounds half away from zero")
}

func TestDisplayAmount(t *testing.T) {
	rates := &rateMap{rates: map[Currency]float64{USD: 350.25, JPY: 50123.456, EUR: 1e-9, GBP: 0}}
	tests := []struct {
		amount string
		curr   Currency
		want   float64
	}{
		{"0", USD, 0},
		{"-500000000000", USD, -175.13},
		{"1", USD, 0},
		{"10000000000", USD, 3.5},
		{"1000000000000", JPY, 50123.46},
		{"2000000000000", EUR, 0},
		{"18446744073709551615", USD, 6460972111.82},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.amount)
		got, ok := DisplayAmount(a, tt.curr, rates)
		require.True(t, ok, "DisplayAmount(%d, %v)", a, tt.curr)
		assert.InDelta(t, tt.want, got, 0.005, "DisplayAmount(%d, %v)", a, tt.curr)
		assert.Equal(t, got, math.Round(got*100)/100, "DisplayAmount(%d, %v) has more than 2 places", a, tt.curr)
	}

	_, ok := DisplayAmount(MustParseAmount("1"), GBP, rates)
	assert.False(t, ok, "a zero rate is unusable")
	_, ok = DisplayAmount(MustParseAmount("1"), CAD, rates)
	assert.False(t, ok)
}

func TestDisplayAmount_Native(t *testing.T) {
	rates := &rateMap{}
	tests := []struct {
		amount string
		want   float64
	}{
		{"0", 0},
		{"1", 1e-12},
		{"-1500000000000", -1.5},
		{"123456789012345", 123.456789012345},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.amount)
		got, ok := DisplayAmount(a, XWP, rates)
		require.True(t, ok)
		assert.Equal(t, tt.want, got)
	}
	assert.Zero(t, rates.calls, "native amounts never consult the rates")
}

func TestDisplayAmount_None(t *testing.T) {
	assertInvalidArgument(t, func() { DisplayAmount(Amount{}, None, NewRateCache()) })
}

func TestImpliedNativeAmount(t *testing.T) {
	rates := &rateMap{rates: map[Currency]float64{USD: 350.25, KRW: 450000, EUR: 3}}
	tests := []struct {
		fiat float64
		curr Currency
		want float64
	}{
		{350.25, USD, 1},
		{100, USD, 0.2855},
		{-100, USD, -0.2855},
		{0, USD, 0},
		{1000, KRW, 0.0022},
		{10, KRW, 0},
		{1, EUR, 0.3333},
		{2, EUR, 0.6667},
	}
	for _, tt := range tests {
		got, ok := ImpliedNativeAmount(tt.fiat, tt.curr, rates)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "ImpliedNativeAmount(%v, %v)", tt.fiat, tt.curr)
	}

	_, ok := ImpliedNativeAmount(1, CAD, rates)
	assert.False(t, ok)
}

func TestImpliedNativeAmount_NonFiat(t *testing.T) {
	cache := NewRateCache()
	assertInvalidArgument(t, func() { ImpliedNativeAmount(1, None, cache) })
	assertInvalidArgument(t, func() { ImpliedNativeAmount(1, XWP, cache) })
}

func TestFormatAmountIn(t *testing.T) {
	cache := NewRateCache()
	a := MustParseAmount("500000000000")

	s, shown, err := FormatAmountIn(a, USD, cache)
	require.NoError(t, err)
	assert.Equal(t, "0.5", s)
	assert.Equal(t, XWP, shown, "falls back to the native amount until the rate is known")

	cache.Set(USD, 350.25)
	s, shown, err = FormatAmountIn(a, USD, cache)
	require.NoError(t, err)
	assert.Equal(t, "175.13", s)
	assert.Equal(t, USD, shown)

	s, shown, err = FormatAmountIn(a, XWP, cache)
	require.NoError(t, err)
	assert.Equal(t, "0.5", s)
	assert.Equal(t, XWP, shown)

	s, _, err = FormatAmountIn(Amount{}, USD, cache)
	require.NoError(t, err)
	assert.Equal(t, "0", s)
}

func TestRoundHalfAway(t *testing.T) {
	tests := []struct {
		f     float64
		scale int
		want  float64
	}{
		{175.125, 2, 175.13},
		{-175.125, 2, -175.13},
		{0.125, 2, 0.13},
		{0.135, 2, 0.14},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{0.00005, 4, 0.0001},
		{1.23449, 4, 1.2345},
		{math.Inf(1), 2, math.Inf(1)},
	}
	for _, tt := range tests {
		got := roundHalfAway(tt.f, tt.scale)
		assert.Equal(t, tt.want, got, "roundHalfAway(%v, %v)", tt.f, tt.scale)
	}
}
