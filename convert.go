package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// impliedScale is the number of decimal places kept when a fiat amount is
// converted back to the native currency, whatever the fiat currency.
const impliedScale = 4

// DisplayAmount converts a to currency c for display.
//
// For [XWP] it returns a.Float64() without consulting rates.
// For a fiat currency it returns a.Float64() * rate rounded half away from
// zero to [Currency.Scale] digits, or false if the rate is not known yet;
// callers should try again after the rates change.
//
// DisplayAmount panics if c is [None].
func DisplayAmount(a Amount, c Currency, rates RateOracle) (float64, bool) {
	if c == None {
		invalidArgument("DisplayAmount: no target currency")
	}
	f := a.Float64()
	if c.IsNative() {
		return f, true
	}
	rate, ok := usableRate(rates, c)
	if !ok {
		return 0, false
	}
	return roundHalfAway(f*rate, c.Scale()), true
}

// ImpliedNativeAmount converts an amount entered in fiat currency c to
// whole units of the native currency, rounded half away from zero to
// 4 decimal places. The rounding is applied here so that the amount sent
// matches the amount shown. It returns false if the rate is not known yet.
//
// ImpliedNativeAmount panics if c is [None] or [XWP].
func ImpliedNativeAmount(fiat float64, c Currency, rates RateOracle) (float64, bool) {
	if !c.IsFiat() {
		invalidArgument("ImpliedNativeAmount: currency %q has no exchange rate", c)
	}
	rate, ok := usableRate(rates, c)
	if !ok {
		return 0, false
	}
	return roundHalfAway(fiat/rate, impliedScale), true
}

// FormatAmountIn renders a in currency c and reports the currency actually
// shown. When the rate for c is not known yet the amount is rendered in
// [XWP] instead, so the caller always has something to display.
//
// FormatAmountIn panics if c is [None].
func FormatAmountIn(a Amount, c Currency, rates RateOracle) (string, Currency, error) {
	if c.IsNative() {
		return a.DecimalString(), XWP, nil
	}
	f, ok := DisplayAmount(a, c, rates)
	if !ok {
		return a.DecimalString(), XWP, nil
	}
	s, err := FormatFiat(f, c)
	if err != nil {
		return "", None, err
	}
	return s, c, nil
}

// usableRate treats rates that cannot be divided by as unknown.
func usableRate(rates RateOracle, c Currency) (float64, bool) {
	rate, ok := rates.Rate(c)
	if !ok || !validRate(rate) {
		return 0, false
	}
	return rate, true
}

// roundHalfAway rounds the shortest decimal representation of f.
func roundHalfAway(f float64, scale int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	return decimal.NewFromFloat(f).Round(int32(scale)).InexactFloat64()
}
