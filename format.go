package money

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// decimalPoint is used regardless of the host locale.
// A comma or grouping separator in a money amount can be misread by a
// factor of 100 or 1000.
const decimalPoint = "."

// ParseDecimal converts a decimal string written in whole units of the
// native currency to an amount, using [DecimalCodec]:
//
//	1
//	-0.5
//	0.000000000001
//
// ParseDecimal returns an error wrapping [ErrEmpty], [ErrSignOnly] or
// [ErrMalformed] if the string is empty, a lone sign, syntactically invalid,
// has more than 12 significant fractional digits or does not fit into
// 64 bits of atomic units.
func ParseDecimal(s string) (Amount, error) {
	return ParseDecimalWith(s, decimalCodec{})
}

// ParseDecimalWith is like [ParseDecimal] but delegates the unsigned part
// of the string to the given codec.
func ParseDecimalWith(s string, codec AtomicCodec) (Amount, error) {
	body, neg, err := splitSign(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	units, err := codec.ParseFractional(body)
	if err != nil {
		if !errors.Is(err, ErrParse) {
			err = fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return Amount{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return NewAmount(units, neg), nil
}

// MustParseDecimal is like [ParseDecimal] but panics if the string cannot be parsed.
func MustParseDecimal(s string) Amount {
	a, err := ParseDecimal(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDecimal(%q) failed: %v", s, err))
	}
	return a
}

// DecimalString returns the exact amount in whole units of the native
// currency, without trailing zeros:
//
//	0
//	1
//	-0.000000000001
//
// See also constructor [ParseDecimal].
func (a Amount) DecimalString() string {
	return a.DecimalStringWith(decimalCodec{})
}

// DecimalStringWith is like [Amount.DecimalString] but renders the magnitude
// with the given codec.
func (a Amount) DecimalStringWith(codec AtomicCodec) string {
	s := codec.PrintFixedPoint(a.mag)
	if strings.Contains(s, decimalPoint) {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, decimalPoint)
	}
	if a.neg {
		return "-" + s
	}
	return s
}

// FormatFiat renders a fiat value with exactly [Currency.Scale] digits after
// the decimal point, no grouping and '.' as the decimal point:
//
//	FormatFiat(1234.5, USD)   // "1234.50"
//	FormatFiat(-3, EUR)       // "-3.00"
//	FormatFiat(0, USD)        // "0"
//
// Zero is rendered as "0".
//
// FormatFiat returns an error wrapping [ErrInvalidArgument] if c is the
// native currency or the value is NaN, Inf or too large, and an error
// wrapping [ErrInvariantViolation] if rendering produced more fractional
// digits than the currency allows.
func FormatFiat(value float64, c Currency) (string, error) {
	if c.IsNative() {
		return "", fmt.Errorf("formatting %v as fiat: %w", c, ErrInvalidArgument)
	}
	if value == 0 {
		return "0", nil
	}
	s, err := renderTwoPlaces(value)
	if err != nil {
		return "", fmt.Errorf("formatting %v: %w", c, err)
	}
	return padFraction(s, c.Scale())
}

// renderTwoPlaces writes f rounded to two decimal places, without trailing
// zeros and without grouping.
func renderTwoPlaces(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: special value %v", ErrInvalidArgument, f)
	}
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	d = d.Round(2).Trim(0)
	if d.IsZero() {
		return "0", nil
	}
	return d.String(), nil
}

// padFraction right-pads the fractional part of s with zeros up to scale
// digits.
func padFraction(s string, scale int) (string, error) {
	whole, frac, found := strings.Cut(s, decimalPoint)
	switch {
	case whole == "" && !found:
		return "", fmt.Errorf("%w: nothing to format", ErrInvariantViolation)
	case strings.Contains(frac, decimalPoint):
		return "", fmt.Errorf("%w: %q has more than one decimal point", ErrInvariantViolation, s)
	case len(frac) > scale:
		return "", fmt.Errorf("%w: %q has more than %v fractional digits", ErrInvariantViolation, s, scale)
	}
	return whole + decimalPoint + frac + strings.Repeat("0", scale-len(frac)), nil
}

// writePadded writes text honoring the width and '-' flag of the state.
// Verbs not listed in verbs are reported the way fmt reports bad verbs.
func writePadded(state fmt.State, verb rune, typ, text, verbs string) {
	if !strings.ContainsRune(verbs, verb) {
		fmt.Fprintf(state, "%%!%c(%s=%s)", verb, typ, text)
		return
	}
	if w, ok := state.Width(); ok && w > len(text) {
		pad := strings.Repeat(" ", w-len(text))
		if state.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}
	_, _ = io.WriteString(state, text)
}
