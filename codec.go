package money

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// atomicScale is the number of decimal places in one unit of the native currency.
const atomicScale = 12

// AtomicCodec converts between decimal strings written in whole units of the
// native currency and unsigned counts of atomic units.
// Implementations are the authority on the native decimal syntax;
// [ParseDecimalWith] and [Amount.DecimalStringWith] only deal with the sign.
type AtomicCodec interface {
	// ParseFractional converts an unsigned decimal string with at most
	// 12 significant fractional digits to atomic units.
	// It returns an error wrapping [ErrMalformed] for invalid or
	// out of range input.
	ParseFractional(s string) (uint64, error)

	// PrintFixedPoint renders atomic units as an unsigned decimal
	// string with exactly 12 fractional digits.
	PrintFixedPoint(units uint64) string
}

// DecimalCodec returns the default [AtomicCodec].
// It works in arbitrary precision, so every uint64 count of atomic units
// can be parsed and printed exactly.
func DecimalCodec() AtomicCodec {
	return decimalCodec{}
}

type decimalCodec struct{}

// ParseFractional accepts the forms "1", "1.5", "1." and ".5".
// Zeros past the 12th fractional digit are ignored.
func (decimalCodec) ParseFractional(s string) (uint64, error) {
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: no digits", ErrMalformed)
	}
	if (whole != "" && !isDigits(whole)) || (frac != "" && !isDigits(frac)) {
		return 0, fmt.Errorf("%w: unexpected character", ErrMalformed)
	}
	frac = strings.TrimRight(frac, "0")
	if len(frac) > atomicScale {
		return 0, fmt.Errorf("%w: more than %v fractional digits", ErrMalformed, atomicScale)
	}
	if whole == "" {
		whole = "0"
	}
	if frac == "" {
		frac = "0"
	}
	d, err := decimal.NewFromString(whole + "." + frac)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	units := d.Shift(atomicScale).BigInt()
	if !units.IsUint64() {
		return 0, fmt.Errorf("%w: out of range", ErrMalformed)
	}
	return units.Uint64(), nil
}

func (decimalCodec) PrintFixedPoint(units uint64) string {
	return atomicDecimal(units).StringFixed(atomicScale)
}

// atomicDecimal returns units * 10^-12 without loss.
func atomicDecimal(units uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -atomicScale)
}
