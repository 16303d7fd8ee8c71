package money

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
)

// Amount type represents a quantity of the native currency [XWP] in atomic
// units of 10^-12.
// Its zero value corresponds to 0.
//
// The sign is kept apart from the magnitude, so the whole uint64 range is
// available on both sides of zero and there is no wraparound.
// Zero is always non-negative.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	mag uint64 // number of atomic units
	neg bool   // true if the amount is below zero
}

// NewAmount returns an amount equal to (-1)^neg * magnitude atomic units.
// A zero magnitude always produces a non-negative amount.
func NewAmount(magnitude uint64, neg bool) Amount {
	return Amount{mag: magnitude, neg: neg && magnitude != 0}
}

// ParseAmount converts a string of atomic units to an amount.
// The input must be a decimal integer optionally preceded by a single '-':
//
//	1000000000000
//	-1
//
// ParseAmount does not accept a decimal point; use [ParseDecimal] for
// amounts written in whole units.
//
// ParseAmount returns an error wrapping [ErrEmpty], [ErrSignOnly] or
// [ErrMalformed] if the string is empty, a lone sign, contains anything
// other than digits after the sign, or does not fit into 64 bits.
func ParseAmount(s string) (Amount, error) {
	body, neg, err := splitSign(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	if !isDigits(body) {
		return Amount{}, fmt.Errorf("parsing %q: %w", s, ErrMalformed)
	}
	mag, err := strconv.ParseUint(body, 10, 64)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w: out of range", s, ErrMalformed)
	}
	return NewAmount(mag, neg), nil
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", s, err))
	}
	return a
}

// NewAmountFromFloat64 converts a float to an amount.
// The float is written with the fewest digits that identify it exactly
// and then parsed with [ParseDecimal].
// See also method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the float needs more than 12 digits after the decimal point;
//   - the magnitude does not fit into 64 bits of atomic units.
func NewAmountFromFloat64(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}, fmt.Errorf("converting float: %w: special value %v", ErrMalformed, f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	a, err := ParseDecimal(s)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

// splitSign strips a single leading '-'.
func splitSign(s string) (body string, neg bool, err error) {
	switch {
	case s == "":
		return "", false, ErrEmpty
	case s == "-":
		return "", false, ErrSignOnly
	case s[0] == '-':
		return s[1:], true, nil
	}
	return s, false, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Magnitude returns the absolute value of the amount in atomic units.
func (a Amount) Magnitude() uint64 {
	return a.mag
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.neg
}

// IsZero returns:
//
//	true  if a == 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.mag == 0
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a == 0
//	+1 if a > 0
func (a Amount) Sign() int {
	switch {
	case a.mag == 0:
		return 0
	case a.neg:
		return -1
	}
	return 1
}

// Equal returns true if both amounts have the same magnitude and sign.
func (a Amount) Equal(b Amount) bool {
	return a.mag == b.mag && a.neg == b.neg
}

// Float64 returns the nearest binary floating-point number to the amount
// expressed in whole units of the native currency.
//
// This conversion may lose data and is meant for fiat arithmetic only.
// Never use it to serialize an amount; see [Amount.DecimalString] and
// [Amount.AtomicString] instead.
func (a Amount) Float64() float64 {
	f := atomicDecimal(a.mag).InexactFloat64()
	if a.neg {
		return -f
	}
	return f
}

// AtomicString returns the amount as a signed integer count of atomic units.
// See also constructor [ParseAmount].
func (a Amount) AtomicString() string {
	s := strconv.FormatUint(a.mag, 10)
	if a.neg {
		return "-" + s
	}
	return s
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the amount in whole units.
// See also methods [Amount.DecimalString] and [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.DecimalString()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted and bare numbers are accepted.
// See also constructor [ParseDecimal].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*a, err = ParseDecimal(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is written as a quoted decimal string, so that no JSON
// decoder turns it into a float.
// See also method [Amount.DecimalString].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, a.DecimalString()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseDecimal].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseDecimal(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Amount.DecimalString].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.DecimalString()), nil
}

// Scan implements the [sql.Scanner] interface.
// Text values are read as atomic units, see [ParseAmount].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*a, err = ParseAmount(value)
	case []byte:
		*a, err = ParseAmount(string(value))
	case int64:
		if value < 0 {
			*a = NewAmount(uint64(-(value+1))+1, true)
		} else {
			*a = NewAmount(uint64(value), false)
		}
	case nil:
		err = fmt.Errorf("%T does not support null values", Amount{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Amount{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The amount is stored as atomic units, which is exact for any column
// type wide enough to hold it.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.AtomicString(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example          | Description       |
//	| ------ | ---------------- | ----------------- |
//	| %s, %v | 1.5              | Whole units       |
//	| %q     | "1.5"            | Quoted            |
//	| %d     | 1500000000000    | Atomic units      |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'd':
		text = a.AtomicString()
	case 'q', 'Q':
		text = strconv.Quote(a.DecimalString())
	default:
		text = a.DecimalString()
	}
	writePadded(state, verb, "money.Amount", text, "sSvVqQd")
}
