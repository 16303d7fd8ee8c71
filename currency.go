package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents one of the currencies a wallet can display.
// The set is closed: the native currency [XWP] and a fixed list of fiat
// currencies identified by their ISO 4217 codes.
// The zero value is [None], which indicates that no currency is selected.
//
// Currency is implemented as an integer index into in-memory tables that
// store the code and the display scale of each currency.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Currency value.
//
// When persisting a currency value, use the code returned by the
// [Currency.Code] method, rather than the integer index.
type Currency uint8

var errInvalidCurrency = errors.New("invalid currency")

// ParseCurr converts a symbol to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//
// The empty string is parsed as [None].
// ParseCurr returns an error if the string does not represent a known currency.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return None, fmt.Errorf("%w %q", errInvalidCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// FiatCurrencies returns every fiat currency in enum order.
func FiatCurrencies() []Currency {
	currs := make([]Currency, 0, len(codeLookup)-2)
	for c := range codeLookup {
		if Currency(c).IsFiat() {
			currs = append(currs, Currency(c))
		}
	}
	return currs
}

// Code returns the symbol of the currency: a 3-letter ISO 4217 code
// for fiat currencies, "XWP" for the native currency and the empty
// string for [None].
func (c Currency) Code() string {
	if int(c) >= len(codeLookup) {
		return ""
	}
	return codeLookup[c]
}

// Scale returns the number of digits after the decimal point used when
// displaying amounts of the currency.
// The native currency is displayed with 12 digits, every other currency
// with 2.
func (c Currency) Scale() int {
	if int(c) >= len(scaleLookup) {
		return 2
	}
	return int(scaleLookup[c])
}

// IsNative returns true for the native currency [XWP].
func (c Currency) IsNative() bool {
	return c == XWP
}

// IsFiat returns true if exchange rates can be held for the currency,
// that is, for every defined currency except [None] and [XWP].
func (c Currency) IsFiat() bool {
	return c != None && c != XWP && int(c) < len(codeLookup)
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Currency value.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", None, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", None, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [Currency.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
// A null value is scanned as [None].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		*c = None
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, None, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// [None] is stored as null.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	if c == None {
		return nil, nil
	}
	return c.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	text := c.Code()
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}
	writePadded(state, verb, "money.Currency", text, "cCsSvVqQ")
}
