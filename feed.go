package money

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// DecodeRates reads a rate feed of the form
//
//	{"USD": 350.25, "EUR": 321.5, ...}
//
// located at the given [gjson path] of payload, or at the root when path is
// empty. The result can be passed to [RateCache.SetBatch].
//
// Keys that are not fiat currency codes are skipped, since feeds commonly
// carry currencies the wallet does not support.
// DecodeRates returns an error wrapping [ErrMalformed] if the payload is not
// valid JSON, the selection is not an object, or a fiat rate is not a
// positive finite number.
//
// [gjson path]: https://github.com/tidwall/gjson/blob/master/SYNTAX.md
func DecodeRates(payload []byte, path string) (map[Currency]float64, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("decoding rates: %w: invalid JSON", ErrMalformed)
	}
	obj := gjson.ParseBytes(payload)
	if path != "" {
		obj = obj.Get(path)
	}
	if !obj.IsObject() {
		return nil, fmt.Errorf("decoding rates: %w: %q does not select an object", ErrMalformed, path)
	}
	rates := make(map[Currency]float64)
	var err error
	obj.ForEach(func(key, value gjson.Result) bool {
		c, perr := ParseCurr(key.String())
		if perr != nil || !c.IsFiat() {
			return true
		}
		if value.Type != gjson.Number || !validRate(value.Float()) {
			err = fmt.Errorf("decoding rates: %w: rate %s for %v", ErrMalformed, value.Raw, c)
			return false
		}
		rates[c] = value.Float()
		return true
	})
	if err != nil {
		return nil, err
	}
	return rates, nil
}
