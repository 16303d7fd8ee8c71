package money

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the family of errors returned when numeric text cannot be
	// turned into an [Amount]. Use errors.Is(err, ErrParse) to match any of
	// [ErrEmpty], [ErrSignOnly] and [ErrMalformed].
	ErrParse = errors.New("parse error")

	// ErrEmpty is returned for empty input.
	ErrEmpty = fmt.Errorf("%w: empty input", ErrParse)

	// ErrSignOnly is returned for input consisting of a lone '-'.
	ErrSignOnly = fmt.Errorf("%w: sign without digits", ErrParse)

	// ErrMalformed is returned for syntactically invalid or out of range input.
	ErrMalformed = fmt.Errorf("%w: malformed number", ErrParse)

	// ErrInvalidArgument indicates a programming error, such as asking for
	// the exchange rate of the native currency.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvariantViolation indicates a bug in the formatting pipeline.
	ErrInvariantViolation = errors.New("invariant violation")
)

// invalidArgument panics with an error wrapping [ErrInvalidArgument], so that
// a recovering caller can still match it with errors.Is.
func invalidArgument(format string, a ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, a...)))
}
