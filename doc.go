/*
Package money implements the amounts and exchange rates of a wallet whose
native currency is XWP.

# Features

  - Exact, immutable native amounts, safe for use by multiple goroutines
  - Locale-independent parsing and formatting of native and fiat amounts
  - A cache of the latest exchange rates with change notifications
  - Conversion between native and fiat amounts for display and entry

# Representation

An [Amount] is a magnitude of atomic units (10^-12 XWP) held in a uint64
and a separate sign. There is no two's complement and no negative zero.
A [Currency] is an index into generated tables holding the symbol and the
display scale of each supported currency: 12 digits for XWP and 2 for
fiat currencies.

# Formatting

The decimal point is always '.' and digits are never grouped, whatever the
host locale. Misreading "1.234,56" as "1,234.56" moves a factor of 100
or 1000 of the money.

# Exchange Rates

A [RateCache] maps each fiat currency to the number of fiat units one XWP
is worth. A rate is either unknown or known; once known it is only ever
replaced. Batched updates produce a single notification.
[DisplayAmount] and [ImpliedNativeAmount] report an unknown rate as a false
second result; callers retry after the next notification.
A [Refresher] feeds the cache from a [RateSource] supplied by the host.

# Errors

Parsing errors wrap [ErrParse]. Misuse, such as asking for the exchange
rate of XWP, panics with an error wrapping [ErrInvalidArgument].
Formatting bugs are reported as [ErrInvariantViolation].
*/
package money
