/*
Package money implements monetary amounts whose currency is part of their Go type.
It stores values in the [decimal] package's fixed-point decimals and tags them
with zero-size currency types, so Amount[USD] and Amount[EUR] are different
types and mixing them is a compile error rather than a runtime check.

# Features

  - Immutable monetary values, safe for use across multiple goroutines
  - A catalog of fiat currencies, cryptocurrencies and commodities, plus
    custom currencies through the [Currency] interface
  - Exact arithmetic that reports overflow instead of wrapping
  - Seven rounding modes applied only when explicitly requested
  - Explicit conversion through directed exchange rates, [Rate]
  - Strict parsing and a canonical format that round-trip

# Representation

An [Amount] holds a decimal.Decimal with at least as many digits after the
decimal point as the currency has minor unit digits (two for US Dollars,
zero for Yen). The currency itself takes no space: Amount[USD] is as large
as a decimal.

Operations that can produce more digits than the currency supports, such as
multiplication by a decimal factor, keep them as a working scale. Nothing
drops those digits implicitly except display and truncating accessors:
[Amount.Round] and [Amount.RoundTo] remove them with an explicit
[RoundingMode].

# Supported Ranges

The coefficient of a decimal has at most 19 digits, so the range of an amount
depends on its currency. US Dollars support up to 17 integer digits, Yen up to
19, and currencies with 18 decimals, such as Ether, less than 10 whole units.
Exceeding the range returns [ErrOverflow] or [ErrUnderflow].

# Conversion

A [Rate] from currency From to currency To is created by the caller, never
looked up, and converts Amount[From] into Amount[To]. The product is computed
exactly and truncated at the scale of To unless a rounding mode is given.
Package tracking records conversions for auditing.

# Errors

Errors are returned, never raised: exported functions wrap the sentinel
errors of this package with context, so use [errors.Is] to classify them.
Functions prefixed with Must panic instead and are meant for initializing
package-level variables.
*/
package money
