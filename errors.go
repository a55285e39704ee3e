package money

import (
	"errors"
	"fmt"
)

// Errors returned by the package.
// Use [errors.Is] to test for them, as exported functions wrap them
// with the operands involved.
var (
	// ErrCurrencyMismatch is returned when a serialized amount or rate
	// names a currency different from the one required by its Go type.
	// Mixing currencies in arithmetic does not compile.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidRate      = errors.New("invalid exchange rate")
	ErrOverflow         = errors.New("amount overflow")
	ErrUnderflow        = errors.New("amount underflow")
	// ErrPrecision is returned alongside a valid result when an operation
	// discarded a nonzero digit below the minor unit of the currency.
	ErrPrecision      = errors.New("precision loss")
	ErrParse          = errors.New("invalid amount string")
	ErrRounding       = errors.New("rounding overflow")
	ErrDivisionByZero = errors.New("division by zero")
)

// rangeError returns the error for a result that does not fit the backend.
// The sign is the sign the exact result would have had.
func rangeError(sign int) error {
	if sign < 0 {
		return ErrUnderflow
	}
	return ErrOverflow
}

// ParseError describes a string that could not be converted to an amount.
// It matches [ErrParse] and, when set, the underlying Err.
type ParseError struct {
	Input    string // offending input, possibly shortened
	Currency string // code of the target currency
	Reason   string // human-readable reason
	Err      error  // underlying error, may be nil
}

func newParseError(input, curr, reason string) *ParseError {
	if len(input) > MaxParseLen {
		input = input[:MaxParseLen] + "..."
	}
	return &ParseError{Input: input, Currency: curr, Reason: reason}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q as %v: %v", e.Input, e.Currency, e.Reason)
}

// Is reports whether target is [ErrParse].
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
