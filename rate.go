package money

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// Rate represents a directed exchange rate: one unit of currency From
// is worth Factor units of currency To.
// A rate is created explicitly by the caller and never changes; the With*
// methods return modified copies.
// The zero value is not a valid rate and converts nothing.
type Rate[From, To Currency] struct {
	_      [0]From
	_      [0]To
	factor decimal.Decimal
	ts     int64
	hasTS  bool
	source string
}

// NewRate returns a rate from currency From to currency To.
//
// NewRate returns an error wrapping [ErrInvalidRate] if:
//   - the factor is not positive;
//   - both currencies have the same code and the factor is not 1;
//   - either currency is not valid.
func NewRate[From, To Currency](factor decimal.Decimal) (Rate[From, To], error) {
	r, err := newRate[From, To](factor)
	if err != nil {
		return Rate[From, To]{}, fmt.Errorf("creating %v/%v rate %v: %w", codeOf[From](), codeOf[To](), factor, err)
	}
	return r, nil
}

func newRate[From, To Currency](factor decimal.Decimal) (Rate[From, To], error) {
	if err := checkCurr[From](); err != nil {
		return Rate[From, To]{}, err
	}
	if err := checkCurr[To](); err != nil {
		return Rate[From, To]{}, err
	}
	if !factor.IsPos() {
		return Rate[From, To]{}, fmt.Errorf("%w: factor must be positive", ErrInvalidRate)
	}
	if codeOf[From]() == codeOf[To]() && factor.Cmp(decimal.MustNew(1, 0)) != 0 {
		return Rate[From, To]{}, fmt.Errorf("%w: factor must be 1 for a single currency", ErrInvalidRate)
	}
	return Rate[From, To]{factor: factor}, nil
}

// MustNewRate is like [NewRate] but panics if the rate cannot be constructed.
// It simplifies safe initialization of global variables holding rates.
func MustNewRate[From, To Currency](factor decimal.Decimal) Rate[From, To] {
	r, err := NewRate[From, To](factor)
	if err != nil {
		panic(fmt.Sprintf("NewRate(%v) failed: %v", factor, err))
	}
	return r
}

// NewRateFromFloat64 converts a float to a rate through its shortest
// decimal representation, so 0.85 becomes exactly 0.85.
//
// NewRateFromFloat64 returns an error wrapping [ErrInvalidRate] if the float
// is NaN, infinite or not positive, in addition to the conditions of [NewRate].
func NewRateFromFloat64[From, To Currency](f float64) (Rate[From, To], error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rate[From, To]{}, fmt.Errorf("converting float: %w: special value %v", ErrInvalidRate, f)
	}
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return Rate[From, To]{}, fmt.Errorf("converting float: %w: %w", ErrInvalidRate, err)
	}
	return NewRate[From, To](d)
}

// ParseRate converts a decimal string to a rate.
// See also [decimal.Parse] for the accepted syntax.
func ParseRate[From, To Currency](s string) (Rate[From, To], error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Rate[From, To]{}, fmt.Errorf("parsing %v/%v rate %q: %w: %w", codeOf[From](), codeOf[To](), s, ErrInvalidRate, err)
	}
	return NewRate[From, To](d)
}

// MustParseRate is like [ParseRate] but panics if the string cannot be parsed.
func MustParseRate[From, To Currency](s string) Rate[From, To] {
	r, err := ParseRate[From, To](s)
	if err != nil {
		panic(fmt.Sprintf("ParseRate(%q) failed: %v", s, err))
	}
	return r
}

// Factor returns how many units of To one unit of From is worth.
func (r Rate[From, To]) Factor() decimal.Decimal {
	return r.factor
}

// Timestamp returns the time the rate was observed, in unix seconds,
// and false if it was never set.
func (r Rate[From, To]) Timestamp() (int64, bool) {
	return r.ts, r.hasTS
}

// Source returns the label of the rate provider and false if it was never set.
func (r Rate[From, To]) Source() (string, bool) {
	return r.source, r.source != ""
}

// WithTimestamp returns a copy of the rate observed at the given unix time.
func (r Rate[From, To]) WithTimestamp(unix int64) Rate[From, To] {
	r.ts, r.hasTS = unix, true
	return r
}

// WithSource returns a copy of the rate labeled with its provider.
func (r Rate[From, To]) WithSource(source string) Rate[From, To] {
	r.source = source
	return r
}

// WithMetadata returns a copy of the rate with both the timestamp and the source set.
func (r Rate[From, To]) WithMetadata(unix int64, source string) Rate[From, To] {
	return r.WithTimestamp(unix).WithSource(source)
}

// Inverse returns the rate of the opposite direction, keeping the timestamp
// and the source. The factor 1 / r.Factor() is rounded to [decimal.MaxPrec]
// significant digits, so r.Inverse().Inverse() may differ from r in the last digit.
func (r Rate[From, To]) Inverse() (Rate[To, From], error) {
	inv, err := decimal.MustNew(1, 0).Quo(r.factor)
	if err != nil {
		return Rate[To, From]{}, fmt.Errorf("inverting %v: %w: %w", r, ErrInvalidRate, err)
	}
	q, err := newRate[To, From](inv)
	if err != nil {
		return Rate[To, From]{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	q.ts, q.hasTS, q.source = r.ts, r.hasTS, r.source
	return q, nil
}

// String implements the [fmt.Stringer] interface and returns the rate
// as "<from>/<to> <factor>", for example "USD/EUR 0.85".
func (r Rate[From, To]) String() string {
	return codeOf[From]() + "/" + codeOf[To]() + " " + r.factor.String()
}

// Conv returns the amount converted to currency To.
// The exact product is truncated toward zero at the scale of To;
// use [Rate.ConvRound] to round it instead.
//
// Conv returns an error wrapping:
//   - [ErrInvalidRate] if the rate is the zero value;
//   - [ErrOverflow] or [ErrUnderflow] if the result has more than
//     ([decimal.MaxPrec] - [Currency.Decimals]) integer digits.
func (r Rate[From, To]) Conv(a Amount[From]) (Amount[To], error) {
	b, err := r.conv(a, Down)
	if err != nil {
		return Amount[To]{}, fmt.Errorf("converting %v at %v: %w", a, r, err)
	}
	return b, nil
}

// ConvRound is like [Rate.Conv] but rounds the exact product with the given mode.
func (r Rate[From, To]) ConvRound(a Amount[From], mode RoundingMode) (Amount[To], error) {
	b, err := r.conv(a, mode)
	if err != nil {
		return Amount[To]{}, fmt.Errorf("converting %v at %v with %v: %w", a, r, mode, err)
	}
	return b, nil
}

func (r Rate[From, To]) conv(a Amount[From], mode RoundingMode) (Amount[To], error) {
	if !r.factor.IsPos() {
		return Amount[To]{}, fmt.Errorf("%w: factor must be positive", ErrInvalidRate)
	}
	p := wide(a.num()).Mul(wide(r.factor))
	coef := roundBig(p.Coefficient(), p.Exponent(), scaleOf[To](), mode)
	d, err := narrow(coef, scaleOf[To]())
	if err != nil {
		return Amount[To]{}, err
	}
	return newAmountSafe[To](d)
}

// Convert returns amount a converted to currency To at rate r,
// truncated at the scale of To. It is the same as r.Conv(a).
func Convert[From, To Currency](a Amount[From], r Rate[From, To]) (Amount[To], error) {
	return r.Conv(a)
}

// ConvertRound returns amount a converted to currency To at rate r,
// rounded at the scale of To with the given mode.
func ConvertRound[From, To Currency](a Amount[From], r Rate[From, To], mode RoundingMode) (Amount[To], error) {
	return r.ConvRound(a, mode)
}
