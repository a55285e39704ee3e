package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
	shop "github.com/shopspring/decimal"
)

// Amount type represents a monetary amount of currency C.
// Amounts of different currencies are different types, so they cannot be
// added, subtracted or compared with each other; use [Convert] with a [Rate]
// to move between currencies.
//
// The value always carries at least [Currency.Decimals] digits after the
// decimal point. It may carry more (a working scale) after construction from
// a finer decimal or multiplication by a decimal factor; those extra digits
// are removed by [Amount.Round] and its relatives, or truncated when a sum
// or product would need more than [decimal.MaxPrec] digits.
//
// The zero value is zero in currency C and is the value returned by [Zero].
// The == operator compares representations, so amounts equal in value but
// with different working scales are not ==; use [Amount.Equal] to compare
// values. Generic code over C cannot use == at all, because the type
// parameter makes the struct non-comparable there.
// Amount is immutable and safe for concurrent use by multiple goroutines.
type Amount[C Currency] struct {
	_     [0]C
	value decimal.Decimal
}

// newAmountUnsafe creates a new amount without checking the scale.
// Use it only if you are absolutely sure that the scale of d is not less
// than the scale of the currency.
func newAmountUnsafe[C Currency](d decimal.Decimal) Amount[C] {
	return Amount[C]{value: d}
}

// newAmountSafe creates a new amount, padding d to the scale of the currency.
func newAmountSafe[C Currency](d decimal.Decimal) (Amount[C], error) {
	if err := checkCurr[C](); err != nil {
		return Amount[C]{}, err
	}
	d, err := pad(d, scaleOf[C]())
	if err != nil {
		return Amount[C]{}, fmt.Errorf("padding amount: %w", err)
	}
	return newAmountUnsafe[C](d), nil
}

// Zero returns a zero amount of currency C.
// It is the zero value Amount[C]{}.
func Zero[C Currency]() Amount[C] {
	return Amount[C]{}
}

// FromMajor returns an amount of n whole units of currency C,
// that is n * 10^decimals minor units.
//
// FromMajor returns an error if the currency is not valid or if the scaled
// value has more than [decimal.MaxPrec] digits.
// For example, for US Dollars n must have at most 17 digits (19 - 2 = 17).
func FromMajor[C Currency](n int64) (Amount[C], error) {
	a, err := newAmountSafe[C](decimal.MustNew(n, 0))
	if err != nil {
		return Amount[C]{}, fmt.Errorf("converting %v major units of %v: %w", n, codeOf[C](), err)
	}
	return a, nil
}

// MustFromMajor is like [FromMajor] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustFromMajor[C Currency](n int64) Amount[C] {
	a, err := FromMajor[C](n)
	if err != nil {
		panic(fmt.Sprintf("FromMajor(%v) failed: %v", n, err))
	}
	return a
}

// FromMinor returns an amount of n minor units of currency C,
// for example cents for US Dollars.
// See also method [Amount.ToMinor].
//
// FromMinor returns an error only if the currency is not valid.
func FromMinor[C Currency](n int64) (Amount[C], error) {
	if err := checkCurr[C](); err != nil {
		return Amount[C]{}, fmt.Errorf("converting %v minor units: %w", n, err)
	}
	return newAmountUnsafe[C](decimal.MustNew(n, scaleOf[C]())), nil
}

// MustFromMinor is like [FromMinor] but panics if the amount cannot be constructed.
func MustFromMinor[C Currency](n int64) Amount[C] {
	a, err := FromMinor[C](n)
	if err != nil {
		panic(fmt.Sprintf("FromMinor(%v) failed: %v", n, err))
	}
	return a
}

// NewAmount returns an amount equal to coef / 10^scale.
// If the scale is less than the scale of the currency, the result is
// zero-padded to the right. A greater scale is kept as the working scale.
//
// NewAmount returns an error if:
//   - the currency is not valid;
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Decimals]) digits.
func NewAmount[C Currency](coef int64, scale int) (Amount[C], error) {
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("converting coefficient: %w: %w", ErrInvalidAmount, err)
	}
	a, err := newAmountSafe[C](d)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("converting %v / 10^%v to %v: %w", coef, scale, codeOf[C](), err)
	}
	return a, nil
}

// NewAmountFromDecimal returns an amount of currency C with the given value.
// Digits beyond the scale of the currency are kept as the working scale.
//
// NewAmountFromDecimal returns an error if the currency is not valid or if
// the integer part of the value has more than
// ([decimal.MaxPrec] - [Currency.Decimals]) digits.
func NewAmountFromDecimal[C Currency](d decimal.Decimal) (Amount[C], error) {
	a, err := newAmountSafe[C](d)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("converting %v to %v: %w", d, codeOf[C](), err)
	}
	return a, nil
}

// NewAmountFromFloat64 converts a float to an amount.
// The float is converted through its shortest decimal representation,
// so 0.1 becomes exactly 0.1.
//
// NewAmountFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the currency is not valid;
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Decimals]) digits.
func NewAmountFromFloat64[C Currency](f float64) (Amount[C], error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount[C]{}, fmt.Errorf("converting float: %w: special value %v", ErrInvalidAmount, f)
	}
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return Amount[C]{}, fmt.Errorf("converting float: %w", rangeError(int(math.Copysign(1, f))))
	}
	a, err := newAmountSafe[C](d)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

// num returns the value of the amount at no less than the currency scale.
// Only the zero value Amount[C]{} has a smaller scale.
func (a Amount[C]) num() decimal.Decimal {
	if s := scaleOf[C](); a.value.Scale() < s {
		return a.value.Pad(s)
	}
	return a.value
}

// Curr returns the currency of the amount.
func (a Amount[C]) Curr() C {
	var c C
	return c
}

// Decimal returns the decimal value of the amount, including any digits
// of the working scale.
func (a Amount[C]) Decimal() decimal.Decimal {
	return a.num()
}

// ToMinor returns the amount in minor units of the currency, truncating
// digits of the working scale toward zero.
// See also constructor [FromMinor].
//
// If the result cannot be represented as an int64, then false is returned.
func (a Amount[C]) ToMinor() (units int64, ok bool) {
	d := roundDecimal(a.num(), scaleOf[C](), Down)
	coef := d.Coef()
	if d.IsNeg() {
		if coef > -math.MinInt64 {
			return 0, false
		}
		//nolint:gosec
		return -int64(coef), true
	}
	if coef > math.MaxInt64 {
		return 0, false
	}
	//nolint:gosec
	return int64(coef), true
}

// ToMajorFloor returns the largest whole number of major units that is
// less than or equal to the amount. For example, -1.50 USD gives -2.
//
// If the result cannot be represented as an int64, then false is returned.
func (a Amount[C]) ToMajorFloor() (units int64, ok bool) {
	return a.ToMajorRounded(Floor)
}

// ToMajorRounded returns the amount in whole major units, rounded using
// the given mode. For example, 2.50 USD gives 2 with [HalfEven] and 3
// with [HalfUp].
//
// If the result cannot be represented as an int64, then false is returned.
func (a Amount[C]) ToMajorRounded(mode RoundingMode) (units int64, ok bool) {
	d := roundDecimal(a.num(), 0, mode)
	whole, _, ok := d.Int64(0)
	return whole, ok
}

// Float64 returns the nearest binary floating-point number.
// It is meant for reporting, never for further monetary arithmetic.
func (a Amount[C]) Float64() (f float64, ok bool) {
	return a.num().Float64()
}

// Scale returns the number of digits after the decimal point.
// It is equal to [Currency.Decimals] unless the amount has a working scale.
func (a Amount[C]) Scale() int {
	return a.num().Scale()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount[C]) Sign() int {
	return a.value.Sign()
}

// IsZero returns true if a = 0.
func (a Amount[C]) IsZero() bool {
	return a.value.IsZero()
}

// IsNeg returns true if a < 0.
func (a Amount[C]) IsNeg() bool {
	return a.value.IsNeg()
}

// IsPos returns true if a > 0.
func (a Amount[C]) IsPos() bool {
	return a.value.IsPos()
}

// Abs returns the absolute value of the amount.
func (a Amount[C]) Abs() Amount[C] {
	return newAmountUnsafe[C](a.num().Abs())
}

// Neg returns an amount with the opposite sign.
func (a Amount[C]) Neg() Amount[C] {
	return newAmountUnsafe[C](a.num().Neg())
}

// Add returns the sum of amounts a and b.
// The result has the larger of the two scales.
//
// If the exact sum needs more than [decimal.MaxPrec] digits, digits of the
// working scale are truncated, down to the scale of the currency at most.
// When a nonzero digit was dropped, Add returns the truncated sum together
// with an error wrapping [ErrPrecision].
//
// Add returns [ErrOverflow] or [ErrUnderflow] if the integer part of the
// result has more than ([decimal.MaxPrec] - [Currency.Decimals]) digits.
// For example, for US Dollars the limit is 17 digits (19 - 2 = 17).
func (a Amount[C]) Add(b Amount[C]) (Amount[C], error) {
	c, err := a.add(b)
	if err != nil {
		return c, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount[C]) add(b Amount[C]) (Amount[C], error) {
	return fitAmount[C](wide(a.num()).Add(wide(b.num())))
}

// Sub returns the difference between amounts a and b.
//
// Sub truncates and fails under the same conditions as [Amount.Add].
func (a Amount[C]) Sub(b Amount[C]) (Amount[C], error) {
	c, err := a.add(b.Neg())
	if err != nil {
		return c, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

// Sum returns the sum of the amounts, zero for an empty list.
// It returns an error as soon as a partial sum does not fit.
// Truncated partial sums are summed on, and the final sum is returned
// together with an error wrapping [ErrPrecision].
func Sum[C Currency](amounts ...Amount[C]) (Amount[C], error) {
	if err := checkCurr[C](); err != nil {
		return Amount[C]{}, fmt.Errorf("computing sum: %w", err)
	}
	var lost error
	s := Zero[C]()
	for _, a := range amounts {
		c, err := s.add(a)
		switch {
		case errors.Is(err, ErrPrecision):
			lost = err
		case err != nil:
			return Amount[C]{}, fmt.Errorf("computing sum of %v amounts: %w", len(amounts), err)
		}
		s = c
	}
	if lost != nil {
		return s, fmt.Errorf("computing sum of %v amounts: %w", len(amounts), lost)
	}
	return s, nil
}

// Mul returns the product of amount a and integer factor n.
// Digits of a working scale are truncated as in [Amount.MulDecimal].
//
// Mul returns [ErrOverflow] or [ErrUnderflow] if the integer part of the
// result has more than ([decimal.MaxPrec] - [Currency.Decimals]) digits.
func (a Amount[C]) Mul(n int64) (Amount[C], error) {
	c, err := a.mul(decimal.MustNew(n, 0))
	if err != nil {
		return c, fmt.Errorf("computing [%v * %v]: %w", a, n, err)
	}
	return c, nil
}

// MulDecimal returns the product of amount a and decimal factor e.
// The product keeps all its fractional digits as the working scale, as far
// as [decimal.MaxPrec] allows; use [Amount.Round] to return to the
// currency scale.
//
// Digits that do not fit are truncated, down to the scale of the currency
// at most. When a nonzero digit was dropped, MulDecimal returns the
// truncated product together with an error wrapping [ErrPrecision].
//
// MulDecimal returns [ErrOverflow] or [ErrUnderflow] if the integer part of
// the result has more than ([decimal.MaxPrec] - [Currency.Decimals]) digits.
func (a Amount[C]) MulDecimal(e decimal.Decimal) (Amount[C], error) {
	c, err := a.mul(e)
	if err != nil {
		return c, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount[C]) mul(e decimal.Decimal) (Amount[C], error) {
	return fitAmount[C](wide(a.num()).Mul(wide(e)))
}

// fitAmount converts the exact result p of an operation to an amount.
// If p has too many digits, it is truncated by [fit] and the truncated
// amount is returned together with an error wrapping [ErrPrecision].
func fitAmount[C Currency](p shop.Decimal) (Amount[C], error) {
	if err := checkCurr[C](); err != nil {
		return Amount[C]{}, err
	}
	d, lost, err := fit(p, scaleOf[C]())
	if err != nil {
		return Amount[C]{}, err
	}
	a := newAmountUnsafe[C](d)
	if lost {
		return a, fmt.Errorf("%w: exact result %v truncated to %v", ErrPrecision, p, d)
	}
	return a, nil
}

// Quo returns the quotient of amount a and integer divisor n, truncated
// toward zero at the scale of the currency.
// Division never rounds: when the exact quotient has digits below the minor
// unit, the truncated quotient is returned together with an error wrapping
// [ErrPrecision]. Callers that accept the truncation may ignore that error;
// use [Amount.QuoRem] to get the remainder or [Amount.Split] to distribute it.
//
// Quo returns [ErrDivisionByZero] if n is 0.
func (a Amount[C]) Quo(n int64) (Amount[C], error) {
	q, r, err := a.quoRem(n)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("computing [%v / %v]: %w", a, n, err)
	}
	if !r.IsZero() {
		return q, fmt.Errorf("computing [%v / %v]: %w: remainder %v dropped", a, n, ErrPrecision, r)
	}
	return q, nil
}

// QuoRem returns the quotient q and remainder r of amount a and integer
// divisor n such that a = n * q + r, where q has the scale of the currency
// and r has the sign of a.
//
// QuoRem returns [ErrDivisionByZero] if n is 0.
func (a Amount[C]) QuoRem(n int64) (q, r Amount[C], err error) {
	q, r, err = a.quoRem(n)
	if err != nil {
		return Amount[C]{}, Amount[C]{}, fmt.Errorf("computing [%v div %v] and [%v mod %v]: %w", a, n, a, n, err)
	}
	return q, r, nil
}

func (a Amount[C]) quoRem(n int64) (q, r Amount[C], err error) {
	if n == 0 {
		return Amount[C]{}, Amount[C]{}, ErrDivisionByZero
	}
	d, e := a.num(), decimal.MustNew(n, 0)

	// T-Division at the currency scale
	quo, err := d.Quo(e)
	if err != nil {
		return Amount[C]{}, Amount[C]{}, err
	}
	quo = roundDecimal(quo, scaleOf[C](), Down)
	// The quotient of a 19-digit value by an integer is exact to its own
	// scale or rounded far below it, except when rounding carried into the
	// currency digits; the remainder check below corrects that case.
	rem, err := remainder(d, quo, e)
	if err != nil {
		return Amount[C]{}, Amount[C]{}, err
	}
	if rem.Sign() != 0 && rem.Sign() != d.Sign() {
		ulp := decimal.MustNew(1, scaleOf[C]()).CopySign(quo)
		if quo, err = quo.SubExact(ulp, scaleOf[C]()); err != nil {
			return Amount[C]{}, Amount[C]{}, err
		}
		if rem, err = remainder(d, quo, e); err != nil {
			return Amount[C]{}, Amount[C]{}, err
		}
	}
	q, err = newAmountSafe[C](quo)
	if err != nil {
		return Amount[C]{}, Amount[C]{}, err
	}
	r, err = newAmountSafe[C](rem)
	if err != nil {
		return Amount[C]{}, Amount[C]{}, err
	}
	return q, r, nil
}

// remainder returns d - q * e.
func remainder(d, q, e decimal.Decimal) (decimal.Decimal, error) {
	p, err := q.MulExact(e, q.Scale())
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.SubExact(p, max(d.Scale(), p.Scale()))
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the amount cannot be divided equally, the remainder is distributed
// one unit of the last digit at a time among the first parts of the slice.
// Unlike [Amount.Quo], Split never loses precision.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount[C]) Split(parts int) ([]Amount[C], error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount[C]) split(parts int) ([]Amount[C], error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: number of parts must be positive", ErrInvalidAmount)
	}
	d := a.num()
	par := decimal.MustNew(int64(parts), 0)

	// Quotient truncated at the scale of the amount
	quo, err := d.Quo(par)
	if err != nil {
		return nil, err
	}
	quo = roundDecimal(quo, d.Scale(), Down).Pad(d.Scale())

	// Remainder, a whole number of units of the last digit
	rem, err := remainder(d, quo, par)
	if err != nil {
		return nil, err
	}
	ulp := decimal.MustNew(1, d.Scale()).CopySign(rem)

	res := make([]Amount[C], parts)
	for i := range res {
		part := quo
		if !rem.IsZero() {
			if rem, err = rem.SubExact(ulp, d.Scale()); err != nil {
				return nil, err
			}
			if part, err = part.AddExact(ulp, d.Scale()); err != nil {
				return nil, err
			}
		}
		res[i] = newAmountUnsafe[C](part)
	}
	return res, nil
}

// HasExcessPrecision returns true if the amount has nonzero digits below
// the minor unit of its currency.
func (a Amount[C]) HasExcessPrecision() bool {
	d := a.num()
	return d.Cmp(roundDecimal(d, scaleOf[C](), Down)) != 0
}

// CheckPrecision returns an error wrapping [ErrPrecision] if the amount has
// nonzero digits below the minor unit of its currency.
// See also methods [Amount.Normalize] and [Amount.Round].
func (a Amount[C]) CheckPrecision() error {
	if a.HasExcessPrecision() {
		return fmt.Errorf("checking %v: %w: %v supports %v decimal places, value has %v",
			a.num(), ErrPrecision, codeOf[C](), scaleOf[C](), a.num().Trim(0).Scale())
	}
	return nil
}

// Normalize returns the amount rounded to the scale of its currency
// using [HalfEven], the usual choice for accounting.
func (a Amount[C]) Normalize() Amount[C] {
	return a.Round(HalfEven)
}

// Round returns the amount rounded to the scale of its currency using the
// given mode. Amounts without a working scale are returned unchanged.
func (a Amount[C]) Round(mode RoundingMode) Amount[C] {
	return newAmountUnsafe[C](roundDecimal(a.num(), scaleOf[C](), mode))
}

// RoundTo returns the amount rounded to the given number of digits after
// the decimal point using the given mode, and padded back to the scale of
// the currency. For example, rounding 12.34 USD to 0 digits with [HalfUp]
// gives 12.00 USD. Scales not less than the scale of the amount leave it
// unchanged; negative scales are treated as 0.
//
// RoundTo returns [ErrRounding] if the rounded value no longer fits the
// currency scale, which can only happen when rounding away from zero
// adds an integer digit.
func (a Amount[C]) RoundTo(scale int, mode RoundingMode) (Amount[C], error) {
	d := roundDecimal(a.num(), max(scale, 0), mode)
	b, err := pad(d, scaleOf[C]())
	if err != nil {
		return Amount[C]{}, fmt.Errorf("rounding %v to %v digits: %w: %w", a, scale, ErrRounding, err)
	}
	return newAmountUnsafe[C](b), nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Trailing zeros do not matter, 1.00 USD equals 1.000 USD.
func (a Amount[C]) Cmp(b Amount[C]) int {
	return a.value.Cmp(b.value)
}

// CmpAbs compares absolute values of amounts.
func (a Amount[C]) CmpAbs(b Amount[C]) int {
	return a.value.CmpAbs(b.value)
}

// Equal returns true if a = b numerically.
func (a Amount[C]) Equal(b Amount[C]) bool {
	return a.Cmp(b) == 0
}

// Less returns true if a < b.
func (a Amount[C]) Less(b Amount[C]) bool {
	return a.Cmp(b) < 0
}

// Min returns the smaller amount, a if they are equal.
func (a Amount[C]) Min(b Amount[C]) Amount[C] {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

// Max returns the larger amount, a if they are equal.
func (a Amount[C]) Max(b Amount[C]) Amount[C] {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// Clamp compares amounts and returns:
//
//	min if a < min
//	max if a > max
//	  a otherwise
//
// Clamp returns an error if min is greater than max.
func (a Amount[C]) Clamp(min, max Amount[C]) (Amount[C], error) {
	if min.Cmp(max) > 0 {
		return Amount[C]{}, fmt.Errorf("clamping %v: %w: invalid range [%v, %v]", a, ErrInvalidAmount, min, max)
	}
	switch {
	case a.Cmp(min) < 0:
		return min, nil
	case a.Cmp(max) > 0:
		return max, nil
	}
	return a, nil
}
