package money

import (
	"math/big"
	"strings"

	"github.com/govalues/decimal"
	shop "github.com/shopspring/decimal"
)

// Amounts and rates are stored as govalues decimals: a 19-digit coefficient
// with a scale of up to 19 digits, with exact arithmetic reporting overflow.
// Conversion products may need more digits than that before they are cut
// to the scale of the target currency, so they are computed with
// shopspring decimals, which have no precision limit.

// pad zero-pads d to at least the given scale.
// It fails if the integer part of d has too many digits for that scale.
func pad(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	if d.Scale() >= scale {
		return d, nil
	}
	p := d.Pad(scale)
	if p.Scale() < scale {
		return decimal.Decimal{}, rangeError(d.Sign())
	}
	return p, nil
}

// wide converts d to an arbitrary-precision decimal.
func wide(d decimal.Decimal) shop.Decimal {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return shop.NewFromBigInt(coef, -int32(d.Scale()))
}

// fit truncates p to the largest scale at which it fits the backend,
// but not below minScale. The scale of p is kept when it fits.
// The returned flag reports whether a nonzero digit was dropped.
// It fails with [ErrOverflow] or [ErrUnderflow] if p does not fit even
// at minScale.
func fit(p shop.Decimal, minScale int) (decimal.Decimal, bool, error) {
	coef, exp := p.Coefficient(), p.Exponent()
	scale := min(-int(exp), decimal.MaxScale)
	digits := len(new(big.Int).Abs(coef).String()) - (-int(exp) - scale)
	if excess := digits - decimal.MaxPrec; excess > 0 {
		scale -= excess
	}
	scale = max(scale, minScale)
	t := roundBig(coef, exp, scale, Down)
	d, err := narrow(t, scale)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	return d, !shop.NewFromBigInt(t, -int32(scale)).Equal(p), nil
}

// narrow converts coef * 10^-scale back to a backend decimal.
// It fails with [ErrOverflow] or [ErrUnderflow] if the coefficient
// has more digits than the backend can hold.
func narrow(coef *big.Int, scale int) (decimal.Decimal, error) {
	abs := new(big.Int).Abs(coef)
	if abs.BitLen() > 64 || abs.Uint64() > maxCoef {
		return decimal.Decimal{}, rangeError(coef.Sign())
	}
	if coef.IsInt64() {
		return decimal.New(coef.Int64(), scale)
	}
	// Coefficients between MaxInt64 and maxCoef only fit through the parser.
	digits := abs.String()
	var b strings.Builder
	if coef.Sign() < 0 {
		b.WriteByte('-')
	}
	if len(digits) <= scale {
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", scale-len(digits)))
		b.WriteString(digits)
	} else {
		b.WriteString(digits[:len(digits)-scale])
		if scale > 0 {
			b.WriteByte('.')
			b.WriteString(digits[len(digits)-scale:])
		}
	}
	d, err := decimal.ParseExact(b.String(), scale)
	if err != nil {
		return decimal.Decimal{}, rangeError(coef.Sign())
	}
	return d, nil
}

// maxCoef is the largest coefficient of the backend, 19 nines.
const maxCoef = 9_999_999_999_999_999_999
