package money

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// RoundingMode selects how digits below a target scale are discarded.
// The zero value is [HalfEven].
type RoundingMode uint8

const (
	// HalfEven rounds to the nearest neighbor, ties go to the even neighbor.
	HalfEven RoundingMode = iota
	// HalfUp rounds to the nearest neighbor, ties go away from zero.
	HalfUp
	// HalfDown rounds to the nearest neighbor, ties go toward zero.
	HalfDown
	// Up rounds away from zero.
	Up
	// Down rounds toward zero (truncation).
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
)

var modeNames = [...]string{
	HalfEven: "HalfEven",
	HalfUp:   "HalfUp",
	HalfDown: "HalfDown",
	Up:       "Up",
	Down:     "Down",
	Ceiling:  "Ceiling",
	Floor:    "Floor",
}

// RoundingModes returns all rounding modes.
func RoundingModes() []RoundingMode {
	return []RoundingMode{HalfEven, HalfUp, HalfDown, Up, Down, Ceiling, Floor}
}

func (m RoundingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// ParseRoundingMode converts a mode name to a rounding mode.
// Names are matched case-insensitively, with or without separators:
//
//	HalfUp
//	half-up
//	half_up
func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	for i, n := range modeNames {
		if strings.EqualFold(name, n) {
			return RoundingMode(i), nil
		}
	}
	return 0, fmt.Errorf("parsing rounding mode %q: unknown mode", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m RoundingMode) MarshalText() ([]byte, error) {
	if int(m) >= len(modeNames) {
		return nil, fmt.Errorf("marshaling %v: unknown mode", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	return err
}

// roundsAway reports whether a truncated magnitude must be incremented.
// half is the comparison of the discarded remainder with half a unit
// of the last retained digit, exact reports whether the remainder is zero.
func (m RoundingMode) roundsAway(neg, odd bool, half int, exact bool) bool {
	if exact {
		return false
	}
	switch m {
	case Up:
		return true
	case Ceiling:
		return !neg
	case Floor:
		return neg
	case HalfUp:
		return half >= 0
	case HalfDown:
		return half > 0
	case HalfEven:
		return half > 0 || (half == 0 && odd)
	}
	return false
}

var pow10 = [...]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// roundDecimal rounds d to the given scale.
// If the scale of d does not exceed the target scale, d is returned unchanged.
// The coefficient of the result never grows past the one of d, so no error is possible.
func roundDecimal(d decimal.Decimal, scale int, mode RoundingMode) decimal.Decimal {
	if d.Scale() <= scale {
		return d
	}
	unit := pow10[d.Scale()-scale]
	coef := d.Coef()
	q, r := coef/unit, coef%unit
	// r is compared with unit-r so that 2*r cannot overflow.
	half := 0
	switch {
	case r > unit-r:
		half = 1
	case r < unit-r:
		half = -1
	}
	if mode.roundsAway(d.IsNeg(), q%2 == 1, half, r == 0) {
		q++
	}
	// q < 10^18 + 1 because at least one digit was dropped.
	n := int64(q)
	if d.IsNeg() {
		n = -n
	}
	return decimal.MustNew(n, scale)
}

// roundBig rounds the signed value coef * 10^exp to the given scale.
// It serves products that exceed the precision of the backend.
func roundBig(coef *big.Int, exp int32, scale int, mode RoundingMode) *big.Int {
	drop := -int(exp) - scale
	if drop <= 0 {
		// Nothing to discard, pad with zeros instead.
		p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-drop)), nil)
		return p.Mul(p, coef)
	}
	neg := coef.Sign() < 0
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(drop)), nil)
	q, r := new(big.Int).QuoRem(new(big.Int).Abs(coef), unit, new(big.Int))
	half := new(big.Int).Lsh(r, 1).Cmp(unit)
	if mode.roundsAway(neg, q.Bit(0) == 1, half, r.Sign() == 0) {
		q.Add(q, big.NewInt(1))
	}
	if neg {
		q.Neg(q)
	}
	return q
}
