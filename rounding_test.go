package money

import (
	"errors"
	"math/big"
	"testing"

	"github.com/govalues/decimal"
)

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		m    RoundingMode
		want string
	}{
		{HalfEven, "HalfEven"},
		{HalfUp, "HalfUp"},
		{HalfDown, "HalfDown"},
		{Up, "Up"},
		{Down, "Down"},
		{Ceiling, "Ceiling"},
		{Floor, "Floor"},
		{RoundingMode(42), "RoundingMode(42)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", uint8(tt.m), got, tt.want)
		}
	}
	var zero RoundingMode
	if zero != HalfEven {
		t.Errorf("zero RoundingMode = %v, want %v", zero, HalfEven)
	}
}

func TestParseRoundingMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want RoundingMode
		}{
			{"HalfEven", HalfEven},
			{"half-even", HalfEven},
			{"HALF_UP", HalfUp},
			{"half down", HalfDown},
			{"up", Up},
			{"Down", Down},
			{"ceiling", Ceiling},
			{"FLOOR", Floor},
		}
		for _, tt := range tests {
			got, err := ParseRoundingMode(tt.s)
			if err != nil {
				t.Errorf("ParseRoundingMode(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
		for _, m := range RoundingModes() {
			text, err := m.MarshalText()
			if err != nil {
				t.Errorf("%v.MarshalText() failed: %v", m, err)
				continue
			}
			var got RoundingMode
			if err := got.UnmarshalText(text); err != nil || got != m {
				t.Errorf("UnmarshalText(%q) = [%v %v], want %v", text, got, err, m)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, s := range []string{"", "half", "banker", "HalfEvenUp"} {
			if _, err := ParseRoundingMode(s); err == nil {
				t.Errorf("ParseRoundingMode(%q) did not fail", s)
			}
		}
		if _, err := RoundingMode(7).MarshalText(); err == nil {
			t.Errorf("RoundingMode(7).MarshalText() did not fail")
		}
	})
}

// Columns follow the order of RoundingModes.
func TestAmount_Round(t *testing.T) {
	tests := []struct {
		a    string
		want [7]string
	}{
		{"1.005", [7]string{"1.00", "1.01", "1.00", "1.01", "1.00", "1.01", "1.00"}},
		{"1.015", [7]string{"1.02", "1.02", "1.01", "1.02", "1.01", "1.02", "1.01"}},
		{"1.0051", [7]string{"1.01", "1.01", "1.01", "1.01", "1.00", "1.01", "1.00"}},
		{"1.0049", [7]string{"1.00", "1.00", "1.00", "1.01", "1.00", "1.01", "1.00"}},
		{"1.010", [7]string{"1.01", "1.01", "1.01", "1.01", "1.01", "1.01", "1.01"}},
		{"-1.005", [7]string{"-1.00", "-1.01", "-1.00", "-1.01", "-1.00", "-1.00", "-1.01"}},
		{"-1.015", [7]string{"-1.02", "-1.02", "-1.01", "-1.02", "-1.01", "-1.01", "-1.02"}},
		{"-1.0049", [7]string{"-1.00", "-1.00", "-1.00", "-1.01", "-1.00", "-1.00", "-1.01"}},
		{"0.999", [7]string{"1.00", "1.00", "1.00", "1.00", "0.99", "1.00", "0.99"}},
		{"-0.001", [7]string{"0.00", "0.00", "0.00", "-0.01", "0.00", "0.00", "-0.01"}},
		{"10.125", [7]string{"10.12", "10.13", "10.12", "10.13", "10.12", "10.13", "10.12"}},
		{"10.135", [7]string{"10.14", "10.14", "10.13", "10.14", "10.13", "10.14", "10.13"}},
		{"9999999999999999.999", [7]string{"10000000000000000.00", "10000000000000000.00", "10000000000000000.00", "10000000000000000.00", "9999999999999999.99", "10000000000000000.00", "9999999999999999.99"}},
	}
	for _, tt := range tests {
		a := mustAmount[USD](tt.a)
		for i, mode := range RoundingModes() {
			got := a.Round(mode)
			want := mustAmount[USD](tt.want[i])
			if !got.Equal(want) || got.Scale() != 2 {
				t.Errorf("%v.Round(%v) = %v, want %v", a.Decimal(), mode, got.Decimal(), want.Decimal())
			}
		}
	}
}

func TestAmount_Round_Properties(t *testing.T) {
	inputs := []string{"0", "1.00", "-1.00", "1.005", "-2.675", "123.4567", "-0.0001", "99999999999999.99999"}
	for _, s := range inputs {
		a := mustAmount[USD](s)
		for _, mode := range RoundingModes() {
			once := a.Round(mode)
			// Idempotence
			if twice := once.Round(mode); twice != once {
				t.Errorf("%v.Round(%v).Round(%v) = %v, want %v", a.Decimal(), mode, mode, twice.Decimal(), once.Decimal())
			}
			// Amounts without excess digits are returned unchanged
			if !a.HasExcessPrecision() && !once.Equal(a) {
				t.Errorf("%v.Round(%v) = %v, want unchanged", a.Decimal(), mode, once.Decimal())
			}
			// The result is within one minor unit of the input
			diff, err := once.Sub(a)
			if err != nil {
				t.Errorf("%v.Round(%v) - %v failed: %v", a.Decimal(), mode, a.Decimal(), err)
				continue
			}
			if diff.Abs().Cmp(MustFromMinor[USD](1)) >= 0 {
				t.Errorf("%v.Round(%v) = %v, too far from the input", a.Decimal(), mode, once.Decimal())
			}
		}
	}
}

func TestAmount_RoundTo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a     string
			scale int
			mode  RoundingMode
			want  string
		}{
			{"12.34", 0, HalfUp, "12.00"},
			{"12.50", 0, HalfEven, "12.00"},
			{"13.50", 0, HalfEven, "14.00"},
			{"-12.50", 0, Floor, "-13.00"},
			{"-12.50", 0, Ceiling, "-12.00"},
			{"12.345", 2, Up, "12.35"},
			{"12.34", 5, Up, "12.34"},
			{"12.34", -1, Up, "13.00"},
			{"0.00", 0, Up, "0.00"},
		}
		for _, tt := range tests {
			a := mustAmount[USD](tt.a)
			got, err := a.RoundTo(tt.scale, tt.mode)
			if err != nil {
				t.Errorf("%v.RoundTo(%v, %v) failed: %v", a.Decimal(), tt.scale, tt.mode, err)
				continue
			}
			want := mustAmount[USD](tt.want)
			if got != want {
				t.Errorf("%v.RoundTo(%v, %v) = %v, want %v", a.Decimal(), tt.scale, tt.mode, got.Decimal(), want.Decimal())
			}
		}
		jpy := mustAmount[JPY]("1234.5")
		if got, err := jpy.RoundTo(0, HalfEven); err != nil || got.String() != "¥1234 JPY" {
			t.Errorf("%v.RoundTo(0, HalfEven) = [%q %v], want ¥1234 JPY", jpy.Decimal(), got, err)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			a    string
			mode RoundingMode
		}{
			{"99999999999999999.50", HalfUp},
			{"99999999999999999.01", Up},
			{"-99999999999999999.01", Floor},
		}
		for _, tt := range tests {
			a := mustAmount[USD](tt.a)
			if _, err := a.RoundTo(0, tt.mode); !errors.Is(err, ErrRounding) {
				t.Errorf("%v.RoundTo(0, %v) = %v, want %v", a.Decimal(), tt.mode, err, ErrRounding)
			}
		}
	})
}

// Both rounding paths must agree on values that fit the backend.
func TestRoundBig(t *testing.T) {
	inputs := []string{
		"0", "1.005", "-1.005", "1.015", "-1.015", "2.5", "-2.5", "3.5",
		"0.0001", "-0.0001", "123456789.987654321", "-9999999999999999.999",
	}
	for _, s := range inputs {
		d := decimal.MustParse(s)
		coef := new(big.Int).SetUint64(d.Coef())
		if d.IsNeg() {
			coef.Neg(coef)
		}
		for scale := 0; scale <= 4; scale++ {
			for _, mode := range RoundingModes() {
				want := roundDecimal(d, scale, mode).Pad(scale)
				if want.Scale() != scale {
					continue // does not fit the backend at this scale
				}
				got := roundBig(coef, -int32(d.Scale()), scale, mode)
				wantCoef := new(big.Int).SetUint64(want.Coef())
				if want.IsNeg() {
					wantCoef.Neg(wantCoef)
				}
				if got.Cmp(wantCoef) != 0 {
					t.Errorf("roundBig(%v, %v, %v) = %v, want %v", d, scale, mode, got, wantCoef)
				}
			}
		}
	}
}

func TestRoundBig_Wide(t *testing.T) {
	// 12345678901234567890123 * 10^-4, beyond 19 digits
	coef, _ := new(big.Int).SetString("12345678901234567890123", 10)
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{HalfEven, "1234567890123456789.01"},
		{Down, "1234567890123456789.01"},
		{Up, "1234567890123456789.02"},
	}
	for _, tt := range tests {
		got := roundBig(coef, -4, 2, tt.mode)
		want, _ := new(big.Int).SetString(tt.want[:len(tt.want)-3]+tt.want[len(tt.want)-2:], 10)
		if got.Cmp(want) != 0 {
			t.Errorf("roundBig(%v, -4, 2, %v) = %v, want %v", coef, tt.mode, got, want)
		}
	}
	if got := roundBig(big.NewInt(-5), -1, 3, HalfUp); got.Cmp(big.NewInt(-500)) != 0 {
		t.Errorf("roundBig(-5, -1, 3, HalfUp) = %v, want -500", got)
	}
}
