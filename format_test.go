package money

import (
	"fmt"
	"testing"
)

func TestAmount_String(t *testing.T) {
	tests := []struct {
		got  fmt.Stringer
		want string
	}{
		{mustAmount[USD]("12.34"), "$12.34 USD"},
		{mustAmount[USD]("-12.34"), "$-12.34 USD"},
		{mustAmount[USD]("12.349"), "$12.34 USD"},
		{mustAmount[USD]("-12.349"), "$-12.34 USD"},
		{Amount[USD]{}, "$0.00 USD"},
		{mustAmount[JPY]("1000"), "¥1000 JPY"},
		{mustAmount[EUR]("0.5"), "€0.50 EUR"},
		{mustAmount[CHF]("12.5"), "CHF12.50 CHF"},
		{mustAmount[BTC]("0.00000001"), "₿0.00000001 BTC"},
		{mustAmount[XAU]("1"), "Au1.0000 XAU"},
		{Amount[ETH]{}, "Ξ0.000000000000000000 ETH"},
	}
	for _, tt := range tests {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAmount_Format(t *testing.T) {
	tests := []struct {
		a, format, want string
	}{
		// %v
		{"5.67", "%v", "$5.67 USD"},
		{"-5.67", "%v", "$-5.67 USD"},
		{"5.678", "%v", "$5.67 USD"},
		{"5.67", "%+v", "$+5.67 USD"},
		{"5.67", "% v", "$ 5.67 USD"},
		{"5.67", "%12v", "   $5.67 USD"},
		{"5.67", "%-12v", "$5.67 USD   "},
		{"5.67", "%012v", "$0005.67 USD"},
		{"-5.67", "%012v", "$-005.67 USD"},
		{"5.67", "%5v", "$5.67 USD"},

		// %s, %q
		{"5.67", "%s", "$5.67 USD"},
		{"5.67", "%q", `"$5.67 USD"`},
		{"-5.67", "%13q", ` "$-5.67 USD"`},

		// %f
		{"5.67", "%f", "5.67"},
		{"-5.67", "%f", "-5.67"},
		{"5.678", "%f", "5.678"},
		{"5.678", "%.2f", "5.67"},
		{"5.678", "%.1f", "5.67"},
		{"5.67", "%.4f", "5.6700"},
		{"-5.67", "%08.2f", "-0005.67"},
		{"5.67", "%-8f", "5.67    "},
		{"5.67", "%+f", "+5.67"},

		// %d
		{"5.67", "%d", "567"},
		{"-5.67", "%d", "-567"},
		{"5.678", "%d", "567"},
		{"99999999999999999.99", "%d", "9999999999999999999"},
		{"5.67", "%06d", "000567"},

		// %c
		{"5.67", "%c", "USD"},
		{"-5.67", "%5c", "  USD"},
		{"5.67", "%-5c|", "USD  |"},

		// unsupported
		{"5.67", "%x", "%!x(money.Amount[USD]=$5.67 USD)"},
	}
	for _, tt := range tests {
		a := mustAmount[USD](tt.a)
		if got := fmt.Sprintf(tt.format, a); got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, a.Decimal(), got, tt.want)
		}
	}
}

func TestAmount_Format_Runes(t *testing.T) {
	tests := []struct {
		format string
		a      fmt.Formatter
		want   string
	}{
		{"%10v", mustAmount[EUR]("1"), " €1.00 EUR"},
		{"%-12v|", mustAmount[UAH]("1"), "₴1.00 UAH   |"},
		{"%f", mustAmount[JPY]("1000"), "1000"},
		{"%d", Amount[USD]{}, "0"},
		{"%f", Amount[USD]{}, "0.00"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, tt.a); got != tt.want {
			t.Errorf("fmt.Sprintf(%q, ...) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestAmount_FormatWith(t *testing.T) {
	tests := []struct {
		a    string
		opts FormatOptions
		want string
	}{
		{"1234567.89", FormatOptions{}, "1234567.89"},
		{"1234567.89", FormatOptions{Symbol: true, Code: true}, "$1234567.89 USD"},
		{"1234567.89", FormatOptions{GroupSep: ","}, "1,234,567.89"},
		{"1234567.89", FormatOptions{DecimalSep: ",", GroupSep: "."}, "1.234.567,89"},
		{"-1234567.89", FormatOptions{Symbol: true, GroupSep: " "}, "$-1 234 567.89"},
		{"123", FormatOptions{GroupSep: ","}, "123.00"},
		{"123456", FormatOptions{GroupSep: ","}, "123,456.00"},
		{"1.239", FormatOptions{Code: true}, "1.23 USD"},
		{"0", FormatOptions{Symbol: true}, "$0.00"},
	}
	for _, tt := range tests {
		a := mustAmount[USD](tt.a)
		if got := a.FormatWith(tt.opts); got != tt.want {
			t.Errorf("%v.FormatWith(%+v) = %q, want %q", a.Decimal(), tt.opts, got, tt.want)
		}
	}
	jpy := mustAmount[JPY]("1000000")
	if got, want := jpy.FormatWith(FormatOptions{Symbol: true, GroupSep: ","}), "¥1,000,000"; got != want {
		t.Errorf("%v.FormatWith = %q, want %q", jpy.Decimal(), got, want)
	}
}
