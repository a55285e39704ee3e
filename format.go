package money

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// String implements the [fmt.Stringer] interface and returns the canonical
// representation "<symbol><number> <code>", for example "$-12.34 USD".
// The number has exactly [Currency.Decimals] digits after the decimal point;
// digits of a working scale are truncated, not rounded.
// [Parse] accepts every string returned by String.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount[C]) String() string {
	d := roundDecimal(a.num(), scaleOf[C](), Down)
	return symbolOf[C]() + d.String() + " " + codeOf[C]()
}

// FormatOptions controls [Amount.FormatWith].
// The zero value formats the bare number with a decimal point.
type FormatOptions struct {
	Symbol     bool   // prefix the currency symbol
	Code       bool   // append a space and the currency code
	DecimalSep string // decimal separator, "." if empty
	GroupSep   string // thousands separator, none if empty
}

// FormatWith returns the amount at the scale of its currency, truncating
// digits of a working scale, laid out according to opts.
// Only the default separators produce strings accepted by [Parse].
func (a Amount[C]) FormatWith(opts FormatOptions) string {
	d := roundDecimal(a.num(), scaleOf[C](), Down)
	whole, frac := splitDigits(d)

	var b strings.Builder
	if opts.Symbol {
		b.WriteString(symbolOf[C]())
	}
	if d.IsNeg() {
		b.WriteByte('-')
	}
	for i := 0; i < len(whole); i++ {
		if i > 0 && opts.GroupSep != "" && (len(whole)-i)%3 == 0 {
			b.WriteString(opts.GroupSep)
		}
		b.WriteByte(whole[i])
	}
	if frac != "" {
		if opts.DecimalSep == "" {
			b.WriteByte('.')
		} else {
			b.WriteString(opts.DecimalSep)
		}
		b.WriteString(frac)
	}
	if opts.Code {
		b.WriteByte(' ')
		b.WriteString(codeOf[C]())
	}
	return b.String()
}

// splitDigits returns the integer and fractional digits of |d|.
func splitDigits(d decimal.Decimal) (whole, frac string) {
	s := d.Abs().String()
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example        | Description               |
//	| ------ | -------------- | ------------------------- |
//	| %s, %v | $5.67 USD      | Canonical representation  |
//	| %q     | "$5.67 USD"    | Quoted representation     |
//	| %f     | 5.678          | Number at its full scale  |
//	| %d     | 567            | Amount in minor units     |
//	| %c     | USD            | Currency code             |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
// Width counts characters, not bytes, so multi-byte symbols pad correctly.
//
// Precision is only supported for the %f verb. The default precision is the
// actual scale of the amount; precision never goes below the scale of the
// currency, and extra digits are truncated.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount[C]) Format(state fmt.State, verb rune) {
	d := a.num()

	// Rescaling
	switch verb {
	case 'f', 'F':
		scale := d.Scale()
		if p, ok := state.Precision(); ok {
			scale = max(p, scaleOf[C]())
		}
		if scale < d.Scale() {
			d = roundDecimal(d, scale, Down)
		} else {
			d = d.Pad(scale)
		}
	default:
		d = roundDecimal(d, scaleOf[C](), Down)
	}

	// Digits
	var digits string
	switch verb {
	case 'c', 'C':
		// skip
	case 'd', 'D':
		digits = strconv.FormatUint(d.Coef(), 10)
	default:
		digits = d.Abs().String()
	}

	// Arithmetic sign
	rsign := ""
	if verb != 'c' && verb != 'C' {
		switch {
		case d.IsNeg():
			rsign = "-"
		case state.Flag('+'):
			rsign = "+"
		case state.Flag(' '):
			rsign = " "
		}
	}

	// Currency symbol and code
	prefix, suffix := "", ""
	switch verb {
	case 'f', 'F', 'd', 'D':
		// skip
	case 'c', 'C':
		suffix = codeOf[C]()
	default:
		prefix = symbolOf[C]()
		suffix = " " + codeOf[C]()
	}

	// Opening and closing quotes
	if verb == 'q' || verb == 'Q' {
		prefix = `"` + prefix
		suffix += `"`
	}

	// Calculating padding
	width := utf8.RuneCountInString(prefix) + len(rsign) + len(digits) + utf8.RuneCountInString(suffix)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'c' && verb != 'C':
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(prefix)
	buf.WriteString(rsign)
	buf.WriteString(strings.Repeat("0", lzeros))
	buf.WriteString(digits)
	buf.WriteString(suffix)
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write([]byte(buf.String()))
	default:
		fmt.Fprintf(state, "%%!%c(money.Amount[%v]=%v)", verb, codeOf[C](), buf.String())
	}
}
