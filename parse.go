package money

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// MaxParseLen is the maximum length in bytes of a string accepted by [Parse],
// not counting leading and trailing white space.
const MaxParseLen = 100

// maxRawLen bounds the input before white space is trimmed.
const maxRawLen = 4 * MaxParseLen

// Parse converts a string to an amount of currency C.
// Leading and trailing white space is ignored. The following shapes are
// accepted, where the code and the symbol must be the ones of C:
//
//	12.34
//	$12.34
//	12.34 USD
//	USD 12.34
//	$12.34 USD
//
// The number is an optional sign followed by digits, optionally followed by
// a decimal point and more digits. Negative amounts put the sign after the
// symbol, as in "$-12.34".
//
// Digits beyond the scale of the currency are truncated. If a nonzero digit
// was dropped, Parse returns the truncated amount together with an error
// wrapping [ErrPrecision].
//
// Every other failure is a [*ParseError], which matches [ErrParse], and also
// [ErrOverflow] or [ErrUnderflow] when the number does not fit the currency.
func Parse[C Currency](s string) (Amount[C], error) {
	if err := checkCurr[C](); err != nil {
		return Amount[C]{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	p := parser{input: s, code: codeOf[C](), symbol: symbolOf[C](), scale: scaleOf[C]()}
	d, lost, perr := p.parse()
	if perr != nil {
		return Amount[C]{}, perr
	}
	a := newAmountUnsafe[C](d)
	if lost {
		return a, fmt.Errorf("parsing %q: %w: digits beyond %v decimal places dropped", s, ErrPrecision, p.scale)
	}
	return a, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed
// or digits were dropped.
// It simplifies safe initialization of global variables holding amounts.
func MustParse[C Currency](s string) Amount[C] {
	a, err := Parse[C](s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return a
}

// parser holds the target currency of a single call to [Parse].
type parser struct {
	input  string
	code   string
	symbol string
	scale  int
}

func (p *parser) fail(reason string) *ParseError {
	return newParseError(p.input, p.code, reason)
}

func (p *parser) parse() (decimal.Decimal, bool, *ParseError) {
	if len(p.input) > maxRawLen {
		return decimal.Decimal{}, false, p.fail(fmt.Sprintf("input longer than %v bytes", maxRawLen))
	}
	if !utf8.ValidString(p.input) {
		return decimal.Decimal{}, false, p.fail("invalid UTF-8")
	}
	for _, r := range p.input {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return decimal.Decimal{}, false, p.fail("control character")
		}
	}
	s := strings.TrimSpace(p.input)
	if s == "" {
		return decimal.Decimal{}, false, p.fail("empty input")
	}
	if len(s) > MaxParseLen {
		return decimal.Decimal{}, false, p.fail(fmt.Sprintf("input longer than %v bytes", MaxParseLen))
	}
	// Only a single space may separate the code from the number.
	for _, r := range s {
		if unicode.IsSpace(r) && r != ' ' {
			return decimal.Decimal{}, false, p.fail("unexpected white space")
		}
	}

	fields := strings.Split(s, " ")
	var num string
	switch len(fields) {
	case 1:
		num = fields[0]
	case 2:
		switch {
		case isCode(fields[1]):
			if err := p.checkCode(fields[1]); err != nil {
				return decimal.Decimal{}, false, err
			}
			num = fields[0]
		case isCode(fields[0]):
			if err := p.checkCode(fields[0]); err != nil {
				return decimal.Decimal{}, false, err
			}
			if !startsNumber(fields[1]) {
				return decimal.Decimal{}, false, p.fail("symbol not allowed after the currency code")
			}
			return p.number(fields[1])
		default:
			return decimal.Decimal{}, false, p.fail("trailing garbage after number")
		}
	default:
		return decimal.Decimal{}, false, p.fail("too many fields")
	}

	num, err := p.stripSymbol(num)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	return p.number(num)
}

// isCode reports whether s looks like a currency code: letters only.
func isCode(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func startsNumber(s string) bool {
	return s != "" && (isDigit(s[0]) || s[0] == '-' || s[0] == '+')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (p *parser) checkCode(code string) *ParseError {
	switch {
	case code == p.code:
		return nil
	case knownCode(code):
		return p.fail(fmt.Sprintf("currency code mismatch: found %v", code))
	}
	return p.fail(fmt.Sprintf("unknown currency code %q", code))
}

func knownCode(code string) bool {
	i, ok := currLookup[code]
	return ok && currCatalog[i].Code == code
}

// stripSymbol removes the symbol of the currency from the front of s.
// A symbol of another catalog currency is a mismatch, even if it starts
// with the expected one, as "$U" does with "$".
func (p *parser) stripSymbol(s string) (string, *ParseError) {
	if startsNumber(s) {
		return s, nil
	}
	own := p.symbol != "" && strings.HasPrefix(s, p.symbol)
	other := longestSymbolPrefix(s)
	switch {
	case own && len(p.symbol) >= len(other):
		return s[len(p.symbol):], nil
	case other != "":
		return "", p.fail(fmt.Sprintf("currency symbol mismatch: found %v, expected %v", other, p.symbol))
	}
	// Symbols equal to codes, as in "CHF12.00"
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	if end > 0 && s[:end] == p.code {
		return "", p.fail("missing space after currency code")
	}
	if end > 0 && knownCode(s[:end]) {
		return "", p.fail(fmt.Sprintf("currency symbol mismatch: found %v, expected %v", s[:end], p.symbol))
	}
	if s[0] == '.' {
		return "", p.fail("missing integer digits")
	}
	return "", p.fail("invalid character before number")
}

// number converts a signed decimal literal to a decimal at the currency scale.
// It reports whether nonzero digits beyond the scale were dropped.
func (p *parser) number(s string) (decimal.Decimal, bool, *ParseError) {
	neg := false
	pos := 0
	if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
		neg = s[pos] == '-'
		pos++
	}
	intStart := pos
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	intDigits := s[intStart:pos]
	fracDigits := ""
	if pos < len(s) && s[pos] == '.' {
		pos++
		fracStart := pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		fracDigits = s[fracStart:pos]
		if fracDigits == "" && pos == len(s) {
			return decimal.Decimal{}, false, p.fail("missing fractional digits")
		}
	}
	if pos < len(s) {
		switch c := s[pos]; {
		case c == '.':
			return decimal.Decimal{}, false, p.fail("multiple decimal points")
		case c == '-' || c == '+':
			if pos == intStart {
				return decimal.Decimal{}, false, p.fail("multiple sign characters")
			}
			return decimal.Decimal{}, false, p.fail("misplaced sign character")
		case pos == intStart:
			return decimal.Decimal{}, false, p.fail("invalid character in number")
		}
		return decimal.Decimal{}, false, p.fail("trailing garbage after number")
	}
	if intDigits == "" {
		if fracDigits != "" {
			return decimal.Decimal{}, false, p.fail("missing integer digits")
		}
		return decimal.Decimal{}, false, p.fail("missing digits")
	}

	// Truncation
	lost := false
	if len(fracDigits) > p.scale {
		lost = strings.Trim(fracDigits[p.scale:], "0") != ""
		fracDigits = fracDigits[:p.scale]
	}

	intDigits = strings.TrimLeft(intDigits, "0")
	if len(intDigits)+p.scale > decimal.MaxPrec {
		err := p.fail("value out of range")
		err.Err = rangeError(sign(neg))
		return decimal.Decimal{}, false, err
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if intDigits == "" {
		b.WriteByte('0')
	}
	b.WriteString(intDigits)
	if fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(fracDigits)
	}
	d, err := decimal.ParseExact(b.String(), p.scale)
	if err != nil {
		perr := p.fail("value out of range")
		perr.Err = rangeError(sign(neg))
		return decimal.Decimal{}, false, perr
	}
	return d, lost, nil
}

func sign(neg bool) int {
	if neg {
		return -1
	}
	return 1
}
