package money

import (
	"fmt"
	"sort"
	"strings"
)

//go:generate go run scripts/currency/codegen.go

// Currency is implemented by zero-size marker types, one per currency.
// It binds a currency to [Amount] and [Rate] at compile time, so amounts
// of different currencies are different Go types.
//
// The package provides a catalog of fiat currencies, cryptocurrencies and
// commodities (see [USD], [BTC], [XAU] and [Currencies]).
// Custom currencies only need the three methods below:
//
//	type Points struct{}
//
//	func (Points) Code() string    { return "PTS" }
//	func (Points) Decimals() uint8 { return 0 }
//	func (Points) Symbol() string  { return "P" }
//
// Methods must return the same constant values on every call.
// Code must be non-empty and Decimals must not exceed [MaxDecimals].
type Currency interface {
	Code() string
	Decimals() uint8
	Symbol() string
}

// MaxDecimals is the maximum number of minor unit digits of a currency.
const MaxDecimals = 18

// Kind classifies currencies in the catalog.
type Kind uint8

const (
	KindCustom Kind = iota
	KindFiat
	KindCrypto
	KindCommodity
)

func (k Kind) String() string {
	switch k {
	case KindFiat:
		return "fiat"
	case KindCrypto:
		return "crypto"
	case KindCommodity:
		return "commodity"
	}
	return "custom"
}

// Descriptor is a runtime snapshot of the properties of a currency.
// It is meant for listing and reporting, amounts never hold one.
type Descriptor struct {
	Code     string `json:"code"`
	Num      string `json:"num,omitempty"`
	Name     string `json:"name,omitempty"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	Kind     Kind   `json:"-"`
}

// String implements the [fmt.Stringer] interface.
func (d Descriptor) String() string {
	return d.Code
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (d Descriptor) MarshalText() ([]byte, error) {
	return []byte(d.Code), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Only currencies from the catalog can be unmarshaled.
func (d *Descriptor) UnmarshalText(text []byte) error {
	var ok bool
	*d, ok = LookupCurrency(string(text))
	if !ok {
		return fmt.Errorf("unmarshaling %T: %w: %q", d, ErrInvalidCurrency, text)
	}
	return nil
}

// Describe returns the descriptor of currency C.
// Catalog currencies also report their name, numeric code and kind.
func Describe[C Currency]() Descriptor {
	var c C
	d := Descriptor{
		Code:     c.Code(),
		Symbol:   c.Symbol(),
		Decimals: c.Decimals(),
	}
	if e, ok := any(c).(interface {
		Name() string
		Num() string
		Kind() Kind
	}); ok {
		d.Name, d.Num, d.Kind = e.Name(), e.Num(), e.Kind()
	}
	return d
}

// LookupCurrency returns the descriptor of a catalog currency.
// The code is matched case-insensitively, numeric codes are also accepted.
func LookupCurrency(code string) (Descriptor, bool) {
	i, ok := currLookup[strings.ToUpper(code)]
	if !ok {
		return Descriptor{}, false
	}
	return currCatalog[i], true
}

// Currencies returns the descriptors of all catalog currencies
// sorted by code.
func Currencies() []Descriptor {
	res := make([]Descriptor, len(currCatalog))
	copy(res, currCatalog)
	sort.Slice(res, func(i, j int) bool { return res[i].Code < res[j].Code })
	return res
}

// longestSymbolPrefix returns the longest catalog symbol s starts with.
func longestSymbolPrefix(s string) string {
	best := ""
	for sym := range symbolLookup {
		if len(sym) > len(best) && strings.HasPrefix(s, sym) {
			best = sym
		}
	}
	return best
}

var currLookup = func() map[string]int {
	m := make(map[string]int, 2*len(currCatalog))
	for i, d := range currCatalog {
		m[d.Code] = i
		if d.Num != "" {
			m[d.Num] = i
		}
	}
	return m
}()

var symbolLookup = func() map[string]struct{} {
	m := make(map[string]struct{}, len(currCatalog))
	for _, d := range currCatalog {
		if d.Symbol != "" && d.Symbol != d.Code {
			m[d.Symbol] = struct{}{}
		}
	}
	return m
}()

// checkCurr returns an error if C violates the [Currency] contract.
func checkCurr[C Currency]() error {
	var c C
	switch {
	case c.Code() == "":
		return fmt.Errorf("%T: %w: empty code", c, ErrInvalidCurrency)
	case c.Decimals() > MaxDecimals:
		return fmt.Errorf("%T: %w: %v decimals, maximum is %v", c, ErrInvalidCurrency, c.Decimals(), MaxDecimals)
	}
	return nil
}

// scaleOf returns the number of minor unit digits of C.
func scaleOf[C Currency]() int {
	var c C
	return int(c.Decimals())
}

func codeOf[C Currency]() string {
	var c C
	return c.Code()
}

func symbolOf[C Currency]() string {
	var c C
	return c.Symbol()
}
