package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"github.com/typedmoney/money"
	"github.com/typedmoney/money/tracking"
)

// amountOps runs the single-currency commands for one static currency type.
type amountOps interface {
	parse(s string) (string, error)
	round(d decimal.Decimal, scale int, mode money.RoundingMode) (string, error)
	split(s string, parts int) ([]string, error)
}

// pairOps runs the commands that need a currency pair.
type pairOps interface {
	convert(ctx context.Context, t tracking.Tracker, amount string, r rateArgs) (string, error)
	invert(rate string) (string, error)
}

// rateArgs describes the rate supplied on the command line.
type rateArgs struct {
	factor   string
	source   string
	at       time.Time
	mode     money.RoundingMode
	truncate bool
}

type currencyOps[C money.Currency] struct{}

func (currencyOps[C]) parse(s string) (string, error) {
	a, err := money.Parse[C](s)
	if errors.Is(err, money.ErrPrecision) {
		return a.String() + " (truncated)", nil
	}
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

// round rounds d to scale digits, or to the currency scale if scale is negative.
func (currencyOps[C]) round(d decimal.Decimal, scale int, mode money.RoundingMode) (string, error) {
	a, err := money.NewAmountFromDecimal[C](d)
	if err != nil {
		return "", err
	}
	if scale < 0 {
		return a.Round(mode).String(), nil
	}
	if desc := money.Describe[C](); scale > int(desc.Decimals) {
		return "", fmt.Errorf("scale %v exceeds the %v decimal places of %v", scale, desc.Decimals, desc.Code)
	}
	b, err := a.RoundTo(scale, mode)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func (currencyOps[C]) split(s string, parts int) ([]string, error) {
	a, err := money.Parse[C](s)
	if err != nil {
		return nil, err
	}
	shares, err := a.Split(parts)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(shares))
	for i, sh := range shares {
		lines[i] = sh.String()
	}
	return lines, nil
}

type pairConv[From, To money.Currency] struct{}

func (pairConv[From, To]) convert(ctx context.Context, t tracking.Tracker, amount string, args rateArgs) (string, error) {
	a, err := money.Parse[From](amount)
	if err != nil {
		return "", err
	}
	r, err := money.ParseRate[From, To](args.factor)
	if err != nil {
		return "", err
	}
	r = r.WithMetadata(args.at.Unix(), args.source)

	var b money.Amount[To]
	if args.truncate {
		b, err = tracking.Convert(ctx, t, a, r)
	} else {
		b, err = tracking.ConvertRound(ctx, t, a, r, args.mode)
	}
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func (pairConv[From, To]) invert(rate string) (string, error) {
	r, err := money.ParseRate[From, To](rate)
	if err != nil {
		return "", err
	}
	inv, err := r.Inverse()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v/%v %v", codeOf[To](), codeOf[From](), inv.Factor().Trim(0)), nil
}

// registry maps currency codes and "FROM/TO" pairs to their operations.
// Only the types instantiated here can be used from the command line.
type registry struct {
	currencies map[string]amountOps
	pairs      map[string]pairOps
}

func codeOf[C money.Currency]() string {
	return money.Describe[C]().Code
}

func addCurrency[C money.Currency](reg *registry) {
	reg.currencies[codeOf[C]()] = currencyOps[C]{}
}

// addPair registers both directions of a pair.
func addPair[A, B money.Currency](reg *registry) {
	reg.pairs[codeOf[A]()+"/"+codeOf[B]()] = pairConv[A, B]{}
	reg.pairs[codeOf[B]()+"/"+codeOf[A]()] = pairConv[B, A]{}
}

func newRegistry() *registry {
	reg := &registry{
		currencies: make(map[string]amountOps),
		pairs:      make(map[string]pairOps),
	}

	addCurrency[money.USD](reg)
	addCurrency[money.EUR](reg)
	addCurrency[money.GBP](reg)
	addCurrency[money.JPY](reg)
	addCurrency[money.CHF](reg)
	addCurrency[money.CAD](reg)
	addCurrency[money.AUD](reg)
	addCurrency[money.CNY](reg)
	addCurrency[money.INR](reg)
	addCurrency[money.BHD](reg)
	addCurrency[money.BTC](reg)
	addCurrency[money.ETH](reg)
	addCurrency[money.USDC](reg)
	addCurrency[money.XAU](reg)

	addPair[money.USD, money.EUR](reg)
	addPair[money.USD, money.GBP](reg)
	addPair[money.USD, money.JPY](reg)
	addPair[money.USD, money.CHF](reg)
	addPair[money.USD, money.CAD](reg)
	addPair[money.USD, money.CNY](reg)
	addPair[money.USD, money.INR](reg)
	addPair[money.EUR, money.GBP](reg)
	addPair[money.EUR, money.JPY](reg)
	addPair[money.EUR, money.CHF](reg)
	addPair[money.GBP, money.JPY](reg)
	addPair[money.AUD, money.USD](reg)
	addPair[money.BTC, money.USD](reg)
	addPair[money.BTC, money.EUR](reg)
	addPair[money.ETH, money.USD](reg)
	addPair[money.USDC, money.USD](reg)
	addPair[money.XAU, money.USD](reg)

	return reg
}

func (reg *registry) currency(code string) (amountOps, error) {
	ops, ok := reg.currencies[strings.ToUpper(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not registered, use one of %v",
			money.ErrInvalidCurrency, code, strings.Join(reg.codes(), " "))
	}
	return ops, nil
}

func (reg *registry) pair(from, to string) (pairOps, error) {
	key := strings.ToUpper(from) + "/" + strings.ToUpper(to)
	ops, ok := reg.pairs[key]
	if !ok {
		return nil, fmt.Errorf("%w: pair %v is not registered", money.ErrInvalidRate, key)
	}
	return ops, nil
}

func (reg *registry) codes() []string {
	codes := make([]string, 0, len(reg.currencies))
	for c := range reg.currencies {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
