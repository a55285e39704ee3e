package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typedmoney/money"
	"github.com/typedmoney/money/internal/logger"
	"github.com/typedmoney/money/tracking"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	clearEnv(t)
	t.Setenv(keyLogLevel, "error")
	saved := logger.Log
	t.Cleanup(func() { logger.Log = saved })

	var out bytes.Buffer
	err := run(context.Background(), args, &out)
	return out.String(), err
}

func TestRun_Parse(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"parse", "USD", "$12.34"}, "$12.34 USD\n"},
		{[]string{"parse", "usd", "USD 1000"}, "$1000.00 USD\n"},
		{[]string{"parse", "JPY", "¥1500"}, "¥1500 JPY\n"},
		{[]string{"parse", "USD", "12.345"}, "$12.34 USD (truncated)\n"},
		{[]string{"parse", "--", "EUR", "-0.5"}, "€-0.50 EUR\n"},
	}
	for _, tt := range tests {
		got, err := runCmd(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, got, tt.args)
	}

	_, err := runCmd(t, "parse", "EUR", "12.34 USD")
	assert.ErrorIs(t, err, money.ErrParse)
	_, err = runCmd(t, "parse", "MXN", "1")
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)
	_, err = runCmd(t, "parse", "USD")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Round(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"round", "USD", "2.675"}, "$2.68 USD\n"},
		{[]string{"round", "--mode", "down", "USD", "2.675"}, "$2.67 USD\n"},
		{[]string{"round", "--mode", "half-down", "USD", "2.675"}, "$2.67 USD\n"},
		{[]string{"round", "--mode", "floor", "--", "USD", "-2.671"}, "$-2.68 USD\n"},
		{[]string{"round", "--scale", "0", "--mode", "half-up", "USD", "12.50"}, "$13.00 USD\n"},
		{[]string{"round", "--scale", "0", "USD", "12.50"}, "$12.00 USD\n"},
		{[]string{"round", "JPY", "1234.5"}, "¥1234 JPY\n"},
		{[]string{"round", "--mode", "ceiling", "BTC", "0.000000001"}, "₿0.00000001 BTC\n"},
	}
	for _, tt := range tests {
		got, err := runCmd(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, got, tt.args)
	}

	_, err := runCmd(t, "round", "--scale", "3", "USD", "1")
	assert.ErrorContains(t, err, "exceeds the 2 decimal places of USD")
	_, err = runCmd(t, "round", "USD", "1,5")
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
	_, err = runCmd(t, "round", "--mode", "nearest", "USD", "1")
	assert.ErrorContains(t, err, "unknown mode")
}

func TestRun_Split(t *testing.T) {
	got, err := runCmd(t, "split", "USD", "100", "3")
	require.NoError(t, err)
	assert.Equal(t, "$33.34 USD\n$33.33 USD\n$33.33 USD\n", got)

	got, err = runCmd(t, "split", "--", "EUR", "-1.00", "3")
	require.NoError(t, err)
	assert.Equal(t, "€-0.34 EUR\n€-0.33 EUR\n€-0.33 EUR\n", got)

	_, err = runCmd(t, "split", "USD", "100", "three")
	assert.ErrorIs(t, err, errUsage)
	_, err = runCmd(t, "split", "USD", "100", "0")
	assert.Error(t, err)
}

func TestRun_Convert(t *testing.T) {
	saved := now
	now = func() time.Time { return time.Unix(1700000000, 0) }
	t.Cleanup(func() { now = saved })

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "USD", "EUR", "250", "0.9185"}, "€229.62 EUR\n"},
		{[]string{"convert", "--mode", "half-up", "USD", "EUR", "250", "0.9185"}, "€229.63 EUR\n"},
		{[]string{"convert", "--truncate", "usd", "jpy", "12.34", "151.237"}, "¥1866 JPY\n"},
		{[]string{"convert", "--source", "ecb", "EUR", "USD", "€19.99", "1.0845"}, "$21.68 USD\n"},
		{[]string{"convert", "BTC", "USD", "0.5", "64250.5"}, "$32125.25 USD\n"},
	}
	for _, tt := range tests {
		got, err := runCmd(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, got, tt.args)
	}

	_, err := runCmd(t, "convert", "USD", "XAG", "1", "0.03")
	assert.ErrorIs(t, err, money.ErrInvalidRate)
	_, err = runCmd(t, "convert", "USD", "EUR", "1", "0")
	assert.ErrorIs(t, err, money.ErrInvalidRate)
	_, err = runCmd(t, "convert", "USD", "EUR", "1.001", "0.9")
	assert.ErrorIs(t, err, money.ErrPrecision)
	_, err = runCmd(t, "convert", "USD", "JPY", "99999999999999999", "1000")
	assert.ErrorIs(t, err, money.ErrOverflow)
}

func TestRun_Invert(t *testing.T) {
	got, err := runCmd(t, "invert", "USD", "EUR", "0.8")
	require.NoError(t, err)
	assert.Equal(t, "EUR/USD 1.25\n", got)

	_, err = runCmd(t, "invert", "--", "USD", "EUR", "-1")
	assert.ErrorIs(t, err, money.ErrInvalidRate)
}

func TestRun_Currencies(t *testing.T) {
	got, err := runCmd(t, "currencies")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, len(money.Currencies())+1)
	assert.Equal(t, []string{"CODE", "NUM", "SYMBOL", "DECIMALS", "KIND", "NAME"}, strings.Fields(lines[0]))

	var usd []string
	for _, l := range lines[1:] {
		if f := strings.Fields(l); f[0] == "USD" {
			usd = f
		}
	}
	assert.Equal(t, []string{"USD", "840", "$", "2", "fiat", "US", "Dollar"}, usd)
}

func TestRun_Usage(t *testing.T) {
	_, err := runCmd(t)
	assert.ErrorIs(t, err, errUsage)
	_, err = runCmd(t, "exchange")
	assert.ErrorIs(t, err, errUsage)
	_, err = runCmd(t, "--nope", "currencies")
	assert.Error(t, err)
	_, err = runCmd(t, "--help")
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestNewTracker(t *testing.T) {
	tr, closeTracker, err := newTracker(context.Background(), config{AuditBuffer: 1})
	require.NoError(t, err)
	require.IsType(t, tracking.Multi{}, tr)
	assert.Len(t, tr.(tracking.Multi), 1)
	assert.NoError(t, closeTracker(context.Background()))

	tr, closeTracker, err = newTracker(context.Background(), config{
		AuditBrokers: []string{"localhost:1"},
		AuditTopic:   "test",
		AuditBuffer:  1,
	})
	require.NoError(t, err)
	assert.Len(t, tr.(tracking.Multi), 2)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = closeTracker(ctx)
}

func TestRegistry(t *testing.T) {
	reg := newRegistry()
	for _, code := range reg.codes() {
		d, ok := money.LookupCurrency(code)
		assert.True(t, ok, code)
		assert.Equal(t, code, d.Code)
	}
	for key := range reg.pairs {
		from, to, _ := strings.Cut(key, "/")
		_, err := reg.pair(to, from)
		assert.NoError(t, err, "pair %v has no reverse", key)
		_, err = reg.currency(from)
		assert.NoError(t, err, "pair %v uses an unregistered currency", key)
	}
}
