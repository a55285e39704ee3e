package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/typedmoney/money"
)

const (
	keyLogLevel     = "MONEYCTL_LOG_LEVEL"
	keyRounding     = "MONEYCTL_ROUNDING"
	keyRateSource   = "MONEYCTL_RATE_SOURCE"
	keyAuditDSN     = "MONEYCTL_AUDIT_DSN"
	keyAuditBrokers = "MONEYCTL_AUDIT_BROKERS"
	keyAuditTopic   = "MONEYCTL_AUDIT_TOPIC"
	keyAuditBuffer  = "MONEYCTL_AUDIT_BUFFER"
)

// config is the resolved configuration of one invocation.
// Flags take precedence over the environment, which takes precedence
// over the .env file and then the defaults.
type config struct {
	LogLevel     string
	Rounding     money.RoundingMode
	RateSource   string
	AuditDSN     string
	AuditBrokers []string
	AuditTopic   string
	AuditBuffer  int
}

// newFlagSet declares every flag of moneyctl.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("moneyctl", pflag.ContinueOnError)
	fs.String("env-file", "", "path to a .env file (default .env)")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("mode", "half-even", "rounding mode: "+modeList())
	fs.String("source", "manual", "source recorded with the exchange rate")
	fs.String("audit-dsn", "", "PostgreSQL DSN where conversions are recorded")
	fs.Int("scale", -1, "round to this many decimal places instead of the currency default")
	fs.Bool("truncate", false, "truncate converted amounts instead of rounding")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		fs.PrintDefaults()
	}
	return fs
}

func modeList() string {
	modes := money.RoundingModes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

// parseConfig loads the .env file and resolves every setting through viper.
// Flags must already be parsed.
func parseConfig(fs *pflag.FlagSet) (config, error) {
	envFile, _ := fs.GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return config{}, fmt.Errorf("loading %v: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyRounding, "half-even")
	v.SetDefault(keyRateSource, "manual")
	v.SetDefault(keyAuditDSN, "")
	v.SetDefault(keyAuditBrokers, "")
	v.SetDefault(keyAuditTopic, "money.conversions")
	v.SetDefault(keyAuditBuffer, 64)
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		keyLogLevel:   "log-level",
		keyRounding:   "mode",
		keyRateSource: "source",
		keyAuditDSN:   "audit-dsn",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return config{}, fmt.Errorf("binding --%v: %w", flag, err)
		}
	}

	mode, err := money.ParseRoundingMode(v.GetString(keyRounding))
	if err != nil {
		return config{}, err
	}
	cfg := config{
		LogLevel:     v.GetString(keyLogLevel),
		Rounding:     mode,
		RateSource:   v.GetString(keyRateSource),
		AuditDSN:     v.GetString(keyAuditDSN),
		AuditBrokers: splitList(v.GetString(keyAuditBrokers)),
		AuditTopic:   v.GetString(keyAuditTopic),
		AuditBuffer:  v.GetInt(keyAuditBuffer),
	}
	if cfg.AuditBuffer < 1 {
		return config{}, fmt.Errorf("%v must be positive, got %v", keyAuditBuffer, cfg.AuditBuffer)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
