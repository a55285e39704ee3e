// Command moneyctl parses, rounds, splits and converts money amounts
// from the command line.
//
// Usage:
//
//	moneyctl [flags] parse CODE TEXT
//	moneyctl [flags] round CODE DECIMAL
//	moneyctl [flags] split CODE AMOUNT PARTS
//	moneyctl [flags] convert FROM TO AMOUNT RATE
//	moneyctl [flags] invert FROM TO RATE
//	moneyctl currencies
//
// Negative amounts must follow "--", for example "moneyctl split USD -- -1.00 3".
// Every setting can also be given as a MONEYCTL_* environment variable
// or in a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/govalues/decimal"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/pflag"
	"github.com/typedmoney/money"
	"github.com/typedmoney/money/internal/logger"
	"github.com/typedmoney/money/tracking"
)

const usage = `usage: moneyctl [flags] parse|round|split|convert|invert|currencies ARGS...`

// closeTimeout bounds the time spent flushing audit records on exit.
const closeTimeout = 5 * time.Second

var errUsage = errors.New("invalid usage")

// now is replaced in tests.
var now = time.Now

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "moneyctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := parseConfig(fs)
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("%w: missing command\n%v", errUsage, usage)
	}
	cmd, rest := rest[0], rest[1:]
	logger.Log.Debugw("running command", "command", cmd, "args", rest)

	reg := newRegistry()
	switch cmd {
	case "parse":
		return runParse(reg, rest, stdout)
	case "round":
		scale, _ := fs.GetInt("scale")
		return runRound(reg, rest, scale, cfg.Rounding, stdout)
	case "split":
		return runSplit(reg, rest, stdout)
	case "convert":
		truncate, _ := fs.GetBool("truncate")
		return runConvert(ctx, reg, cfg, rest, truncate, stdout)
	case "invert":
		return runInvert(reg, rest, stdout)
	case "currencies":
		return runCurrencies(stdout)
	default:
		return fmt.Errorf("%w: unknown command %q\n%v", errUsage, cmd, usage)
	}
}

func checkArgs(cmd string, args []string, want ...string) error {
	if len(args) != len(want) {
		return fmt.Errorf("%w: %v takes %v arguments %v, got %v", errUsage, cmd, len(want), want, len(args))
	}
	return nil
}

func runParse(reg *registry, args []string, w io.Writer) error {
	if err := checkArgs("parse", args, "CODE", "TEXT"); err != nil {
		return err
	}
	ops, err := reg.currency(args[0])
	if err != nil {
		return err
	}
	s, err := ops.parse(args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func runRound(reg *registry, args []string, scale int, mode money.RoundingMode, w io.Writer) error {
	if err := checkArgs("round", args, "CODE", "DECIMAL"); err != nil {
		return err
	}
	ops, err := reg.currency(args[0])
	if err != nil {
		return err
	}
	d, err := decimal.Parse(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", money.ErrInvalidAmount, err)
	}
	s, err := ops.round(d, scale, mode)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func runSplit(reg *registry, args []string, w io.Writer) error {
	if err := checkArgs("split", args, "CODE", "AMOUNT", "PARTS"); err != nil {
		return err
	}
	ops, err := reg.currency(args[0])
	if err != nil {
		return err
	}
	parts, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: parts must be an integer: %w", errUsage, err)
	}
	lines, err := ops.split(args[1], parts)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func runConvert(ctx context.Context, reg *registry, cfg config, args []string, truncate bool, w io.Writer) (err error) {
	if err := checkArgs("convert", args, "FROM", "TO", "AMOUNT", "RATE"); err != nil {
		return err
	}
	ops, err := reg.pair(args[0], args[1])
	if err != nil {
		return err
	}

	t, closeTracker, err := newTracker(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		cctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if cerr := closeTracker(cctx); cerr != nil {
			logger.Log.Errorw("closing audit trackers", "error", cerr)
			err = errors.Join(err, cerr)
		}
	}()

	s, err := ops.convert(ctx, t, args[2], rateArgs{
		factor:   args[3],
		source:   cfg.RateSource,
		at:       now(),
		mode:     cfg.Rounding,
		truncate: truncate,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func runInvert(reg *registry, args []string, w io.Writer) error {
	if err := checkArgs("invert", args, "FROM", "TO", "RATE"); err != nil {
		return err
	}
	ops, err := reg.pair(args[0], args[1])
	if err != nil {
		return err
	}
	s, err := ops.invert(args[2])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func runCurrencies(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNUM\tSYMBOL\tDECIMALS\tKIND\tNAME")
	for _, d := range money.Currencies() {
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\t%v\n", d.Code, d.Num, d.Symbol, d.Decimals, d.Kind, d.Name)
	}
	return tw.Flush()
}

// newTracker returns the tracker used for conversions: every conversion is
// logged, and also recorded to PostgreSQL and Kafka when those are configured.
// The returned function flushes and releases the audit sinks.
func newTracker(ctx context.Context, cfg config) (tracking.Tracker, func(context.Context) error, error) {
	log := logger.Log.Desugar()
	trackers := tracking.Multi{tracking.NewLogTracker(log)}
	var closers []func(context.Context) error
	closeAll := func(ctx context.Context) error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c(ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.AuditDSN != "" {
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.AuditDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to audit database: %w", err)
		}
		sink := tracking.NewSQLSink(db, log)
		if err := sink.CreateTable(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		async := tracking.NewAsyncTracker(sink, log, cfg.AuditBuffer)
		trackers = append(trackers, async)
		closers = append(closers, async.Close, func(context.Context) error { return db.Close() })
		logger.Log.Debugw("recording conversions to database")
	}

	if len(cfg.AuditBrokers) > 0 {
		kw := tracking.NewKafkaWriter(cfg.AuditBrokers, cfg.AuditTopic)
		async := tracking.NewAsyncTracker(tracking.NewKafkaSink(kw, log), log, cfg.AuditBuffer)
		trackers = append(trackers, async)
		closers = append(closers, async.Close, func(context.Context) error { return kw.Close() })
		logger.Log.Debugw("publishing conversions", "brokers", cfg.AuditBrokers, "topic", cfg.AuditTopic)
	}

	return trackers, closeAll, nil
}
