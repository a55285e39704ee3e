package tracking

import (
	"context"

	"github.com/typedmoney/money"
	"go.uber.org/zap"
)

// Tracker receives conversion events.
// Track must not block for long and must not panic.
type Tracker interface {
	Track(ctx context.Context, e Event)
}

// Nop is a tracker that discards every event.
type Nop struct{}

func (Nop) Track(context.Context, Event) {}

// Multi forwards every event to each of its trackers in order.
type Multi []Tracker

func (m Multi) Track(ctx context.Context, e Event) {
	for _, t := range m {
		if t != nil {
			t.Track(ctx, e)
		}
	}
}

// LogTracker writes every event to a zap logger at info level.
type LogTracker struct {
	log *zap.Logger
}

// NewLogTracker returns a tracker logging to log.
// A nil logger discards events.
func NewLogTracker(log *zap.Logger) *LogTracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogTracker{log: log}
}

func (t *LogTracker) Track(_ context.Context, e Event) {
	fields := []zap.Field{
		zap.Stringer("id", e.ID),
		zap.String("from", e.From),
		zap.String("to", e.To),
		zap.Stringer("from_amount", e.FromAmount),
		zap.Stringer("to_amount", e.ToAmount),
		zap.Stringer("rate", e.Rate),
		zap.Time("at", e.At),
	}
	if !e.RateTime.IsZero() {
		fields = append(fields, zap.Time("rate_time", e.RateTime))
	}
	if e.RateSource != "" {
		fields = append(fields, zap.String("rate_source", e.RateSource))
	}
	t.log.Info("conversion", fields...)
}

// Convert converts amount a at rate r like [money.Convert] and reports the
// conversion to t. Nothing is reported when the conversion fails.
// A nil tracker is allowed.
func Convert[From, To money.Currency](ctx context.Context, t Tracker, a money.Amount[From], r money.Rate[From, To]) (money.Amount[To], error) {
	b, err := money.Convert(a, r)
	if err != nil {
		return money.Amount[To]{}, err
	}
	track(ctx, t, NewEvent(a, b, r))
	return b, nil
}

// ConvertRound is like [Convert] but rounds the result with the given mode.
func ConvertRound[From, To money.Currency](ctx context.Context, t Tracker, a money.Amount[From], r money.Rate[From, To], mode money.RoundingMode) (money.Amount[To], error) {
	b, err := money.ConvertRound(a, r, mode)
	if err != nil {
		return money.Amount[To]{}, err
	}
	track(ctx, t, NewEvent(a, b, r))
	return b, nil
}

func track(ctx context.Context, t Tracker, e Event) {
	if t == nil {
		return
	}
	t.Track(ctx, e)
}
