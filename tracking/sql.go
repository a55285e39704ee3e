package tracking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Schema creates the table used by [SQLSink].
// Amounts and rates are stored as exact numerics.
const Schema = `CREATE TABLE IF NOT EXISTS conversion_events (
	id          UUID PRIMARY KEY,
	from_code   TEXT NOT NULL,
	to_code     TEXT NOT NULL,
	from_amount NUMERIC NOT NULL,
	to_amount   NUMERIC NOT NULL,
	rate        NUMERIC NOT NULL,
	rate_time   TIMESTAMPTZ,
	rate_source TEXT NOT NULL DEFAULT '',
	at          TIMESTAMPTZ NOT NULL
)`

const insertEvent = `INSERT INTO conversion_events
	(id, from_code, to_code, from_amount, to_amount, rate, rate_time, rate_source, at)
	VALUES (:id, :from_code, :to_code, :from_amount, :to_amount, :rate, :rate_time, :rate_source, :at)`

const selectEvents = `SELECT id, from_code, to_code, from_amount, to_amount, rate, rate_time, rate_source, at
	FROM conversion_events ORDER BY at DESC LIMIT ?`

// eventRow is the database form of an Event.
type eventRow struct {
	ID         string       `db:"id"`
	From       string       `db:"from_code"`
	To         string       `db:"to_code"`
	FromAmount string       `db:"from_amount"`
	ToAmount   string       `db:"to_amount"`
	Rate       string       `db:"rate"`
	RateTime   sql.NullTime `db:"rate_time"`
	RateSource string       `db:"rate_source"`
	At         time.Time    `db:"at"`
}

func newEventRow(e Event) eventRow {
	return eventRow{
		ID:         e.ID.String(),
		From:       e.From,
		To:         e.To,
		FromAmount: e.FromAmount.String(),
		ToAmount:   e.ToAmount.String(),
		Rate:       e.Rate.String(),
		RateTime:   sql.NullTime{Time: e.RateTime, Valid: !e.RateTime.IsZero()},
		RateSource: e.RateSource,
		At:         e.At,
	}
}

func (r eventRow) event() (Event, error) {
	var (
		e   Event
		err error
	)
	if e.ID, err = uuid.Parse(r.ID); err != nil {
		return Event{}, fmt.Errorf("parsing id: %w", err)
	}
	if e.FromAmount, err = decimal.Parse(r.FromAmount); err != nil {
		return Event{}, fmt.Errorf("parsing from_amount: %w", err)
	}
	if e.ToAmount, err = decimal.Parse(r.ToAmount); err != nil {
		return Event{}, fmt.Errorf("parsing to_amount: %w", err)
	}
	if e.Rate, err = decimal.Parse(r.Rate); err != nil {
		return Event{}, fmt.Errorf("parsing rate: %w", err)
	}
	e.From = r.From
	e.To = r.To
	if r.RateTime.Valid {
		e.RateTime = r.RateTime.Time.UTC()
	}
	e.RateSource = r.RateSource
	e.At = r.At.UTC()
	return e, nil
}

// SQLSink stores events in the conversion_events table.
type SQLSink struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewSQLSink returns a sink writing to db. The logger may be nil.
func NewSQLSink(db *sqlx.DB, log *zap.Logger) *SQLSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &SQLSink{db: db, log: log}
}

// CreateTable executes [Schema].
func (s *SQLSink) CreateTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("creating conversion_events: %w", err)
	}
	return nil
}

func (s *SQLSink) Append(ctx context.Context, e Event) error {
	row := newEventRow(e)
	_, err := s.db.NamedExecContext(ctx, insertEvent, row)
	if err != nil {
		s.log.Error("inserting conversion event",
			zap.String("query", insertEvent),
			zap.String("id", row.ID),
			zap.Error(err),
		)
		return fmt.Errorf("inserting event %v: %w", row.ID, err)
	}
	s.log.Debug("inserted conversion event", zap.String("id", row.ID), zap.String("pair", e.Pair()))
	return nil
}

// List returns up to limit events, most recent first.
func (s *SQLSink) List(ctx context.Context, limit int) ([]Event, error) {
	query := s.db.Rebind(selectEvents)
	var rows []eventRow
	if err := s.db.SelectContext(ctx, &rows, query, limit); err != nil {
		s.log.Error("listing conversion events",
			zap.String("query", query),
			zap.Int("limit", limit),
			zap.Error(err),
		)
		return nil, fmt.Errorf("listing events: %w", err)
	}
	events := make([]Event, 0, len(rows))
	for _, r := range rows {
		e, err := r.event()
		if err != nil {
			return nil, fmt.Errorf("reading event %v: %w", r.ID, err)
		}
		events = append(events, e)
	}
	return events, nil
}
