// Package tracking records currency conversions for auditing.
//
// A conversion performed through [Convert] or [ConvertRound] produces one
// [Event] that is handed to a [Tracker]. Trackers cannot fail a conversion:
// an event that cannot be recorded is logged and dropped.
package tracking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/typedmoney/money"
)

// Event describes a single conversion.
// RateTime is the zero time and RateSource is empty when the rate carried
// no such metadata.
type Event struct {
	ID         uuid.UUID
	From       string
	To         string
	FromAmount decimal.Decimal
	ToAmount   decimal.Decimal
	Rate       decimal.Decimal
	RateTime   time.Time
	RateSource string
	At         time.Time
}

// now is replaced in tests.
var now = time.Now

// NewEvent returns the event for converting amount from into amount to at rate r.
func NewEvent[From, To money.Currency](from money.Amount[From], to money.Amount[To], r money.Rate[From, To]) Event {
	e := Event{
		ID:         uuid.New(),
		From:       money.Describe[From]().Code,
		To:         money.Describe[To]().Code,
		FromAmount: from.Decimal(),
		ToAmount:   to.Decimal(),
		Rate:       r.Factor(),
		At:         now().UTC(),
	}
	if ts, ok := r.Timestamp(); ok {
		e.RateTime = time.Unix(ts, 0).UTC()
	}
	if src, ok := r.Source(); ok {
		e.RateSource = src
	}
	return e
}

// Pair returns the currency pair of the event, for example "USD/EUR".
func (e Event) Pair() string {
	return e.From + "/" + e.To
}

func (e Event) String() string {
	return fmt.Sprintf("%v %v %v -> %v %v at %v", e.ID, e.FromAmount, e.From, e.ToAmount, e.To, e.Rate)
}
