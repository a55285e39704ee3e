package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func sampleEvent() Event {
	return Event{
		ID:         uuid.MustParse("6f1c7c9e-4b1e-4c8e-9a55-2b0a3f6f9d10"),
		From:       "USD",
		To:         "EUR",
		FromAmount: decimal.MustParse("100.00"),
		ToAmount:   decimal.MustParse("85.00"),
		Rate:       decimal.MustParse("0.85"),
		RateTime:   time.Unix(1700000000, 0).UTC(),
		RateSource: "ecb",
		At:         fixedNow,
	}
}

func TestSQLSink_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		e := sampleEvent()
		mock.ExpectExec(`INSERT INTO conversion_events`).
			WithArgs(e.ID.String(), "USD", "EUR", "100.00", "85.00", "0.85", sqlmock.AnyArg(), "ecb", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewSQLSink(db, nil).Append(ctx, e))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		db, mock := newMockDB(t)
		e := sampleEvent()
		mock.ExpectExec(`INSERT INTO conversion_events`).
			WillReturnError(errors.New("duplicate key"))

		err := NewSQLSink(db, nil).Append(ctx, e)
		require.Error(t, err)
		assert.Contains(t, err.Error(), e.ID.String())
		assert.Contains(t, err.Error(), "duplicate key")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLSink_List(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "from_code", "to_code", "from_amount", "to_amount", "rate", "rate_time", "rate_source", "at"}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		want := sampleEvent()
		rows := sqlmock.NewRows(columns).
			AddRow(want.ID.String(), "USD", "EUR", "100.00", "85.00", "0.85", want.RateTime, "ecb", want.At).
			AddRow("0b6e2c52-3f0e-4d55-8d7c-6a2f1b9e0c44", "EUR", "JPY", "10", "1612", "161.2345", nil, "", want.At)
		mock.ExpectQuery(`SELECT id, from_code, to_code`).
			WithArgs(10).
			WillReturnRows(rows)

		got, err := NewSQLSink(db, nil).List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, want, got[0])
		assert.Equal(t, "EUR/JPY", got[1].Pair())
		assert.Equal(t, "161.2345", got[1].Rate.String())
		assert.True(t, got[1].RateTime.IsZero())
		assert.Empty(t, got[1].RateSource)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bad row", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows(columns).
			AddRow("not-a-uuid", "USD", "EUR", "1", "1", "1", nil, "", fixedNow)
		mock.ExpectQuery(`SELECT id`).WillReturnRows(rows)

		_, err := NewSQLSink(db, nil).List(ctx, 1)
		assert.ErrorContains(t, err, "parsing id")
	})

	t.Run("bad amount", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), "USD", "EUR", "1,5", "1", "1", nil, "", fixedNow)
		mock.ExpectQuery(`SELECT id`).WillReturnRows(rows)

		_, err := NewSQLSink(db, nil).List(ctx, 1)
		assert.ErrorContains(t, err, "parsing from_amount")
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT id`).WillReturnError(errors.New("relation does not exist"))

		_, err := NewSQLSink(db, nil).List(ctx, 1)
		assert.ErrorContains(t, err, "relation does not exist")
	})
}

func TestSQLSink_CreateTable(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS conversion_events`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, NewSQLSink(db, nil).CreateTable(context.Background()))

	mock.ExpectExec(`CREATE TABLE`).WillReturnError(errors.New("permission denied"))
	assert.ErrorContains(t, NewSQLSink(db, nil).CreateTable(context.Background()), "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSink_AsyncTracker(t *testing.T) {
	db, mock := newMockDB(t)
	e := sampleEvent()
	mock.ExpectExec(`INSERT INTO conversion_events`).
		WithArgs(e.ID.String(), "USD", "EUR", "100.00", "85.00", "0.85", sqlmock.AnyArg(), "ecb", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tr := NewAsyncTracker(NewSQLSink(db, nil), nil, 4)
	tr.Track(context.Background(), e)
	require.NoError(t, tr.Close(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
