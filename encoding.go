package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/govalues/decimal"
)

// amountJSON is the structured representation of an amount.
// The value keeps digits of a working scale, so it round-trips exactly.
type amountJSON struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// MarshalJSON implements the [json.Marshaler] interface and returns
// an object like {"value":"12.34","currency":"USD"}.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(amountJSON{Value: a.num().String(), Currency: codeOf[C]()})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It returns an error wrapping [ErrCurrencyMismatch] if the object names
// a currency other than C. A null value leaves the amount unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount[C]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v amountJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w: %w", a, ErrInvalidAmount, err)
	}
	if v.Currency != codeOf[C]() {
		return fmt.Errorf("unmarshaling %T: %w: found %q, want %q", a, ErrCurrencyMismatch, v.Currency, codeOf[C]())
	}
	d, err := decimal.Parse(v.Value)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w: %w", a, ErrInvalidAmount, err)
	}
	b, err := newAmountSafe[C](d)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", a, err)
	}
	*a = b
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface and returns
// the canonical representation, see [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount[C]) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Unlike [Parse], it treats dropped digits as an error and leaves the
// amount unchanged.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount[C]) UnmarshalText(text []byte) error {
	b, err := Parse[C](string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", a, err)
	}
	*a = b
	return nil
}

// Scan implements the [sql.Scanner] interface.
// The column holds the decimal value only; the currency comes from the Go type.
// Strings, byte slices, integers and floats are supported.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount[C]) Scan(value any) error {
	var b Amount[C]
	var err error
	switch value := value.(type) {
	case string:
		b, err = scanDecimal[C](value)
	case []byte:
		b, err = scanDecimal[C](string(value))
	case int64:
		b, err = NewAmount[C](value, 0)
	case float64:
		b, err = NewAmountFromFloat64[C](value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T", *a, NullAmount[C]{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, *a, err)
	}
	*a = b
	return nil
}

func scanDecimal[C Currency](s string) (Amount[C], error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	return newAmountSafe[C](d)
}

// Value implements the [driver.Valuer] interface and returns the decimal
// value as a string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount[C]) Value() (driver.Value, error) {
	return a.num().String(), nil
}

// NullAmount represents an amount that can be null.
// Its zero value is null.
// NullAmount is not thread-safe.
type NullAmount[C Currency] struct {
	Amount Amount[C]
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Amount.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullAmount[C]) Scan(value any) error {
	if value == nil {
		n.Amount = Amount[C]{}
		n.Valid = false
		return nil
	}
	var a Amount[C]
	if err := a.Scan(value); err != nil {
		return err
	}
	n.Amount, n.Valid = a, true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Amount.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullAmount[C]) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Amount.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullAmount[C]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Amount = Amount[C]{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Amount.UnmarshalJSON(data)
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullAmount[C]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Amount.MarshalJSON()
}
