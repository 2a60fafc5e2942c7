// Package money implements exact fixed-point monetary amounts stored as
// int64 minor units (cents). Amounts never transit a binary float: JSON,
// SQL and string conversions all work on the decimal text form.
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a currency-agnostic monetary value in minor units.
type Amount int64

var ErrInvalidAmount = errors.New("invalid monetary amount")

// FromUnits converts whole monetary units into an Amount.
func FromUnits(units int64) Amount {
	return Amount(units * 100)
}

// Parse reads a decimal string like "500", "500.5" or "500.05" into an
// Amount. At most two fractional digits are accepted.
func Parse(value string) (Amount, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrInvalidAmount
	}

	negative := false
	if strings.HasPrefix(value, "-") {
		negative = true
		value = value[1:]
	}

	whole, frac, _ := strings.Cut(value, ".")
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	cents := int64(0)

	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, value)
		}

		for len(frac) < 2 {
			frac += "0"
		}

		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
		}
	}

	total := units*100 + cents
	if negative {
		total = -total
	}

	return Amount(total), nil
}

// String renders the amount as a plain decimal with two fractional digits.
func (a Amount) String() string {
	cents := int64(a)

	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func (a Amount) IsNegative() bool {
	return a < 0
}

// MarshalJSON emits the decimal string form so consumers never see a
// binary float.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON accepts both a quoted decimal string and a bare JSON
// number literal.
func (a *Amount) UnmarshalJSON(data []byte) error {
	text := string(data)

	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}

	if text == "null" {
		return nil
	}

	parsed, err := Parse(text)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// Value stores the amount as its decimal text form, which Postgres casts
// to NUMERIC without precision loss.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan reads NUMERIC columns back. lib/pq hands numerics over as []byte.
func (a *Amount) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*a = 0

		return nil
	case []byte:
		parsed, err := Parse(string(value))
		if err != nil {
			return err
		}

		*a = parsed

		return nil
	case string:
		parsed, err := Parse(value)
		if err != nil {
			return err
		}

		*a = parsed

		return nil
	case int64:
		*a = FromUnits(value)

		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidAmount, src)
	}
}
