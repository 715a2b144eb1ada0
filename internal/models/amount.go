package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a decimal value the marketplace API may serialize either as a
// JSON number or as a numeric string ("49.50"). Null and "" decode to zero.
type Amount struct {
	d decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{d: d}
}

func AmountFromFloat(f float64) Amount {
	return Amount{d: decimal.NewFromFloat(f)}
}

func AmountFromInt(i int64) Amount {
	return Amount{d: decimal.NewFromInt(i)}
}

func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{d: d}, nil
}

func (a Amount) Decimal() decimal.Decimal { return a.d }

func (a Amount) IsPositive() bool { return a.d.IsPositive() }

func (a Amount) IsZero() bool { return a.d.IsZero() }

// String renders the amount with two decimal places.
func (a Amount) String() string { return a.d.StringFixed(2) }

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		a.d = decimal.Zero
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("invalid amount %s: %w", b, err)
		}
		parsed, err := ParseAmount(s)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", b, err)
	}
	a.d = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.d.String()), nil
}
