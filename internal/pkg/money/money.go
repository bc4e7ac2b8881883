// Package money renders exact decimal amounts on the wire as JSON numbers with
// two fractional digits.
package money

import (
	"bytes"
	"log/slog"

	"github.com/shopspring/decimal"
)

const Scale = 2

type Amount struct {
	decimal.Decimal
}

// New wraps d unchanged. Money columns in the store are NUMERIC(10, 2), so a
// value with sub-cent digits is logged; MarshalJSON rounds it half away from zero.
func New(d decimal.Decimal) Amount {
	a := Amount{Decimal: d}
	if !a.Exact() {
		slog.Warn("amount exceeds money scale, rounding on output",
			"value", d.String(),
			"rendered", a.String())
	}
	return a
}

// FromPtr keeps absence: a nil decimal yields a nil amount (JSON null).
func FromPtr(d *decimal.Decimal) *Amount {
	if d == nil {
		return nil
	}
	a := New(*d)
	return &a
}

// Exact reports whether the amount renders without rounding.
func (a Amount) Exact() bool {
	return a.Equal(a.Round(Scale))
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(Scale)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.Decimal.UnmarshalJSON(bytes.TrimSpace(b))
}

func (a Amount) String() string {
	return a.StringFixed(Scale)
}
