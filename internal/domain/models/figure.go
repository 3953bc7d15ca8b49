package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// NotAvailable is rendered in place of a numeric figure that has no source data.
const NotAvailable = "N/A"

// Figure is a nullable decimal that renders as "N/A" when absent, so that a
// missing value stays distinguishable from a real zero.
type Figure struct {
	decimal.NullDecimal
}

// FigureOf wraps a nullable decimal.
func FigureOf(d decimal.NullDecimal) Figure {
	return Figure{NullDecimal: d}
}

// FigureFrom wraps a known value.
func FigureFrom(d decimal.Decimal) Figure {
	return Figure{NullDecimal: decimal.NewNullDecimal(d)}
}

func (f Figure) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return json.Marshal(NotAvailable)
	}
	return f.Decimal.MarshalJSON()
}

func (f *Figure) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte(`"`+NotAvailable+`"`)) || bytes.Equal(b, []byte("null")) {
		f.NullDecimal = decimal.NullDecimal{}
		return nil
	}
	return f.NullDecimal.UnmarshalJSON(b)
}

func (f Figure) String() string {
	if !f.Valid {
		return NotAvailable
	}
	return f.Decimal.String()
}

// Number is a decimal that renders as a bare JSON number, for fields that
// always carry a value.
type Number struct {
	decimal.Decimal
}

// NumberOf wraps d.
func NumberOf(d decimal.Decimal) Number {
	return Number{Decimal: d}
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}
