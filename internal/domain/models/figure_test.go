package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFigure_JSON(t *testing.T) {
	cases := []struct {
		name string
		in   Figure
		want string
	}{
		{name: "absent", in: Figure{}, want: `"N/A"`},
		{name: "zero is a value", in: FigureFrom(decimal.Zero), want: `"0"`},
		{name: "keeps precision", in: FigureFrom(decimal.RequireFromString("12345678901234.5678")), want: `"12345678901234.5678"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tc.want {
				t.Fatalf("got %s want %s", b, tc.want)
			}
		})
	}
}

func TestFigure_UnmarshalSentinel(t *testing.T) {
	var f Figure
	if err := json.Unmarshal([]byte(`"N/A"`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f.Valid {
		t.Fatalf("N/A must decode as absent")
	}
	if err := json.Unmarshal([]byte(`"7.25"`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !f.Valid || f.String() != "7.25" {
		t.Fatalf("got %+v", f)
	}
}

func TestNumber_JSON(t *testing.T) {
	cases := []struct {
		in   Number
		want string
	}{
		{in: Number{}, want: `0`},
		{in: NumberOf(decimal.RequireFromString("-1.250")), want: `-1.25`},
	}
	for _, tc := range cases {
		b, err := json.Marshal(tc.in)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != tc.want {
			t.Fatalf("got %s want %s", b, tc.want)
		}
	}
}
