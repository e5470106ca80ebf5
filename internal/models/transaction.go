package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Date is a calendar date. It renders as YYYY-MM-DD in both CSV and JSON
// output.
type Date struct {
	time.Time
}

// NewDate returns the given calendar date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MarshalCSV implements the gocsv field marshaller.
func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}

// MarshalJSON renders the date without a time component.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts the YYYY-MM-DD form MarshalJSON emits.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Transaction is a single statement transaction. It is never mutated after
// construction; the amount is an exact decimal value, not a float. Multi-line
// source descriptions are joined with "\n", and the order transactions appear
// in a statement is the order they are emitted.
type Transaction struct {
	Date        Date            `csv:"Date" json:"date"`
	Description string          `csv:"Description" json:"description"`
	Amount      decimal.Decimal `csv:"Amount" json:"amount"`
}
