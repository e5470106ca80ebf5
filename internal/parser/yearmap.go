package parser

import (
	"time"

	"github.com/Origon/StatementParser/internal/models"
)

// YearMap resolves month/day-only transaction dates against the statement
// period. It is built once per statement from the period's opening and closing
// dates and read-only afterwards.
type YearMap map[time.Month]int

// NewYearMap walks month by month from the opening date to the closing date
// inclusive. A period that straddles a year boundary therefore carries both
// years: 12/15/22 - 01/10/23 maps December to 2022 and January to 2023.
func NewYearMap(open, close time.Time) YearMap {
	ym := YearMap{}
	year, month := open.Year(), open.Month()
	for year < close.Year() || (year == close.Year() && month <= close.Month()) {
		ym[month] = year
		if month == time.December {
			month = time.January
			year++
		} else {
			month++
		}
	}
	return ym
}

// Resolve returns the full calendar date for a month/day pair. A month with no
// mapping means the transaction falls outside the statement period, which is
// an error.
func (ym YearMap) Resolve(month time.Month, day int) (models.Date, error) {
	year, ok := ym[month]
	if !ok {
		return models.Date{}, &YearError{Month: month}
	}
	return models.NewDate(year, month, day), nil
}
