package parser

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	errNoTextField  = errors.New("no delimited text field")
	errBadDateRange = errors.New("not a 'start - end' date pair")
)

// parenField returns the literal text of a text-show line such as
// "(COFFEE SHOP)Tj": everything between the opening parenthesis and the last
// closing parenthesis.
func parenField(line string) (string, error) {
	open := strings.IndexByte(line, '(')
	close := strings.LastIndexByte(line, ')')
	if open < 0 || close <= open {
		return "", errNoTextField
	}
	return line[open+1 : close], nil
}

// parseAmount parses a literal currency value into an exact decimal,
// tolerating a leading "$" and "," group separators. Monetary values never go
// through binary floating point.
func parseAmount(raw string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(raw))
	return decimal.NewFromString(clean)
}

// parseDateRange parses an opening/closing pair like "12/04/17 - 01/03/18".
func parseDateRange(raw string) (open, close time.Time, err error) {
	parts := strings.Split(raw, " - ")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, errBadDateRange
	}
	open, err = time.Parse("01/02/06", strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	close, err = time.Parse("01/02/06", strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return open, close, nil
}

// containsAny reports whether line contains any of the given markers.
func containsAny(line string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
