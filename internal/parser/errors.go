package parser

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnrecognized is returned when no registered statement signature occurs in
// the input. It is non-fatal to a batch: the caller can skip the file and
// continue.
var ErrUnrecognized = errors.New("statement format not recognized")

// FieldError reports a date, description, or amount field that does not match
// the lexical shape its template requires. It carries the offending raw text
// for diagnosability and is fatal for the statement.
type FieldError struct {
	Template string
	Field    string
	Raw      string
	Err      error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s %q: %v", e.Template, e.Field, e.Raw, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// YearError reports a transaction month that is absent from the statement's
// derived year map. Fatal for the statement.
type YearError struct {
	Month time.Month
}

func (e *YearError) Error() string {
	return fmt.Sprintf("no year mapping for month %s", e.Month)
}
