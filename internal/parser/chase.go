package parser

import (
	"errors"
	"strconv"
	"time"

	"github.com/Origon/StatementParser/internal/models"
	"github.com/Origon/StatementParser/internal/scanner"
)

// Chase credit-card statements come in two layouts, distinguished by the
// producer version string their generator stamps into the document before any
// page content. Both render each transaction row as consecutive text-show
// lines: a fixed-offset (MM/dd)Tj date, a delimited description, and a
// delimited amount. The 2018 layout inserts one extra positioning line between
// the date and the description.
const (
	templateChase2017 = "chase-2017"
	sigChase2017      = "OpenText Exstream Version 7.0"

	templateChase2018 = "chase-2018"
	sigChase2018      = "OpenText Exstream Version 9.5"
)

const (
	// Header marker preceding the statement's opening/closing date line.
	chaseOpenCloseMarker = "(Opening/Closing Date)Tj"
	// Lines between the marker and the date pair: the marker line's remainder
	// and the date pair's text matrix.
	chaseDateRangeSkip = 2

	// Each transaction table opens with the description column heading.
	chaseTableStart = "(Merchant Name or Transaction Description)Tj"
	// Lines between the table-start marker and the first row: the marker
	// line's remainder, the amount heading's text matrix, and the amount
	// heading itself.
	chaseTableHeaderSkip = 3
	// Each row is preceded by one positioning line.
	chaseRowSkip = 1
)

// Markers that terminate a transaction table. The continuation marker ends the
// current page's table; the outer loop then finds the next page's table start.
// The fee and interest trailers end the last table of the statement.
var chaseTableEndMarkers = []string{
	"Total fees charged",
	"INTEREST CHARGES",
	"CONTINUED",
}

var errBadDateLine = errors.New("line does not match the (MM/dd) shape")

func extractChase2017(s *scanner.Scanner) ([]models.Transaction, error) {
	return extractChase(s, templateChase2017, 0)
}

func extractChase2018(s *scanner.Scanner) ([]models.Transaction, error) {
	return extractChase(s, templateChase2018, 1)
}

// extractChase walks a Chase layout: resolve the statement period into a
// YearMap, then consume transaction tables until no table-start marker
// remains. descSkip is the number of extra positioning lines between a row's
// date and its description.
func extractChase(s *scanner.Scanner, template string, descSkip int) ([]models.Transaction, error) {
	ym, err := chaseYearMap(s, template)
	if err != nil {
		return nil, err
	}
	txns := []models.Transaction{}
	if ym == nil {
		// Signature matched but the statement carries no period header and
		// therefore no transaction data.
		return txns, nil
	}

	for {
		if _, err := s.ScanUntil([]byte(chaseTableStart)); err != nil {
			return txns, nil
		}
		if err := s.SkipLines(chaseTableHeaderSkip); err != nil {
			return nil, err
		}
		for {
			if err := s.SkipLines(chaseRowSkip); err != nil {
				return nil, err
			}
			line, err := s.ReadLine()
			if err != nil {
				return nil, err
			}
			if containsAny(line, chaseTableEndMarkers) {
				break
			}

			date, err := chaseRowDate(line, ym, template)
			if err != nil {
				return nil, err
			}
			if descSkip > 0 {
				if err := s.SkipLines(descSkip); err != nil {
					return nil, err
				}
			}
			descLine, err := s.ReadLine()
			if err != nil {
				return nil, err
			}
			desc, err := parenField(descLine)
			if err != nil {
				return nil, &FieldError{Template: template, Field: "description", Raw: descLine, Err: err}
			}
			amtLine, err := s.ReadLine()
			if err != nil {
				return nil, err
			}
			rawAmt, err := parenField(amtLine)
			if err != nil {
				return nil, &FieldError{Template: template, Field: "amount", Raw: amtLine, Err: err}
			}
			amount, err := parseAmount(rawAmt)
			if err != nil {
				return nil, &FieldError{Template: template, Field: "amount", Raw: rawAmt, Err: err}
			}

			txns = append(txns, models.Transaction{Date: date, Description: desc, Amount: amount})
		}
	}
}

// chaseYearMap locates the statement period line and derives the YearMap. A
// stream that ends before the period header appears yields (nil, nil): the
// statement has no transaction data at all.
func chaseYearMap(s *scanner.Scanner, template string) (YearMap, error) {
	if _, err := s.ScanUntil([]byte(chaseOpenCloseMarker)); err != nil {
		return nil, nil
	}
	if err := s.SkipLines(chaseDateRangeSkip); err != nil {
		return nil, err
	}
	line, err := s.ReadLine()
	if err != nil {
		return nil, err
	}
	raw, err := parenField(line)
	if err != nil {
		return nil, &FieldError{Template: template, Field: "statement period", Raw: line, Err: err}
	}
	open, close, err := parseDateRange(raw)
	if err != nil {
		return nil, &FieldError{Template: template, Field: "statement period", Raw: raw, Err: err}
	}
	return NewYearMap(open, close), nil
}

// chaseRowDate reads a row's date from the fixed offsets of its "(MM/dd)Tj"
// line: a 2-character month at [1:3] and a 2-character day at [4:6]. The year
// comes from the statement's YearMap.
func chaseRowDate(line string, ym YearMap, template string) (models.Date, error) {
	if len(line) < 7 || line[0] != '(' || line[3] != '/' {
		return models.Date{}, &FieldError{Template: template, Field: "transaction date", Raw: line, Err: errBadDateLine}
	}
	month, err := strconv.Atoi(line[1:3])
	if err != nil {
		return models.Date{}, &FieldError{Template: template, Field: "transaction date", Raw: line, Err: err}
	}
	day, err := strconv.Atoi(line[4:6])
	if err != nil {
		return models.Date{}, &FieldError{Template: template, Field: "transaction date", Raw: line, Err: err}
	}
	return ym.Resolve(time.Month(month), day)
}
