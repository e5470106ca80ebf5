package parser

import (
	"errors"
	"strings"
	"time"

	"github.com/Origon/StatementParser/internal/models"
	"github.com/Origon/StatementParser/internal/scanner"
)

// Navy Federal year-end summaries keep their transaction tables inside
// flate-compressed page content objects. Every text piece is positioned by a
// "1 0 0 1 x y Tm" line followed by a "(text)Tj" line; a table ends with a
// filled rule. Description continuation lines sit at exactly the description
// column's x position, which is how multi-line descriptions are detected.
const (
	templateNavyFederal = "navy-federal-year-end"
	sigNavyFederal      = "Navy Federal Credit Union"

	nfPageMarker = "/Type /Page "
	// The first seven pages of a year-end summary never carry a transaction
	// table.
	nfLeadingPages = 7

	nfStreamStart = "stream"
	nfStreamEnd   = "endstream"

	nfTableHeader = "(Post Date)Tj"
	nfDescLabel   = "(Description)Tj"
	nfAmountLabel = "(Amount)Tj"

	// A positioned text field begins with the identity text matrix prefix; the
	// rule closing a table is drawn with a filled rectangle.
	nfFieldStart  = "1 0 0 1 "
	nfClosingRule = " re f"
)

var (
	errBadTextMatrix = errors.New("malformed text matrix line")
	errNoDescColumn  = errors.New("table header has no Description column")
)

func extractNavyFederal(s *scanner.Scanner) ([]models.Transaction, error) {
	txns := []models.Transaction{}
	for i := 0; i < nfLeadingPages; i++ {
		if _, err := s.ScanUntil([]byte(nfPageMarker)); err != nil {
			return txns, nil
		}
	}
	for {
		if _, err := s.ScanUntil([]byte(nfPageMarker)); err != nil {
			return txns, nil
		}
		content, err := nfPageContent(s)
		if err != nil {
			return nil, err
		}
		pageTxns, err := nfExtractPage(content)
		if err != nil {
			return nil, err
		}
		txns = append(txns, pageTxns...)
	}
}

// nfPageContent locates the page's stream/endstream block and inflates it.
// The line read after the stream keyword consumes only its end-of-line marker;
// the compressed payload follows immediately.
func nfPageContent(s *scanner.Scanner) (*scanner.Scanner, error) {
	if _, err := s.ScanUntil([]byte(nfStreamStart)); err != nil {
		return nil, err
	}
	if _, err := s.ReadLine(); err != nil {
		return nil, err
	}
	block, err := s.ScanUntil([]byte(nfStreamEnd))
	if err != nil {
		return nil, err
	}
	return scanner.Inflate(block)
}

// nfExtractPage consumes every transaction table in a page's decompressed
// content. A page with no Post Date heading simply has no tables.
func nfExtractPage(content *scanner.Scanner) ([]models.Transaction, error) {
	var txns []models.Transaction
	for {
		if _, err := content.ScanUntil([]byte(nfTableHeader)); err != nil {
			return txns, nil
		}
		descX, err := nfDescriptionX(content)
		if err != nil {
			return nil, err
		}
		// Skip the remaining header fields; Amount is the last column.
		if _, err := content.ScanUntil([]byte(nfAmountLabel)); err != nil {
			return nil, err
		}
		tableTxns, err := nfExtractTable(content, descX)
		if err != nil {
			return nil, err
		}
		txns = append(txns, tableTxns...)
	}
}

// nfDescriptionX walks the header fields after the Post Date heading until the
// Description column label and returns that field's x-position token exactly
// as it appears in the stream. Continuation lines of a description are
// positioned at this x, byte for byte.
func nfDescriptionX(content *scanner.Scanner) (string, error) {
	for {
		x, line, err := nfField(content)
		if err != nil {
			return "", err
		}
		if line == nfDescLabel {
			return x, nil
		}
		if line == nfAmountLabel {
			return "", &FieldError{Template: templateNavyFederal, Field: "table header", Raw: line, Err: errNoDescColumn}
		}
	}
}

// nfExtractTable reads rows until the table's closing rule. Each row is a date
// field, a description field, zero or more continuation fields at the
// description x position, and exactly one amount field.
func nfExtractTable(content *scanner.Scanner, descX string) ([]models.Transaction, error) {
	var txns []models.Transaction
	for {
		_, idx, err := content.ScanUntilAny([]byte(nfFieldStart), []byte(nfClosingRule))
		if err != nil {
			return nil, err
		}
		if idx == 1 {
			return txns, nil
		}

		_, dateLine, err := nfFieldBody(content)
		if err != nil {
			return nil, err
		}
		rawDate, err := parenField(dateLine)
		if err != nil {
			return nil, &FieldError{Template: templateNavyFederal, Field: "post date", Raw: dateLine, Err: err}
		}
		posted, err := time.Parse("01/02/06", rawDate)
		if err != nil {
			return nil, &FieldError{Template: templateNavyFederal, Field: "post date", Raw: rawDate, Err: err}
		}

		_, descLine, err := nfField(content)
		if err != nil {
			return nil, err
		}
		desc, err := parenField(descLine)
		if err != nil {
			return nil, &FieldError{Template: templateNavyFederal, Field: "description", Raw: descLine, Err: err}
		}

		for {
			x, line, err := nfField(content)
			if err != nil {
				return nil, err
			}
			if x == descX {
				cont, err := parenField(line)
				if err != nil {
					return nil, &FieldError{Template: templateNavyFederal, Field: "description", Raw: line, Err: err}
				}
				desc += "\n" + cont
				continue
			}
			rawAmt, err := parenField(line)
			if err != nil {
				return nil, &FieldError{Template: templateNavyFederal, Field: "amount", Raw: line, Err: err}
			}
			amt, err := parseAmount(rawAmt)
			if err != nil {
				return nil, &FieldError{Template: templateNavyFederal, Field: "amount", Raw: rawAmt, Err: err}
			}
			txns = append(txns, models.Transaction{
				Date:        models.NewDate(posted.Year(), posted.Month(), posted.Day()),
				Description: desc,
				Amount:      amt,
			})
			break
		}
	}
}

// nfField consumes the next positioned text field: the bytes up to the field
// start marker, the text matrix line, and the text-show line.
func nfField(content *scanner.Scanner) (x, line string, err error) {
	if _, err = content.ScanUntil([]byte(nfFieldStart)); err != nil {
		return "", "", err
	}
	return nfFieldBody(content)
}

// nfFieldBody reads a field whose start marker has already been consumed. The
// x token is returned verbatim; continuation detection compares it
// byte-for-byte, never numerically.
func nfFieldBody(content *scanner.Scanner) (x, line string, err error) {
	tm, err := content.ReadLine()
	if err != nil {
		return "", "", err
	}
	end := strings.IndexByte(tm, ' ')
	if end <= 0 {
		return "", "", &FieldError{Template: templateNavyFederal, Field: "text matrix", Raw: tm, Err: errBadTextMatrix}
	}
	line, err = content.ReadLine()
	if err != nil {
		return "", "", err
	}
	return tm[:end], line, nil
}
