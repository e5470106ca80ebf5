package parser

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test statements are assembled from the same literal operator sequences the
// real producers emit: positioned text fields as a "1 0 0 1 x y Tm" line
// followed by a "(text)Tj" line, tables bracketed by their heading and trailer
// text, and (for Navy Federal) page content wrapped in flate-compressed
// stream/endstream blocks.

const (
	chaseProducer2017 = "OpenText Exstream Version 7.0.605 64-bit"
	chaseProducer2018 = "OpenText Exstream Version 9.5.120 64-bit"
)

type chaseRow struct {
	date string // MM/dd
	desc string
	amt  string
}

// chaseStatement renders a synthetic Chase statement. The 2018 layout places
// one extra positioning line between a row's date and its description. Every
// table but the last ends with a continuation trailer; the last ends with the
// fee summary trailer.
func chaseStatement(producer, period string, extraDescLine bool, tables ...[]chaseRow) []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	fmt.Fprintf(&b, "1 0 obj\n<< /Producer (%s) >>\nendobj\n", producer)
	y := 660.3
	if period != "" {
		b.WriteString("BT\n")
		fmt.Fprintf(&b, "1 0 0 1 320.1 %.1f Tm\n", y)
		b.WriteString("(Opening/Closing Date)Tj\n")
		fmt.Fprintf(&b, "1 0 0 1 430.6 %.1f Tm\n", y)
		fmt.Fprintf(&b, "(%s)Tj\n", period)
		b.WriteString("ET\n")
	}
	for ti, rows := range tables {
		y -= 24
		b.WriteString("BT\n")
		fmt.Fprintf(&b, "1 0 0 1 36.0 %.1f Tm\n", y)
		b.WriteString("(Merchant Name or Transaction Description)Tj\n")
		fmt.Fprintf(&b, "1 0 0 1 500.2 %.1f Tm\n", y)
		b.WriteString("($ Amount)Tj\n")
		for _, r := range rows {
			y -= 12
			fmt.Fprintf(&b, "1 0 0 1 36.0 %.1f Tm\n", y)
			fmt.Fprintf(&b, "(%s)Tj\n", r.date)
			if extraDescLine {
				fmt.Fprintf(&b, "1 0 0 1 120.5 %.1f Tm\n", y)
			}
			fmt.Fprintf(&b, "(%s)Tj\n", r.desc)
			fmt.Fprintf(&b, "(%s)Tj\n", r.amt)
		}
		y -= 12
		fmt.Fprintf(&b, "1 0 0 1 36.0 %.1f Tm\n", y)
		if ti < len(tables)-1 {
			b.WriteString("(ACCOUNT ACTIVITY - CONTINUED)Tj\n")
		} else {
			b.WriteString("(Total fees charged in 2018)Tj\n")
		}
		b.WriteString("ET\n")
	}
	return b.Bytes()
}

type navyRow struct {
	date string // MM/dd/yy
	desc []string
	amt  string
}

const navyDescX = "135.9"

// navyPageContent renders one page's uncompressed content: a transaction
// table headed by the Post Date row and closed by a filled rule.
func navyPageContent(rows []navyRow) []byte {
	var b bytes.Buffer
	b.WriteString("BT\n/F4 7.97 Tf\n")
	y := 700.5
	field := func(x, text string) {
		fmt.Fprintf(&b, "1 0 0 1 %s %.1f Tm\n(%s)Tj\n", x, y, text)
	}
	field("36.0", "Post Date")
	field("80.0", "Trans Date")
	field(navyDescX, "Description")
	field("437.1", "Amount")
	for _, r := range rows {
		y -= 12.3
		field("36.0", r.date)
		field(navyDescX, r.desc[0])
		for _, cont := range r.desc[1:] {
			y -= 8.4
			field(navyDescX, cont)
		}
		field("437.1", r.amt)
	}
	y -= 9.9
	fmt.Fprintf(&b, "36.0 %.1f 540.0 0.72 re f\n", y)
	b.WriteString("ET\n")
	return b.Bytes()
}

// navyStatement assembles a synthetic year-end summary: the leading pages
// with no content streams, then one compressed content stream per page.
func navyStatement(t *testing.T, pages ...[]byte) []byte {
	t.Helper()
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	b.WriteString("1 0 obj\n<< /Title (Navy Federal Credit Union Year-End Summary) >>\nendobj\n")
	obj := 2
	for i := 0; i < nfLeadingPages; i++ {
		fmt.Fprintf(&b, "%d 0 obj\n<< /Type /Page /MediaBox [0 0 612 792] >>\nendobj\n", obj)
		obj++
	}
	for _, content := range pages {
		var comp bytes.Buffer
		zw := zlib.NewWriter(&comp)
		_, err := zw.Write(content)
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		fmt.Fprintf(&b, "%d 0 obj\n<< /Type /Page /Contents %d 0 R >>\nendobj\n", obj, obj+1)
		fmt.Fprintf(&b, "%d 0 obj\n<< /Length %d /Filter /FlateDecode >>\nstream\n", obj+1, comp.Len())
		b.Write(comp.Bytes())
		b.WriteString("\nendstream\nendobj\n")
		obj += 2
	}
	return b.Bytes()
}
