package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/Origon/StatementParser/internal/models"
)

// CSVWriter writes transactions as delimited text, one row per transaction
// with Date, Description, and Amount columns. encoding/csv quoting covers
// descriptions containing delimiters or line breaks.
type CSVWriter struct {
	// Comma is the field delimiter; the zero value means ','.
	Comma rune
}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, txns []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, txns)
}

// Write writes transactions in CSV format to the given writer. An empty
// transaction list still produces the header row.
func (w *CSVWriter) Write(out io.Writer, txns []models.Transaction) error {
	cw := csv.NewWriter(out)
	if w.Comma != 0 {
		cw.Comma = w.Comma
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	if err := gocsv.MarshalCSV(&txns, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
