// Package root contains the root command for the application.
package root

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Origon/StatementParser/internal/batch"
	"github.com/Origon/StatementParser/internal/config"
	"github.com/Origon/StatementParser/internal/parser"
	"github.com/Origon/StatementParser/internal/writer"
)

var (
	outputFlag    string
	delimiterFlag string
)

// Cmd is the root command: convert a statement file or folder to CSV.
var Cmd = &cobra.Command{
	Use:   "statementparser <input.pdf | folder>",
	Short: "Extract transactions from bank statement PDFs into CSV",
	Long: `Extract structured transactions (date, description, amount) from bank
statement PDFs and write them to a delimited text file.

Statements are recognized by byte signatures of known layouts; unrecognized
files in a folder are skipped with a warning. Supported templates:

  ` + strings.Join(parser.Templates(), "\n  "),
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	Cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output CSV file path (defaults next to the input)")
	Cmd.Flags().StringVarP(&delimiterFlag, "delimiter", "d", ",", "Output field delimiter")
}

func run(cmd *cobra.Command, args []string) error {
	log := config.Logger
	input := args[0]

	proc := &batch.Processor{Log: log}
	res, err := proc.ProcessPath(input)
	if err != nil {
		return err
	}

	outPath := outputFlag
	if outPath == "" {
		outPath = defaultOutput(input)
	}

	delim := ','
	if delimiterFlag != "" {
		delim = rune(delimiterFlag[0])
	}
	w := &writer.CSVWriter{Comma: delim}
	if err := w.WriteToFile(outPath, res.Transactions); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"output": outPath,
		"count":  len(res.Transactions),
		"files":  res.Parsed,
	}).Info("Wrote transactions")
	if len(res.Skipped) > 0 {
		log.Warnf("Skipped %d unrecognized file(s): %s", len(res.Skipped), strings.Join(res.Skipped, ", "))
	}
	return nil
}

// defaultOutput derives the output path: <input>.csv next to a file, or
// transactions.csv inside a folder.
func defaultOutput(input string) string {
	if info, err := os.Stat(input); err == nil && info.IsDir() {
		return filepath.Join(input, "transactions.csv")
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".csv"
}
