// Package batch enumerates statement files and accumulates their extracted
// transactions. Files are parsed independently; only the read-only signature
// registry is shared between them.
package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Origon/StatementParser/internal/models"
	"github.com/Origon/StatementParser/internal/parser"
)

// Result summarizes a batch run. Transactions preserves per-file source order;
// order across files follows the enumeration order of their paths.
type Result struct {
	Transactions []models.Transaction
	Parsed       int
	Skipped      []string
}

// Processor parses statement files and accumulates their transactions.
type Processor struct {
	Log *logrus.Logger
}

// ProcessPath handles a single .pdf file or a folder of them. Files with no
// registered signature are skipped and recorded; any other parse failure
// aborts the batch and names the offending file. Nothing is written on
// failure, so no partially-parsed transactions are silently dropped.
func (p *Processor) ProcessPath(input string) (*Result, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input %q: %w", input, err)
	}

	files := []string{input}
	if info.IsDir() {
		files, err = listStatements(input)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .pdf files found under %q", input)
		}
	}

	res := &Result{Transactions: []models.Transaction{}}
	for _, file := range files {
		txns, err := p.processFile(file)
		if err != nil {
			if errors.Is(err, parser.ErrUnrecognized) {
				p.Log.WithField("file", file).Warn("No registered statement signature matched; skipping")
				res.Skipped = append(res.Skipped, file)
				continue
			}
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		res.Transactions = append(res.Transactions, txns...)
		res.Parsed++
	}
	return res, nil
}

func (p *Processor) processFile(path string) ([]models.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	template, err := parser.Detect(data)
	if err != nil {
		return nil, err
	}
	p.Log.WithFields(logrus.Fields{"file": path, "template": template}).Info("Recognized statement")

	txns, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}
	p.Log.WithFields(logrus.Fields{"file": path, "count": len(txns)}).Info("Extracted transactions")
	return txns, nil
}

// listStatements walks dir for .pdf files in deterministic path order.
func listStatements(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".pdf") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
