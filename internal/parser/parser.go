// Package parser recognizes bank statement layouts inside raw PDF bytes and
// extracts their transactions. Each supported template registers a
// distinguishing byte signature together with a hand-tuned extractor that
// walks the template's positional text operators. The set of templates is
// closed and compiled in; supporting a new layout means adding one
// signature/extractor pair here without touching the existing ones.
package parser

import (
	"github.com/Origon/StatementParser/internal/models"
	"github.com/Origon/StatementParser/internal/scanner"
)

// extractFunc runs a template's extractor over the post-signature stream.
type extractFunc func(*scanner.Scanner) ([]models.Transaction, error)

// registration binds a template's signature to its extractor. A signature is a
// literal byte sequence that occurs in its template before any
// transaction-bearing region and in no other supported template.
type registration struct {
	template  string
	signature []byte
	extract   extractFunc
}

// registry is built once at process start and read-only thereafter. Its order
// fixes the deterministic tie-break when two signatures would complete on the
// same byte.
var registry = []registration{
	{templateChase2017, []byte(sigChase2017), extractChase2017},
	{templateChase2018, []byte(sigChase2018), extractChase2018},
	{templateNavyFederal, []byte(sigNavyFederal), extractNavyFederal},
}

var signatures = func() [][]byte {
	sigs := make([][]byte, len(registry))
	for i, reg := range registry {
		sigs[i] = reg.signature
	}
	return sigs
}()

// Templates lists the registered template names in registry order.
func Templates() []string {
	names := make([]string, len(registry))
	for i, reg := range registry {
		names[i] = reg.template
	}
	return names
}

// Parse scans data for a registered statement signature and runs the matching
// extractor on the remainder of the stream. Returns ErrUnrecognized when no
// signature occurs before the end of the input; any other error is fatal for
// this statement and is never retried.
func Parse(data []byte) ([]models.Transaction, error) {
	s := scanner.New(data)
	_, idx, err := s.ScanUntilAny(signatures...)
	if err != nil {
		return nil, ErrUnrecognized
	}
	return registry[idx].extract(s)
}

// Detect reports which template's signature matches data, without extracting.
func Detect(data []byte) (string, error) {
	s := scanner.New(data)
	_, idx, err := s.ScanUntilAny(signatures...)
	if err != nil {
		return "", ErrUnrecognized
	}
	return registry[idx].template, nil
}
