// Package scanner provides the byte-level primitives the statement extractors
// are built on: forward-only scans for literal byte sequences and line-oriented
// reads over raw PDF bytes. No PDF object model is involved; the extractors
// work directly against the literal operator sequences their templates emit.
package scanner

import (
	"bytes"
	"errors"
)

// ErrEndOfStream is reported when a scan or line read runs out of bytes before
// finding its target. For extractors this usually means a truncated statement.
var ErrEndOfStream = errors.New("unexpected end of stream")

// Scanner is a forward-only cursor over an in-memory byte sequence. It never
// seeks backward; content recovered from a compressed block gets a fresh
// Scanner of its own.
type Scanner struct {
	data []byte
	pos  int
}

// New returns a Scanner positioned at the start of data.
func New(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Remaining reports how many bytes are left to consume.
func (s *Scanner) Remaining() int {
	return len(s.data) - s.pos
}

// ScanUntil advances past the next occurrence of target and returns the bytes
// consumed before it. The target itself is consumed and discarded. If the
// stream ends before target is found, the remaining bytes are consumed and
// returned along with ErrEndOfStream.
func (s *Scanner) ScanUntil(target []byte) ([]byte, error) {
	idx := bytes.Index(s.data[s.pos:], target)
	if idx < 0 {
		skipped := s.data[s.pos:]
		s.pos = len(s.data)
		return skipped, ErrEndOfStream
	}
	skipped := s.data[s.pos : s.pos+idx]
	s.pos += idx + len(target)
	return skipped, nil
}

// ScanUntilAny advances past the first target to complete, scanning
// left-to-right through the stream. The winner is the target whose full
// sequence ends earliest, regardless of its position in targets; when two
// targets complete on the same terminal byte, the lowest target index wins.
// Returns the bytes consumed before the match and the index of the matched
// target. If no target occurs before end of stream, all remaining bytes are
// consumed and returned with index -1 and ErrEndOfStream.
//
// Targets must be non-empty; empty targets never match.
func (s *Scanner) ScanUntilAny(targets ...[]byte) ([]byte, int, error) {
	for i := s.pos; i < len(s.data); i++ {
		for t, target := range targets {
			n := len(target)
			if n == 0 || i+1 < n || i+1-n < s.pos {
				continue
			}
			if bytes.Equal(s.data[i+1-n:i+1], target) {
				skipped := s.data[s.pos : i+1-n]
				s.pos = i + 1
				return skipped, t, nil
			}
		}
	}
	skipped := s.data[s.pos:]
	s.pos = len(s.data)
	return skipped, -1, ErrEndOfStream
}

// ReadLine consumes and returns the next line, terminated by \r, \n, or \r\n.
// The terminator is consumed but excluded from the result. Text is treated as
// single-byte ASCII. If the stream ends before any terminator, the partial
// line is consumed and discarded and ErrEndOfStream is returned; callers never
// see an unterminated line.
func (s *Scanner) ReadLine() (string, error) {
	for i := s.pos; i < len(s.data); i++ {
		switch s.data[i] {
		case '\n':
			line := string(s.data[s.pos:i])
			s.pos = i + 1
			return line, nil
		case '\r':
			line := string(s.data[s.pos:i])
			s.pos = i + 1
			if s.pos < len(s.data) && s.data[s.pos] == '\n' {
				s.pos++
			}
			return line, nil
		}
	}
	s.pos = len(s.data)
	return "", ErrEndOfStream
}

// SkipLines discards the next n lines.
func (s *Scanner) SkipLines(n int) error {
	for i := 0; i < n; i++ {
		if _, err := s.ReadLine(); err != nil {
			return err
		}
	}
	return nil
}
