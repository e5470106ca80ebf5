package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanUntil(t *testing.T) {
	s := New([]byte("abcdefabc"))

	skipped, err := s.ScanUntil([]byte("cd"))
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), skipped)

	skipped, err = s.ScanUntil([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, []byte("ef"), skipped)
	assert.Equal(t, 0, s.Remaining())
}

func TestScanUntilNotFound(t *testing.T) {
	s := New([]byte("abcdef"))

	skipped, err := s.ScanUntil([]byte("zz"))
	assert.ErrorIs(t, err, ErrEndOfStream)
	assert.Equal(t, []byte("abcdef"), skipped)
	assert.Equal(t, 0, s.Remaining())

	// A drained scanner keeps failing without panicking.
	_, err = s.ScanUntil([]byte("a"))
	assert.ErrorIs(t, err, ErrEndOfStream)
}

func TestScanUntilConsecutive(t *testing.T) {
	s := New([]byte("xxyy"))

	skipped, err := s.ScanUntil([]byte("xx"))
	require.NoError(t, err)
	assert.Empty(t, skipped)

	skipped, err = s.ScanUntil([]byte("yy"))
	require.NoError(t, err)
	assert.Empty(t, skipped)
}

func TestScanUntilAnyEarliestCompletionWins(t *testing.T) {
	// "abz" completes before "abc" ever could, even though "abc" is listed
	// first.
	s := New([]byte("xxabzabc"))

	skipped, idx, err := s.ScanUntilAny([]byte("abc"), []byte("abz"))
	require.NoError(t, err)
	assert.Equal(t, []byte("xx"), skipped)
	assert.Equal(t, 1, idx)
}

func TestScanUntilAnyShortTargetBeatsEarlierStart(t *testing.T) {
	// "bb" starts earlier in the target list, but the single-byte "a"
	// completes first in the stream.
	s := New([]byte("xaybb"))

	skipped, idx, err := s.ScanUntilAny([]byte("bb"), []byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), skipped)
	assert.Equal(t, 1, idx)
}

func TestScanUntilAnySameEndTieBreaksOnIndex(t *testing.T) {
	// "bc" and "abc" complete on the same byte; the lower index wins.
	s := New([]byte("xabcy"))

	skipped, idx, err := s.ScanUntilAny([]byte("bc"), []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, []byte("xa"), skipped)
	assert.Equal(t, 0, idx)

	rest, err := s.ScanUntil([]byte("y"))
	require.NoError(t, err)
	assert.Empty(t, rest)
}

func TestScanUntilAnyNoMatch(t *testing.T) {
	s := New([]byte("abcdef"))

	skipped, idx, err := s.ScanUntilAny([]byte("zz"), []byte("qq"))
	assert.ErrorIs(t, err, ErrEndOfStream)
	assert.Equal(t, -1, idx)
	assert.Equal(t, []byte("abcdef"), skipped)
	assert.Equal(t, 0, s.Remaining())
}

func TestScanUntilAnyIgnoresEmptyTarget(t *testing.T) {
	s := New([]byte("ab"))

	skipped, idx, err := s.ScanUntilAny([]byte{}, []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), skipped)
	assert.Equal(t, 1, idx)
}

func TestScanUntilAnyTargetSpansStart(t *testing.T) {
	// A match may not reach back before the scanner's current position.
	s := New([]byte("abab"))

	_, err := s.ScanUntil([]byte("ab"))
	require.NoError(t, err)

	skipped, idx, err := s.ScanUntilAny([]byte("bab"), []byte("ab"))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, 1, idx)
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines []string
	}{
		{"lf", "one\ntwo\n", []string{"one", "two"}},
		{"cr", "one\rtwo\r", []string{"one", "two"}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"mixed", "one\r\ntwo\nthree\r", []string{"one", "two", "three"}},
		{"empty lines", "\n\nx\n", []string{"", "", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New([]byte(tt.input))
			for _, want := range tt.lines {
				line, err := s.ReadLine()
				require.NoError(t, err)
				assert.Equal(t, want, line)
			}
			assert.Equal(t, 0, s.Remaining())
		})
	}
}

func TestReadLineUnterminated(t *testing.T) {
	s := New([]byte("one\npartial"))

	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	// The partial trailing line is consumed and discarded.
	line, err = s.ReadLine()
	assert.ErrorIs(t, err, ErrEndOfStream)
	assert.Empty(t, line)
	assert.Equal(t, 0, s.Remaining())
}

func TestSkipLines(t *testing.T) {
	s := New([]byte("one\ntwo\nthree\n"))

	require.NoError(t, s.SkipLines(2))
	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "three", line)

	assert.ErrorIs(t, s.SkipLines(1), ErrEndOfStream)
}
