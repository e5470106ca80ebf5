package scanner

import (
	"bytes"
	"compress/flate"
	"errors"
	"fmt"
	"io"
)

// ErrCorruptStream is reported when an embedded compressed block cannot be
// decompressed. This is fatal for the statement being extracted.
var ErrCorruptStream = errors.New("corrupt compressed stream")

// Inflate recovers the literal bytes of a compressed PDF content stream. The
// producers we support wrap their deflate data in a 2-byte zlib-style header,
// so the first two bytes of block are discarded before decompression. The
// trailing checksum, if any, is ignored. Returns a fresh Scanner over the
// decompressed content.
func Inflate(block []byte) (*Scanner, error) {
	if len(block) < 2 {
		return nil, fmt.Errorf("%w: block of %d bytes is shorter than its header", ErrCorruptStream, len(block))
	}
	r := flate.NewReader(bytes.NewReader(block[2:]))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	return New(out), nil
}
