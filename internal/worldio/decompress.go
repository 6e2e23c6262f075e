package worldio

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

// maxDecompressedChunk bounds an inflated chunk payload (spec.md §4.1,
// "Maximum decompressed size bound is 1 MiB").
const maxDecompressedChunk = 1 << 20

// inflate decompresses a chunk payload, auto-detecting gzip vs zlib framing
// the way zlib's windowBits=32+MAX_WBITS does, rather than trusting the
// region file's one-byte compression scheme field.
func inflate(compressed []byte) ([]byte, error) {
	var r io.ReadCloser
	var err error
	if len(compressed) >= 2 && compressed[0] == 0x1f && compressed[1] == 0x8b {
		r, err = gzip.NewReader(bytes.NewReader(compressed))
	} else {
		r, err = zlib.NewReader(bytes.NewReader(compressed))
	}
	if err != nil {
		return nil, errors.Wrap(err, "open compressed chunk stream")
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, maxDecompressedChunk+1))
	if err != nil {
		return nil, errors.Wrap(err, "inflate chunk payload")
	}
	if len(out) > maxDecompressedChunk {
		return nil, errors.New("decompressed chunk exceeds 1 MiB bound")
	}
	return out, nil
}
