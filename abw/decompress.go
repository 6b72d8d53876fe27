package abw

import (
	"bytes"
	"compress/gzip"
	"io"
)

// Decompressor wraps a raw Input and transparently inflates gzip-compressed
// AbiWord documents. On construction it attempts a full streaming inflate
// with the 32-KiB-window auto-detect setting (mirrored here by
// compress/gzip, which only accepts the gzip member header, the Go
// equivalent of zlib's 16+MAX_WBITS mode). If the input is not a valid
// gzip stream, Decompressor falls back to forwarding every call straight
// to the raw Input.
//
// When inflate succeeds, the inflated bytes are materialized into an
// in-memory buffer and served from there, because the two parsing passes
// both need to seek back to the start and a gzip reader cannot rewind.
type Decompressor struct {
	input  Input
	buf    []byte
	offset int64
	inline bool // true: buf holds inflated bytes; false: pass through to input
}

// NewDecompressor attempts to inflate input and returns a Decompressor
// ready for pass one. It never returns an error: a failed inflate attempt
// silently degrades to pass-through, matching the ABWZlibStream contract.
func NewDecompressor(input Input) *Decompressor {
	d := &Decompressor{input: input}

	// Read the whole stream up front so a partial/corrupt gzip member
	// doesn't leave the underlying input partially consumed.
	raw, err := io.ReadAll(asReader{input})
	if err != nil {
		d.inline = false
		_, _ = input.Seek(0, SeekSet)
		return d
	}

	gz, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		d.inline = false
		_, _ = input.Seek(0, SeekSet)
		return d
	}
	inflated, err := io.ReadAll(gz)
	if err != nil {
		d.inline = false
		_, _ = input.Seek(0, SeekSet)
		return d
	}

	d.inline = true
	d.buf = inflated
	_, _ = input.Seek(0, SeekSet)
	return d
}

// asReader adapts Input to io.Reader for gzip detection.
type asReader struct{ Input }

func (d *Decompressor) Read(p []byte) (int, error) {
	if !d.inline {
		return d.input.Read(p)
	}
	if d.offset >= int64(len(d.buf)) {
		return 0, io.EOF
	}
	n := copy(p, d.buf[d.offset:])
	d.offset += int64(n)
	return n, nil
}

func (d *Decompressor) Seek(offset int64, whence Whence) (int64, error) {
	if !d.inline {
		return d.input.Seek(offset, whence)
	}
	switch whence {
	case SeekSet:
		d.offset = offset
	case SeekCur:
		d.offset += offset
	}
	if d.offset < 0 {
		d.offset = 0
	}
	if d.offset > int64(len(d.buf)) {
		d.offset = int64(len(d.buf))
	}
	return d.offset, nil
}

func (d *Decompressor) Tell() int64 {
	if !d.inline {
		return d.input.Tell()
	}
	return d.offset
}

func (d *Decompressor) Eof() bool {
	if !d.inline {
		return d.input.Eof()
	}
	return d.offset >= int64(len(d.buf))
}
