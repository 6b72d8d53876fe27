package abw

import (
	"bytes"
	"io"
	"os"
)

// Whence selects the origin of a Seek offset.
type Whence int

const (
	SeekSet Whence = iota
	SeekCur
)

// Input is the random-access byte source the core reads from. It is the
// out-of-scope transport abstraction named in the external interfaces: any
// seekable byte source can implement it.
type Input interface {
	// Read returns up to len(p) bytes; short reads are allowed. It
	// returns (0, io.EOF) once the stream is exhausted.
	Read(p []byte) (n int, err error)
	Seek(offset int64, whence Whence) (int64, error)
	Tell() int64
	Eof() bool
}

// FileInput adapts an *os.File to Input.
type FileInput struct {
	f   *os.File
	eof bool
}

func NewFileInput(f *os.File) *FileInput {
	return &FileInput{f: f}
}

func OpenFileInput(path string) (*FileInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewFileInput(f), nil
}

func (i *FileInput) Read(p []byte) (int, error) {
	n, err := i.f.Read(p)
	if err == io.EOF {
		i.eof = true
	}
	return n, err
}

func (i *FileInput) Seek(offset int64, whence Whence) (int64, error) {
	var w int
	switch whence {
	case SeekSet:
		w = io.SeekStart
	case SeekCur:
		w = io.SeekCurrent
	}
	off, err := i.f.Seek(offset, w)
	if err == nil {
		i.eof = false
	}
	return off, err
}

func (i *FileInput) Tell() int64 {
	off, _ := i.f.Seek(0, io.SeekCurrent)
	return off
}

func (i *FileInput) Eof() bool {
	return i.eof
}

func (i *FileInput) Close() error {
	return i.f.Close()
}

// BytesInput adapts an in-memory byte slice to Input; used by tests and by
// internal/dump's LoadInput.
type BytesInput struct {
	r *bytes.Reader
}

func NewBytesInput(b []byte) *BytesInput {
	return &BytesInput{r: bytes.NewReader(b)}
}

func (i *BytesInput) Read(p []byte) (int, error) {
	return i.r.Read(p)
}

func (i *BytesInput) Seek(offset int64, whence Whence) (int64, error) {
	var w int
	switch whence {
	case SeekSet:
		w = io.SeekStart
	case SeekCur:
		w = io.SeekCurrent
	}
	return i.r.Seek(offset, w)
}

func (i *BytesInput) Tell() int64 {
	off, _ := i.r.Seek(0, io.SeekCurrent)
	return off
}

func (i *BytesInput) Eof() bool {
	return i.r.Len() == 0
}
