package input

import (
	"bufio"
	"errors"
	"io"
	"sync"
)

// DefaultChunkSize is the number of bytes a Feed reads per Fill unless told
// otherwise.
const DefaultChunkSize = 4096

// Feed turns an io.Reader into a series of Bytes inputs. The current input
// holds all data read so far that has not been collected. It is flagged as
// end-of-data only after the reader has reported io.EOF, so parsers see it as
// a streaming chunk until then.
//
// Bytes handed out by a Feed are never overwritten, so inputs returned
// earlier remain valid after later calls to Fill and Collect.
type Feed struct {
	r     *bufio.Reader
	lock  sync.Mutex
	buf   []byte
	chunk []byte
	eof   bool
}

// NewFeed creates a Feed reading DefaultChunkSize bytes at a time.
func NewFeed(r io.Reader) *Feed {
	return NewFeedSize(r, DefaultChunkSize)
}

// NewFeedSize creates a Feed reading at most size bytes per Fill.
func NewFeedSize(r io.Reader, size int) *Feed {
	if size <= 0 {
		size = DefaultChunkSize
	}

	return &Feed{
		r:     bufio.NewReaderSize(r, size),
		chunk: make([]byte, size),
	}
}

// Input returns the data read but not yet collected.
func (f *Feed) Input() Bytes {
	f.lock.Lock()
	defer f.lock.Unlock()

	return f.input()
}

func (f *Feed) input() Bytes {
	return Bytes{b: f.buf[:len(f.buf):len(f.buf)], eof: f.eof}
}

// AtEOF returns true once the reader has been exhausted.
func (f *Feed) AtEOF() bool {
	f.lock.Lock()
	defer f.lock.Unlock()

	return f.eof
}

// Fill reads the next chunk from the reader and returns the updated input.
// Once the reader is exhausted, Fill marks the input as end-of-data and
// further calls return it unchanged.
func (f *Feed) Fill() (Bytes, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.eof {
		return f.input(), nil
	}

	n, err := f.r.Read(f.chunk)
	f.buf = append(f.buf, f.chunk[:n]...)
	if errors.Is(err, io.EOF) {
		f.eof = true
		err = nil
	}

	return f.input(), err
}

// Collect discards everything before rest, which must be a suffix of the
// current input, such as the Rest of a Result produced from it.
func (f *Feed) Collect(rest Bytes) {
	f.lock.Lock()
	defer f.lock.Unlock()

	drop := len(f.buf) - rest.Len()
	if drop <= 0 {
		return
	}

	f.buf = f.buf[drop:]
}
