package input

import (
	"bytes"

	"github.com/zostay/nomnom/parser"
)

// Bytes is an Input over a byte slice. Elements are single bytes and case
// folding is ASCII only.
//
// A Bytes value never modifies the slice it views. Splitting shares the
// backing array, so the slice must not be modified while views of it remain in
// use.
type Bytes struct {
	b   []byte
	eof bool
}

var _ parser.Input[Bytes, byte] = Bytes{}

// NewBytes returns a complete input over b.
func NewBytes(b []byte) Bytes {
	return Bytes{b: b, eof: true}
}

// StreamBytes returns an input over b that may be followed by more data.
func StreamBytes(b []byte) Bytes {
	return Bytes{b: b}
}

// ByteString returns a complete input holding the bytes of s. It is handy for
// building literals.
func ByteString(s string) Bytes {
	return NewBytes([]byte(s))
}

// Bytes returns the viewed bytes. The caller must not modify them.
func (in Bytes) Bytes() []byte {
	return in.b
}

// String returns the viewed bytes as a string.
func (in Bytes) String() string {
	return string(in.b)
}

// Len returns the number of bytes.
func (in Bytes) Len() int {
	return len(in.b)
}

// AtEOF returns true if no data can follow this input.
func (in Bytes) AtEOF() bool {
	return in.eof
}

// Compare compares the start of the input to lit byte for byte.
func (in Bytes) Compare(lit Bytes) parser.CompareResult {
	return compareBytes(in.b, lit.b, func(a, b byte) bool { return a == b })
}

// CompareNoCase compares the start of the input to lit ignoring ASCII case.
func (in Bytes) CompareNoCase(lit Bytes) parser.CompareResult {
	return compareBytes(in.b, lit.b, func(a, b byte) bool {
		return lowerASCII(a) == lowerASCII(b)
	})
}

func compareBytes(in, lit []byte, eq func(a, b byte) bool) parser.CompareResult {
	n := min(len(in), len(lit))
	for i := 0; i < n; i++ {
		if !eq(in[i], lit[i]) {
			return parser.CompareError
		}
	}

	if n < len(lit) {
		return parser.CompareIncomplete
	}
	return parser.CompareOk
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// FindToken returns true if c is one of the bytes of the input.
func (in Bytes) FindToken(c byte) bool {
	return bytes.IndexByte(in.b, c) >= 0
}

// FindSubstring returns the index of the first occurrence of lit.
func (in Bytes) FindSubstring(lit Bytes) (int, bool) {
	idx := bytes.Index(in.b, lit.b)
	return idx, idx >= 0
}

// Position returns the index of the first byte matching pred.
func (in Bytes) Position(pred func(byte) bool) (int, bool) {
	for i, c := range in.b {
		if pred(c) {
			return i, true
		}
	}
	return 0, false
}

// SliceIndex returns count if at least count bytes are present.
func (in Bytes) SliceIndex(count int) (int, bool) {
	if count < 0 || count > len(in.b) {
		return 0, false
	}
	return count, true
}

// TakeSplit splits the input at idx. The taken prefix is always complete. The
// rest keeps the end-of-data flag of the input.
func (in Bytes) TakeSplit(idx int) (rest, taken Bytes) {
	return Bytes{b: in.b[idx:], eof: in.eof}, Bytes{b: in.b[:idx:idx], eof: true}
}

// SliceFrom returns the input from idx on.
func (in Bytes) SliceFrom(idx int) Bytes {
	return Bytes{b: in.b[idx:], eof: in.eof}
}

// SplitAtPosition splits before the first byte matching pred, or after the
// last byte if none does.
func (in Bytes) SplitAtPosition(pred func(byte) bool) (rest, taken Bytes) {
	idx, found := in.Position(pred)
	if !found {
		idx = len(in.b)
	}
	return in.TakeSplit(idx)
}
