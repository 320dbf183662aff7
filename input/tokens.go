package input

import (
	"fmt"

	"github.com/zostay/nomnom/parser"
)

// Tokens is an Input over a slice of comparable tokens, such as the output of
// a lexer. Tokens have no case, so CompareNoCase is the same as Compare.
type Tokens[T comparable] struct {
	ts  []T
	eof bool
}

var _ parser.Input[Tokens[int], int] = Tokens[int]{}

// NewTokens returns a complete input over ts.
func NewTokens[T comparable](ts ...T) Tokens[T] {
	return Tokens[T]{ts: ts, eof: true}
}

// StreamTokens returns an input over ts that may be followed by more tokens.
func StreamTokens[T comparable](ts ...T) Tokens[T] {
	return Tokens[T]{ts: ts}
}

// Tokens returns the viewed tokens. The caller must not modify them.
func (in Tokens[T]) Tokens() []T {
	return in.ts
}

// String formats the tokens.
func (in Tokens[T]) String() string {
	return fmt.Sprint(in.ts)
}

// Len returns the number of tokens.
func (in Tokens[T]) Len() int {
	return len(in.ts)
}

// AtEOF returns true if no tokens can follow this input.
func (in Tokens[T]) AtEOF() bool {
	return in.eof
}

// Compare compares the leading tokens to lit.
func (in Tokens[T]) Compare(lit Tokens[T]) parser.CompareResult {
	n := min(len(in.ts), len(lit.ts))
	for i := 0; i < n; i++ {
		if in.ts[i] != lit.ts[i] {
			return parser.CompareError
		}
	}

	if n < len(lit.ts) {
		return parser.CompareIncomplete
	}
	return parser.CompareOk
}

// CompareNoCase is the same as Compare.
func (in Tokens[T]) CompareNoCase(lit Tokens[T]) parser.CompareResult {
	return in.Compare(lit)
}

// FindToken returns true if t is one of the tokens.
func (in Tokens[T]) FindToken(t T) bool {
	_, found := in.Position(func(c T) bool { return c == t })
	return found
}

// FindSubstring returns the index of the first run of tokens equal to lit.
func (in Tokens[T]) FindSubstring(lit Tokens[T]) (int, bool) {
	for i := 0; i+len(lit.ts) <= len(in.ts); i++ {
		if in.SliceFrom(i).Compare(lit) == parser.CompareOk {
			return i, true
		}
	}
	return 0, false
}

// Position returns the index of the first token matching pred.
func (in Tokens[T]) Position(pred func(T) bool) (int, bool) {
	for i, t := range in.ts {
		if pred(t) {
			return i, true
		}
	}
	return 0, false
}

// SliceIndex returns count if at least count tokens are present.
func (in Tokens[T]) SliceIndex(count int) (int, bool) {
	if count < 0 || count > len(in.ts) {
		return 0, false
	}
	return count, true
}

// TakeSplit splits the tokens at idx. The taken prefix is always complete.
// The rest keeps the end-of-data flag of the input.
func (in Tokens[T]) TakeSplit(idx int) (rest, taken Tokens[T]) {
	return Tokens[T]{ts: in.ts[idx:], eof: in.eof}, Tokens[T]{ts: in.ts[:idx:idx], eof: true}
}

// SliceFrom returns the tokens from idx on.
func (in Tokens[T]) SliceFrom(idx int) Tokens[T] {
	return Tokens[T]{ts: in.ts[idx:], eof: in.eof}
}

// SplitAtPosition splits before the first token matching pred, or after the
// last token if none does.
func (in Tokens[T]) SplitAtPosition(pred func(T) bool) (rest, taken Tokens[T]) {
	idx, found := in.Position(pred)
	if !found {
		idx = len(in.ts)
	}
	return in.TakeSplit(idx)
}
