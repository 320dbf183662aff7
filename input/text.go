package input

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zostay/nomnom/parser"
)

// Text is an Input over a string whose elements are runes. Indexes are byte
// offsets into the string and counts are numbers of runes. Case folding uses
// Unicode simple folding.
type Text struct {
	s   string
	n   int
	eof bool
}

var _ parser.Input[Text, rune] = Text{}

// NewText returns a complete input over s.
func NewText(s string) Text {
	return Text{s: s, n: utf8.RuneCountInString(s), eof: true}
}

// StreamText returns an input over s that may be followed by more data.
func StreamText(s string) Text {
	return Text{s: s, n: utf8.RuneCountInString(s)}
}

// String returns the text.
func (in Text) String() string {
	return in.s
}

// Len returns the number of runes.
func (in Text) Len() int {
	return in.n
}

// AtEOF returns true if no data can follow this input.
func (in Text) AtEOF() bool {
	return in.eof
}

// Compare compares the start of the input to lit byte for byte.
func (in Text) Compare(lit Text) parser.CompareResult {
	switch {
	case strings.HasPrefix(in.s, lit.s):
		return parser.CompareOk
	case len(in.s) < len(lit.s) && strings.HasPrefix(lit.s, in.s):
		return parser.CompareIncomplete
	}
	return parser.CompareError
}

// CompareNoCase compares the start of the input to lit rune by rune under
// simple case folding.
func (in Text) CompareNoCase(lit Text) parser.CompareResult {
	s := in.s
	for _, want := range lit.s {
		if s == "" {
			return parser.CompareIncomplete
		}

		got, size := utf8.DecodeRuneInString(s)
		if !foldEqual(got, want) {
			return parser.CompareError
		}
		s = s[size:]
	}
	return parser.CompareOk
}

// foldEqual reports whether a and b are equal under simple case folding.
func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}

	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// FindToken returns true if r occurs in the text.
func (in Text) FindToken(r rune) bool {
	return strings.ContainsRune(in.s, r)
}

// FindSubstring returns the byte offset of the first occurrence of lit.
func (in Text) FindSubstring(lit Text) (int, bool) {
	idx := strings.Index(in.s, lit.s)
	return idx, idx >= 0
}

// Position returns the byte offset of the first rune matching pred.
func (in Text) Position(pred func(rune) bool) (int, bool) {
	for i, r := range in.s {
		if pred(r) {
			return i, true
		}
	}
	return 0, false
}

// SliceIndex returns the byte offset just past the first count runes.
func (in Text) SliceIndex(count int) (int, bool) {
	if count < 0 || count > in.n {
		return 0, false
	}

	if count == in.n {
		return len(in.s), true
	}

	seen := 0
	for i := range in.s {
		if seen == count {
			return i, true
		}
		seen++
	}
	return len(in.s), true
}

// TakeSplit splits the text at byte offset idx. The taken prefix is always
// complete. The rest keeps the end-of-data flag of the input.
func (in Text) TakeSplit(idx int) (rest, taken Text) {
	taken = Text{s: in.s[:idx], n: utf8.RuneCountInString(in.s[:idx]), eof: true}
	rest = Text{s: in.s[idx:], n: in.n - taken.n, eof: in.eof}
	return rest, taken
}

// SliceFrom returns the text from byte offset idx on.
func (in Text) SliceFrom(idx int) Text {
	rest, _ := in.TakeSplit(idx)
	return rest
}

// SplitAtPosition splits before the first rune matching pred, or at the end
// of the text if none does.
func (in Text) SplitAtPosition(pred func(rune) bool) (rest, taken Text) {
	idx, found := in.Position(pred)
	if !found {
		idx = len(in.s)
	}
	return in.TakeSplit(idx)
}
