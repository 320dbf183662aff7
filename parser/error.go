package parser

import (
	"fmt"
	"unicode/utf8"
)

// ErrorKind identifies the combinator that failed. The set is closed.
//
// ErrorKind implements error, so a failure can be tested with errors.Is:
//
//	if errors.Is(res.Err(), parser.KindTag) { ... }
type ErrorKind int

const (
	KindTag         ErrorKind = iota + 1 // literal did not match
	KindIsA                              // no element of the allowed set
	KindIsNot                            // no element outside the excluded set
	KindTakeWhile1                       // predicate failed on the first element
	KindTakeTill1                        // predicate held on the first element
	KindEOF                              // fewer elements than required
	KindTakeUntil                        // delimiter not found
	KindTakeWhileMN                      // repetition outside of its bounds
)

var kindNames = map[ErrorKind]string{
	KindTag:         "tag",
	KindIsA:         "is a",
	KindIsNot:       "is not",
	KindTakeWhile1:  "take while 1",
	KindTakeTill1:   "take till 1",
	KindEOF:         "eof",
	KindTakeUntil:   "take until",
	KindTakeWhileMN: "take while m n",
}

// String returns the name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error implements error.
func (k ErrorKind) Error() string {
	return k.String() + " failed"
}

// Error binds an ErrorKind to the input at the point of failure.
type Error[I any] struct {
	Input I
	Kind  ErrorKind
}

// FromErrorKind builds the error for a failure of the given kind at in. It is
// the only constructor used by the combinators.
func FromErrorKind[I any](in I, kind ErrorKind) *Error[I] {
	return &Error[I]{Input: in, Kind: kind}
}

// Error implements error.
func (e *Error[I]) Error() string {
	return fmt.Sprintf("%v at %q", e.Kind.Error(), Preview(e.Input))
}

// Unwrap returns the kind.
func (e *Error[I]) Unwrap() error {
	return e.Kind
}

// IncompleteError is returned by Result.Err when a parser needs more input.
// It is not a parse failure.
type IncompleteError struct {
	Needed Needed
}

// Error implements error.
func (e *IncompleteError) Error() string {
	return "incomplete: " + e.Needed.String()
}

// previewLen is the number of runes shown by Preview.
const previewLen = 10

// Preview renders the first few runes of an input for messages and traces.
func Preview(in any) string {
	s := fmt.Sprint(in)
	if utf8.RuneCountInString(s) <= previewLen {
		return s
	}

	n := 0
	for i := range s {
		if n == previewLen {
			return s[:i] + "…"
		}
		n++
	}
	return s
}
