package parser

// CompareResult reports the outcome of comparing an input against a literal.
type CompareResult int

const (
	// CompareOk means the input begins with the whole literal.
	CompareOk CompareResult = iota

	// CompareIncomplete means every element compared so far matched, but the
	// input ran out before the literal did.
	CompareIncomplete

	// CompareError means some element differs.
	CompareError
)

// String returns a short name for the comparison result.
func (c CompareResult) String() string {
	switch c {
	case CompareOk:
		return "ok"
	case CompareIncomplete:
		return "incomplete"
	case CompareError:
		return "error"
	}
	return "unknown"
}

// Sequence is the smallest part of the input contract: an immutable run of
// elements that can be measured and split.
//
// Two kinds of numbers appear in the contract. A count is a number of
// elements. An index is a storage offset accepted by TakeSplit and SliceFrom.
// SliceIndex converts the first into the second. For inputs made of
// fixed-width elements they are the same number.
type Sequence[I any] interface {
	// Len returns the number of elements remaining.
	Len() int

	// AtEOF returns true if no more data can follow this input. It is false
	// for a chunk of a stream that is still arriving.
	AtEOF() bool

	// SliceIndex returns the index just past the first count elements. It
	// returns false if fewer than count elements are present.
	SliceIndex(count int) (int, bool)

	// TakeSplit splits the input at idx, which must be no greater than the
	// index of the end of input. The taken part is the prefix.
	TakeSplit(idx int) (rest, taken I)

	// SliceFrom returns the input starting at idx.
	SliceFrom(idx int) I
}

// Literal is a Sequence that can be compared against and searched for
// literals of its own type.
type Literal[I any] interface {
	Sequence[I]

	// Compare compares the start of the input against lit.
	Compare(lit I) CompareResult

	// CompareNoCase compares the start of the input against lit after case
	// folding.
	CompareNoCase(lit I) CompareResult

	// FindSubstring returns the index of the first occurrence of lit.
	FindSubstring(lit I) (int, bool)
}

// Input is the complete contract for inputs made up of elements of type E.
// Every combinator in this module is written against this interface or one of
// its parts, never against a concrete type.
type Input[I any, E any] interface {
	Literal[I]

	// FindToken returns true if e is one of the elements of this input. This
	// lets an input double as a set of elements.
	FindToken(e E) bool

	// Position returns the index of the first element for which pred returns
	// true.
	Position(pred func(E) bool) (int, bool)

	// SplitAtPosition splits at the first element for which pred returns
	// true. If there is no such element, everything is taken.
	SplitAtPosition(pred func(E) bool) (rest, taken I)
}
