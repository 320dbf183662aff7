package match

import (
	"github.com/zostay/nomnom/parser"
)

// Tag returns a parser that matches lit at the start of the input and takes
// exactly those elements.
//
// If the input is a streaming chunk that ends partway through lit, the result
// is Incomplete and asks for the missing elements. Otherwise a mismatch fails
// with parser.KindTag.
func Tag[I parser.Literal[I]](lit I) parser.Func[I] {
	return literal(lit, func(in, lit I) parser.CompareResult {
		return in.Compare(lit)
	})
}

// TagNoCase is like Tag, but compares after case folding. What folding means
// is up to the input type.
func TagNoCase[I parser.Literal[I]](lit I) parser.Func[I] {
	return literal(lit, func(in, lit I) parser.CompareResult {
		return in.CompareNoCase(lit)
	})
}

func literal[I parser.Literal[I]](
	lit I,
	compare func(in, lit I) parser.CompareResult,
) parser.Func[I] {
	litLen := lit.Len()
	return func(in I) parser.Result[I] {
		switch compare(in, lit) {
		case parser.CompareOk:
			idx, _ := in.SliceIndex(litLen)
			rest, taken := in.TakeSplit(idx)
			return parser.Done(rest, taken)
		case parser.CompareIncomplete:
			if !in.AtEOF() {
				return parser.Incomplete[I](parser.Size(max(litLen-in.Len(), 1)))
			}
		}

		return parser.Fail(parser.FromErrorKind(in, parser.KindTag))
	}
}

// TakeUntil returns a parser that takes everything up to, but not including,
// the first occurrence of lit. It fails with parser.KindTakeUntil if lit does
// not occur in the input.
func TakeUntil[I parser.Literal[I]](lit I) parser.Func[I] {
	return func(in I) parser.Result[I] {
		idx, found := in.FindSubstring(lit)
		if !found {
			return parser.Fail(parser.FromErrorKind(in, parser.KindTakeUntil))
		}

		rest, taken := in.TakeSplit(idx)
		return parser.Done(rest, taken)
	}
}
