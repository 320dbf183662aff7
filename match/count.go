package match

import (
	"fmt"

	"github.com/zostay/nomnom/parser"
)

// Take returns a parser taking exactly n elements. It fails with
// parser.KindEOF if fewer than n remain. It panics if n is negative.
func Take[I parser.Sequence[I]](n int) parser.Func[I] {
	if n < 0 {
		panic(fmt.Sprintf("match.Take: negative count %d", n))
	}

	return func(in I) parser.Result[I] {
		idx, ok := in.SliceIndex(n)
		if !ok {
			return parser.Fail(parser.FromErrorKind(in, parser.KindEOF))
		}

		rest, taken := in.TakeSplit(idx)
		return parser.Done(rest, taken)
	}
}

// TakeWhileMN returns a parser taking at least m and at most n elements for
// which pred holds. It panics unless 0 <= m <= n.
//
// The run is capped at n even when more matching elements follow. When the
// run is shorter than m the parser fails with parser.KindTakeWhileMN. When
// the whole input matches, is shorter than n and may be followed by more
// data, the result is Incomplete, asking for enough elements to reach m or
// for one more if m has been reached already.
func TakeWhileMN[I parser.Input[I, E], E any](m, n int, pred func(E) bool) parser.Func[I] {
	if m < 0 || m > n {
		panic(fmt.Sprintf("match.TakeWhileMN: invalid bounds m=%d n=%d", m, n))
	}

	return func(in I) parser.Result[I] {
		split := func(idx int) parser.Result[I] {
			rest, taken := in.TakeSplit(idx)
			return parser.Done(rest, taken)
		}

		fail := func() parser.Result[I] {
			return parser.Fail(parser.FromErrorKind(in, parser.KindTakeWhileMN))
		}

		if idx, found := in.Position(func(e E) bool { return !pred(e) }); found {
			least, ok := in.SliceIndex(m)
			if !ok || idx < least {
				return fail()
			}

			if most, ok := in.SliceIndex(n); ok && idx > most {
				return split(most)
			}

			return split(idx)
		}

		l := in.Len()
		if l >= n {
			most, _ := in.SliceIndex(n)
			return split(most)
		}

		if in.AtEOF() {
			if l < m {
				return fail()
			}

			end, _ := in.SliceIndex(l)
			return parser.Done(in.SliceFrom(end), in)
		}

		return parser.Incomplete[I](parser.Size(max(m-l, 1)))
	}
}
