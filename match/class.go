package match

import (
	"github.com/zostay/nomnom/parser"
)

// split1 splits at the first element matching stop and fails with kind if
// that would take nothing.
func split1[I parser.Input[I, E], E any](
	in I,
	stop func(E) bool,
	kind parser.ErrorKind,
) parser.Result[I] {
	rest, taken := in.SplitAtPosition(stop)
	if taken.Len() == 0 {
		return parser.Fail(parser.FromErrorKind(in, kind))
	}
	return parser.Done(rest, taken)
}

// IsA returns a parser taking the longest run of elements found in set. It
// fails with parser.KindIsA if the first element is not in set.
//
// Since set is an input of the same type, this is usually written as:
//
//	match.IsA[input.Text, rune](input.NewText("0123456789"))
func IsA[I parser.Input[I, E], E any](set I) parser.Func[I] {
	return func(in I) parser.Result[I] {
		return split1(in, func(e E) bool { return !set.FindToken(e) }, parser.KindIsA)
	}
}

// IsNot returns a parser taking the longest run of elements not found in
// set. It fails with parser.KindIsNot if the first element is in set.
func IsNot[I parser.Input[I, E], E any](set I) parser.Func[I] {
	return func(in I) parser.Result[I] {
		return split1(in, set.FindToken, parser.KindIsNot)
	}
}

// TakeWhile returns a parser taking the longest run of elements for which
// pred holds. It never fails.
func TakeWhile[I parser.Input[I, E], E any](pred func(E) bool) parser.Func[I] {
	return func(in I) parser.Result[I] {
		rest, taken := in.SplitAtPosition(func(e E) bool { return !pred(e) })
		return parser.Done(rest, taken)
	}
}

// TakeWhile1 is like TakeWhile, but fails with parser.KindTakeWhile1 if
// nothing would be taken.
func TakeWhile1[I parser.Input[I, E], E any](pred func(E) bool) parser.Func[I] {
	return func(in I) parser.Result[I] {
		return split1(in, func(e E) bool { return !pred(e) }, parser.KindTakeWhile1)
	}
}

// TakeTill returns a parser taking elements up to the first one for which
// pred holds, or everything if there is none. It never fails.
func TakeTill[I parser.Input[I, E], E any](pred func(E) bool) parser.Func[I] {
	return func(in I) parser.Result[I] {
		rest, taken := in.SplitAtPosition(pred)
		return parser.Done(rest, taken)
	}
}

// TakeTill1 is like TakeTill, but fails with parser.KindTakeTill1 if nothing
// would be taken.
func TakeTill1[I parser.Input[I, E], E any](pred func(E) bool) parser.Func[I] {
	return func(in I) parser.Result[I] {
		return split1(in, pred, parser.KindTakeTill1)
	}
}
