package match

import (
	"github.com/zostay/go-std/slices"
)

// RunePredicate is a function that returns true if it matches a single rune or
// false if it does not.
type RunePredicate func(r rune) bool

// RunesInSet creates a RunePredicate from the set of runes given.
func RunesInSet(cs ...rune) RunePredicate {
	return func(r rune) bool {
		for _, c := range cs {
			if c == r {
				return true
			}
		}
		return false
	}
}

// RunesInRange creates a RunePredicate that matches any rune in the given
// range. The match is inclusive so runes equal to either end point are also
// matched.
func RunesInRange(cs, ce rune) RunePredicate {
	return func(r rune) bool {
		return r >= cs && r <= ce
	}
}

// AnyRunes creates a combined RunePredicate that matches a rune that matches
// any of the given predicates.
func AnyRunes(preds ...RunePredicate) RunePredicate {
	switch len(preds) {
	case 0:
		return func(rune) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(r rune) bool {
			for _, pred := range preds {
				if pred(r) {
					return true
				}
			}
			return false
		}
	}
}

// NotRunes creates a combined RunePredicate that matches a rune that does not
// match any of the given predicates.
func NotRunes(preds ...RunePredicate) RunePredicate {
	return func(r rune) bool {
		for _, pred := range preds {
			if pred(r) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThatRunes creates a combined RunePredicate that matches a rune that
// matches the first predicate, but does not match the second predicate.
func ThisButNotThatRunes(this, that RunePredicate) RunePredicate {
	return func(r rune) bool {
		return this(r) && !that(r)
	}
}

// RunesOf converts plain functions, such as unicode.IsLetter, into
// RunePredicates.
func RunesOf(fns ...func(rune) bool) []RunePredicate {
	return slices.Map(fns, func(fn func(rune) bool) RunePredicate {
		return fn
	})
}

// AndAlso returns a predicate matching a rune that matches pred or any of the
// others.
func (pred RunePredicate) AndAlso(others ...RunePredicate) RunePredicate {
	return AnyRunes(append([]RunePredicate{pred}, others...)...)
}

// ButNot returns a predicate matching a rune that matches pred, but none of
// the others.
func (pred RunePredicate) ButNot(others ...RunePredicate) RunePredicate {
	return ThisButNotThatRunes(pred, AnyRunes(others...))
}
