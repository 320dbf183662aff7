package match

import (
	"github.com/zostay/go-std/slices"
)

// BytePredicate is a function that returns true if it matches a single byte or
// false if it does not.
type BytePredicate func(c byte) bool

// BytesInSet creates a BytePredicate from the set of bytes given.
func BytesInSet(cs ...byte) BytePredicate {
	return func(b byte) bool {
		for _, c := range cs {
			if c == b {
				return true
			}
		}
		return false
	}
}

// BytesInRange creates a BytePredicate that matches any byte in the given
// range. The match is inclusive so bytes equal to either end point are also
// matched.
func BytesInRange(cs, ce byte) BytePredicate {
	return func(b byte) bool {
		return b >= cs && b <= ce
	}
}

// AnyBytes creates a combined BytePredicate that matches a byte that matches
// any of the given predicates.
func AnyBytes(preds ...BytePredicate) BytePredicate {
	switch len(preds) {
	case 0:
		return func(byte) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(b byte) bool {
			for _, pred := range preds {
				if pred(b) {
					return true
				}
			}
			return false
		}
	}
}

// NotBytes creates a combined BytePredicate that matches a byte that does not
// match any of the given predicates.
func NotBytes(preds ...BytePredicate) BytePredicate {
	return func(b byte) bool {
		for _, pred := range preds {
			if pred(b) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThatBytes creates a combined BytePredicate that matches a byte that
// matches the first predicate, but does not match the second predicate.
func ThisButNotThatBytes(this, that BytePredicate) BytePredicate {
	return func(b byte) bool {
		return this(b) && !that(b)
	}
}

// BytesOf converts plain functions, such as IsDigit, into BytePredicates.
func BytesOf(fns ...func(byte) bool) []BytePredicate {
	return slices.Map(fns, func(fn func(byte) bool) BytePredicate {
		return fn
	})
}

// AndAlso returns a predicate matching a byte that matches pred or any of the
// others.
func (pred BytePredicate) AndAlso(others ...BytePredicate) BytePredicate {
	return AnyBytes(append([]BytePredicate{pred}, others...)...)
}

// ButNot returns a predicate matching a byte that matches pred, but none of
// the others.
func (pred BytePredicate) ButNot(others ...BytePredicate) BytePredicate {
	return ThisButNotThatBytes(pred, AnyBytes(others...))
}

// IsDigit matches ASCII 0-9.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsHexDigit matches ASCII 0-9, a-f and A-F.
func IsHexDigit(c byte) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsOctDigit matches ASCII 0-7.
func IsOctDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

// IsAlpha matches ASCII a-z and A-Z.
func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsAlphanumeric matches IsAlpha or IsDigit.
func IsAlphanumeric(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsSpace matches space and tab.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// IsMultispace matches space, tab, carriage return and newline.
func IsMultispace(c byte) bool {
	return IsSpace(c) || c == '\r' || c == '\n'
}
