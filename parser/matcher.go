package parser

// Parser is implemented by anything that can be applied to an input. A
// Parser must be pure: the same input always gives the same Result, and the
// input is never modified.
type Parser[I any] interface {
	Parse(in I) Result[I]
}

// Func is the type of the parsing functions returned by the combinators. The
// configuration of the combinator is bound when the Func is built, so a Func
// may be applied to any number of inputs.
type Func[I any] func(in I) Result[I]

// Parse calls the function.
func (f Func[I]) Parse(in I) Result[I] {
	return f(in)
}
