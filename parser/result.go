package parser

import "strconv"

// Needed says how much more input a parser wants before it can decide.
type Needed struct {
	// Size is the number of additional elements wanted. Zero means the amount
	// is not known.
	Size int
}

// Unknown returns a Needed without a known size.
func Unknown() Needed {
	return Needed{}
}

// Size returns a Needed asking for exactly n more elements.
func Size(n int) Needed {
	return Needed{Size: n}
}

// Known returns true if the number of elements needed is known.
func (n Needed) Known() bool {
	return n.Size > 0
}

// String describes the amount needed.
func (n Needed) String() string {
	if !n.Known() {
		return "unknown"
	}
	return strconv.Itoa(n.Size) + " more"
}

// Status is the state of a Result.
type Status int

const (
	StatusDone       Status = iota // Rest and Taken are set
	StatusFail                     // Error is set
	StatusIncomplete               // Needed is set
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusFail:
		return "fail"
	case StatusIncomplete:
		return "incomplete"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Result is the outcome of running a parser once.
//
// When Status is StatusDone, Taken is the consumed prefix of the input and
// Rest is the suffix immediately following it. Together they hold exactly the
// elements of the original input.
type Result[I any] struct {
	Status Status
	Rest   I
	Taken  I
	Error  *Error[I]
	Needed Needed
}

// Done returns a successful Result.
func Done[I any](rest, taken I) Result[I] {
	return Result[I]{Status: StatusDone, Rest: rest, Taken: taken}
}

// Fail returns a failed Result.
func Fail[I any](err *Error[I]) Result[I] {
	return Result[I]{Status: StatusFail, Error: err}
}

// Incomplete returns a Result asking for more input.
func Incomplete[I any](needed Needed) Result[I] {
	return Result[I]{Status: StatusIncomplete, Needed: needed}
}

// Ok returns true if the parse succeeded.
func (r Result[I]) Ok() bool {
	return r.Status == StatusDone
}

// Err returns nil on success, the *Error on failure, and an
// *IncompleteError when more input is needed.
func (r Result[I]) Err() error {
	switch r.Status {
	case StatusFail:
		return r.Error
	case StatusIncomplete:
		return &IncompleteError{Needed: r.Needed}
	}
	return nil
}
