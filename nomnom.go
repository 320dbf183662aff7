// Package nomnom drives the primitive parsers of the match package over
// complete inputs and over data arriving through an input.Feed.
package nomnom

import (
	"errors"
	"fmt"

	"github.com/zostay/nomnom/input"
	"github.com/zostay/nomnom/parser"
)

var (
	// ErrMisflagged is returned when a parser asks for more data from an
	// input that is flagged as end-of-data. It indicates that the input
	// implementation does not keep the input contract.
	ErrMisflagged = errors.New("incomplete result from an end-of-data input")

	// ErrNoProgress is returned by Each when the parser succeeds without
	// taking anything, which would otherwise loop forever.
	ErrNoProgress = errors.New("parser succeeded without taking any input")
)

// EOFer is the part of the input contract Parse depends on.
type EOFer interface {
	AtEOF() bool
}

// Parse applies p to in and returns the rest and taken parts. On failure,
// err is the *parser.Error. If p asks for more data, err is a
// *parser.IncompleteError, or ErrMisflagged if in is flagged as
// end-of-data.
func Parse[I EOFer](p parser.Parser[I], in I) (rest, taken I, err error) {
	res := p.Parse(in)
	switch res.Status {
	case parser.StatusDone:
		return res.Rest, res.Taken, nil
	case parser.StatusIncomplete:
		if in.AtEOF() {
			return rest, taken, fmt.Errorf("%w: needed %v", ErrMisflagged, res.Needed)
		}
	}

	return rest, taken, res.Err()
}

// Each applies p repeatedly to the data of f, calling yield with each taken
// part. Each stops without error once the input is exhausted.
//
// Whenever p asks for more data, or fails on input that may still grow,
// Each reads another chunk from f and tries again. A failure on the final
// chunk is returned. Each also stops with the first error returned by yield
// or by the underlying reader.
func Each(f *input.Feed, p parser.Parser[input.Bytes], yield func(taken input.Bytes) error) error {
	in := f.Input()
	for {
		if in.Len() == 0 {
			if in.AtEOF() {
				return nil
			}

			var err error
			if in, err = f.Fill(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			continue
		}

		res := p.Parse(in)
		switch res.Status {
		case parser.StatusDone:
			if res.Taken.Len() == 0 {
				return ErrNoProgress
			}

			if err := yield(res.Taken); err != nil {
				return err
			}

			f.Collect(res.Rest)
			in = res.Rest
			continue

		case parser.StatusFail:
			if in.AtEOF() {
				return res.Error
			}

		case parser.StatusIncomplete:
			if in.AtEOF() {
				return fmt.Errorf("%w: needed %v", ErrMisflagged, res.Needed)
			}
		}

		var err error
		if in, err = f.Fill(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}
