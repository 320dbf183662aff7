package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/zostay/nomnom/input"
	"github.com/zostay/nomnom/match"
	"github.com/zostay/nomnom/parser"
)

var classes = map[string]func(rune) bool{
	"alnum": match.AnyRunes(match.RunesOf(unicode.IsLetter, unicode.IsDigit)...),
	"alpha": unicode.IsLetter,
	"digit": unicode.IsDigit,
	"hex": match.AnyRunes(
		match.RunesInRange('0', '9'),
		match.RunesInRange('a', 'f'),
		match.RunesInRange('A', 'F'),
	),
	"lower": unicode.IsLower,
	"punct": unicode.IsPunct,
	"space": unicode.IsSpace,
	"upper": unicode.IsUpper,
}

func classNames() string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// probe describes one combinator usable from the command line.
type probe struct {
	args  int
	build func(args []string, class func(rune) bool) (parser.Func[input.Text], error)
}

func literalProbe(f func(input.Text) parser.Func[input.Text]) probe {
	return probe{
		args: 1,
		build: func(args []string, _ func(rune) bool) (parser.Func[input.Text], error) {
			return f(input.NewText(args[0])), nil
		},
	}
}

func classProbe(f func(func(rune) bool) parser.Func[input.Text]) probe {
	return probe{
		build: func(_ []string, class func(rune) bool) (parser.Func[input.Text], error) {
			return f(class), nil
		},
	}
}

var probes = map[string]probe{
	"tag":         literalProbe(match.Tag[input.Text]),
	"tag-no-case": literalProbe(match.TagNoCase[input.Text]),
	"take-until":  literalProbe(match.TakeUntil[input.Text]),
	"is-a":        literalProbe(match.IsA[input.Text, rune]),
	"is-not":      literalProbe(match.IsNot[input.Text, rune]),
	"take-while":  classProbe(match.TakeWhile[input.Text, rune]),
	"take-while1": classProbe(match.TakeWhile1[input.Text, rune]),
	"take-till":   classProbe(match.TakeTill[input.Text, rune]),
	"take-till1":  classProbe(match.TakeTill1[input.Text, rune]),
	"take": {
		args: 1,
		build: func(args []string, _ func(rune) bool) (parser.Func[input.Text], error) {
			n, err := parseCount(args[0])
			if err != nil {
				return nil, err
			}
			return match.Take[input.Text](n), nil
		},
	},
	"take-while-m-n": {
		args: 2,
		build: func(args []string, class func(rune) bool) (parser.Func[input.Text], error) {
			m, err := parseCount(args[0])
			if err != nil {
				return nil, err
			}

			n, err := parseCount(args[1])
			if err != nil {
				return nil, err
			}

			if m > n {
				return nil, fmt.Errorf("minimum %d is greater than maximum %d", m, n)
			}
			return match.TakeWhileMN[input.Text](m, n, class), nil
		},
	},
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad count %q: %w", s, err)
	}

	if n < 0 {
		return 0, fmt.Errorf("bad count %q: must not be negative", s)
	}
	return n, nil
}

func newProbeCmd(opts *globalOptions) *cobra.Command {
	var (
		text      string
		stream    bool
		className string
	)

	cmd := &cobra.Command{
		Use:   "probe combinator [args...]",
		Short: "Apply a single primitive parser to some text",
		Long: `Apply a single primitive parser to the text given by --input and
print whether it succeeded, failed or needs more input.

Literal combinators (tag, tag-no-case, take-until, is-a, is-not) take the
literal as their argument. take takes a count and take-while-m-n takes the
minimum and maximum. Predicate combinators use the class named by --class.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, ok := probes[args[0]]
			if !ok {
				return fmt.Errorf("unknown combinator %q", args[0])
			}

			if len(args)-1 != pr.args {
				return fmt.Errorf("%s takes %d argument(s), got %d", args[0], pr.args, len(args)-1)
			}

			class, ok := classes[className]
			if !ok {
				return fmt.Errorf("unknown class %q, expected one of: %s", className, classNames())
			}

			p, err := pr.build(args[1:], class)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			in := input.NewText(text)
			if stream {
				in = input.StreamText(text)
			}

			log.Debugf("probing %s with %d runes, end-of-data %t", args[0], in.Len(), in.AtEOF())
			res := parser.Trace[input.Text](opts.tracer(), args[0], p, args[1:]).Parse(in)
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&text, "input", "i", "", "text to parse")
	cmd.Flags().BoolVar(&stream, "stream", false, "treat the input as a chunk that more data may follow")
	cmd.Flags().StringVar(&className, "class", "alpha", "character class for predicate combinators ("+classNames()+")")

	return cmd
}

func printResult(w io.Writer, res parser.Result[input.Text]) error {
	var err error
	switch res.Status {
	case parser.StatusDone:
		_, err = fmt.Fprintf(w, "done taken=%q rest=%q\n", res.Taken, res.Rest)
	case parser.StatusFail:
		_, err = fmt.Fprintf(w, "fail kind=%q at=%q\n", res.Error.Kind.String(), res.Error.Input)
	case parser.StatusIncomplete:
		_, err = fmt.Fprintf(w, "incomplete needed=%s\n", res.Needed)
	}
	return err
}
