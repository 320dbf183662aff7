package parser

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/zostay/go-std/slices"
)

// Tracer is a function that is use to log or report parser traces. This
// function signature was chosen because it is commonly available, such as
// fmt.Print or log.Println, etc.
type Tracer func(v ...any)

// Stage identifies the point in a parse being traced.
type Stage int

const (
	StageTry Stage = iota
	StageGot
	StageFail
	StageMore
)

func (s Stage) prefix() string {
	switch s {
	case StageGot:
		return "GOT "
	case StageFail:
		return "ERR "
	case StageMore:
		return "MORE "
	}
	return "TRY "
}

// describeArg renders a configuration argument for a trace line. Functions
// are shown by name.
func describeArg(arg any) string {
	if arg == nil {
		return "<nil>"
	}

	if reflect.TypeOf(arg).Kind() == reflect.Func {
		return runtime.FuncForPC(reflect.ValueOf(arg).Pointer()).Name()
	}

	return fmt.Sprint(arg)
}

// traceLine formats a single trace line.
func traceLine(stage Stage, name string, in any, args []any) string {
	out := &strings.Builder{}
	fmt.Fprint(out, stage.prefix())
	fmt.Fprint(out, name)
	fmt.Fprint(out, "(")
	fmt.Fprint(out, Preview(in))

	for _, arg := range slices.Map(args, describeArg) {
		fmt.Fprint(out, ", ")
		fmt.Fprint(out, arg)
	}

	fmt.Fprint(out, ")")
	return out.String()
}

// Trace wraps p so that every application is reported to t. The name and args
// describe the wrapped parser in the trace output. If t is nil, p is returned
// as a Func unchanged.
func Trace[I any](t Tracer, name string, p Parser[I], args ...any) Func[I] {
	if t == nil {
		return p.Parse
	}

	return func(in I) Result[I] {
		t(traceLine(StageTry, name, in, args))

		res := p.Parse(in)
		line := traceLine(res.stage(), name, in, args)
		switch res.Status {
		case StatusDone:
			line += fmt.Sprintf(" = %q", Preview(res.Taken))
		case StatusFail:
			line += fmt.Sprintf(": %v", res.Error)
		case StatusIncomplete:
			line += ": " + res.Needed.String()
		}

		t(line)
		return res
	}
}

func (r Result[I]) stage() Stage {
	switch r.Status {
	case StatusFail:
		return StageFail
	case StatusIncomplete:
		return StageMore
	}
	return StageGot
}
