package main

import (
	"fmt"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/zostay/nomnom/parser"
)

var log = commonlog.GetLogger("nomnom")

type globalOptions struct {
	verbosity int
	trace     bool
}

// tracer returns the parser.Tracer to use, or nil when tracing is off.
func (o *globalOptions) tracer() parser.Tracer {
	if !o.trace {
		return nil
	}

	return func(v ...any) {
		log.Debug(fmt.Sprint(v...))
	}
}
