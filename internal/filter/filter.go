// Package filter compiles and evaluates per-process predicate expressions.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mrzor/procsnap/internal/procmeta"
)

// exprEnv defines the identifiers available to filter expressions, used for
// type checking at compile time.
var exprEnv = map[string]interface{}{
	"pid":     0,
	"ppid":    0,
	"uid":     0,
	"comm":    "",
	"args":    []string{},
	"cmdline": "",
	"env":     map[string]string{},
}

// Filter is a compiled process predicate, e.g.
//
//	uid == 0 && comm startsWith "ssh"
//	len(args) > 2 && cmdline contains "-f"
type Filter struct {
	source string
	prog   *vm.Program
}

// New compiles expression into a Filter.
// The expression must evaluate to a boolean.
func New(expression string) (*Filter, error) {
	prog, err := expr.Compile(expression, expr.Env(exprEnv), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", expression, err)
	}
	return &Filter{source: expression, prog: prog}, nil
}

// Match evaluates the filter against one process's metadata.
func (f *Filter) Match(md *procmeta.ProcessMetadata) (bool, error) {
	environ := md.Environ
	if environ == nil {
		environ = map[string]string{}
	}
	env := map[string]interface{}{
		"pid":     int(md.PID),
		"ppid":    int(md.PPID),
		"uid":     int(md.UID),
		"comm":    md.Comm,
		"args":    md.Args,
		"cmdline": md.CmdlineFull,
		"env":     environ,
	}

	out, err := expr.Run(f.prog, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q: %w", f.source, err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q did not produce a boolean", f.source)
	}
	return matched, nil
}

// String returns the original expression.
func (f *Filter) String() string {
	return f.source
}
