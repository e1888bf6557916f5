package output

import (
	"fmt"
	"io"

	"github.com/mrzor/procsnap/internal/kern"
	"github.com/mrzor/procsnap/internal/procmeta"
)

// Formatter renders collected process information.
type Formatter interface {
	// Snapshot renders a full process listing. Issues recorded in mgr are
	// rendered alongside the affected process.
	Snapshot(w io.Writer, procs []*procmeta.ProcessMetadata, mgr *procmeta.Manager) error
	// Args renders one process's argument vector.
	Args(w io.Writer, pid int32, args []string) error
	// Verdict renders a liveness verdict.
	Verdict(w io.Writer, pid int32, v kern.Verdict) error
}

// New selects a formatter by name: "text" or "json".
func New(format string, noColor bool) (Formatter, error) {
	switch format {
	case "text":
		return NewText(noColor), nil
	case "json":
		return NewJSON(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
