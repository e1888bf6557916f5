//go:build openbsd

package procmeta

import (
	"github.com/mrzor/procsnap/internal/kern"
)

// KernelSource is the live Source backed by sysctl reads.
type KernelSource struct{}

var _ Source = KernelSource{}

// Table reads the full kinfo_proc table and trims each record down to the
// fields the collector needs.
func (KernelSource) Table() ([]TableEntry, error) {
	procs, err := kern.Processes()
	if err != nil {
		return nil, err
	}
	entries := make([]TableEntry, 0, len(procs))
	for i := range procs {
		p := &procs[i]
		entries = append(entries, TableEntry{
			Pid:  p.Pid,
			Ppid: p.Ppid,
			Uid:  p.Uid,
			Comm: p.CommString(),
		})
	}
	return entries, nil
}

// Arguments reads pid's argv via the growth-loop reader.
func (KernelSource) Arguments(pid int32) ([]string, error) {
	return kern.CmdlineSlice(pid)
}

// Environment reads pid's environment via the growth-loop reader.
func (KernelSource) Environment(pid int32) ([]string, error) {
	return kern.Environ(pid)
}

// Refine resolves an ambiguous lookup failure with the liveness probe.
func (KernelSource) Refine(pid int32, cause error) error {
	return kern.RefineLookupError(pid, cause)
}
