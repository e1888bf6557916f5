package procmeta

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mrzor/procsnap/internal/kern"
)

// TableEntry is the slice of a process-table record the collector needs.
// The kernel-backed Source extracts it from the full kinfo_proc.
type TableEntry struct {
	Pid  int32
	Ppid int32
	Uid  uint32
	Comm string
}

// Source abstracts the kernel queries the collector composes. The real
// implementation lives in the kernel-backed source; tests substitute stubs.
type Source interface {
	// Table returns the current process table.
	Table() ([]TableEntry, error)
	// Arguments returns pid's argument vector.
	Arguments(pid int32) ([]string, error)
	// Environment returns pid's environment vector.
	Environment(pid int32) ([]string, error)
	// Refine classifies an ambiguous per-process failure into
	// kern.ErrNoSuchProcess or kern.ErrAccessDenied.
	Refine(pid int32, cause error) error
}

// Collector assembles whole-system snapshots: one table read, then one
// argument read per pid, with failures classified and recorded instead of
// aborting the snapshot.
type Collector struct {
	src        Source
	mgr        *Manager
	collectEnv bool
}

// NewCollector creates a collector over src, recording results into mgr.
func NewCollector(src Source, mgr *Manager, collectEnv bool) *Collector {
	return &Collector{src: src, mgr: mgr, collectEnv: collectEnv}
}

// Snapshot reads the full process table and per-process arguments.
//
// A table failure aborts the snapshot. Per-process failures do not: a pid
// that vanished between the table read and the argument read is dropped
// (it no longer exists), and one whose arguments are unreadable is kept
// with table-level fields only plus a recorded error. The returned slice
// is sorted by pid.
func (c *Collector) Snapshot() ([]*ProcessMetadata, error) {
	table, err := c.src.Table()
	if err != nil {
		return nil, fmt.Errorf("reading process table: %w", err)
	}

	c.mgr.Reset()

	results := make([]*ProcessMetadata, 0, len(table))
	for _, entry := range table {
		md := &ProcessMetadata{
			PID:  entry.Pid,
			PPID: entry.Ppid,
			UID:  entry.Uid,
			Comm: entry.Comm,
		}

		raw, err := c.src.Arguments(entry.Pid)
		if err != nil {
			refined := c.src.Refine(entry.Pid, err)
			if errors.Is(refined, kern.ErrNoSuchProcess) {
				// Exited between the table read and the argument read.
				continue
			}
			c.mgr.SetError(entry.Pid, refined)
			if errors.Is(refined, kern.ErrAccessDenied) {
				c.mgr.AddIssue(entry.Pid, "arguments unreadable: access denied")
			} else {
				c.mgr.AddIssue(entry.Pid, fmt.Sprintf("arguments unreadable: %v", refined))
			}
		} else {
			md.Args, md.CmdlineFull = parseCmdline(raw)
		}

		if c.collectEnv {
			if env, err := c.src.Environment(entry.Pid); err == nil {
				md.Environ = parseEnviron(env)
			} else {
				c.mgr.AddIssue(entry.Pid, "environment unreadable")
			}
		}

		c.mgr.Set(entry.Pid, md)
		results = append(results, md)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].PID < results[j].PID })
	return results, nil
}

// Lookup collects metadata for a single pid without touching the table.
// Failures are refined before being returned.
func (c *Collector) Lookup(pid int32) (*ProcessMetadata, error) {
	raw, err := c.src.Arguments(pid)
	if err != nil {
		return nil, c.src.Refine(pid, err)
	}

	md := &ProcessMetadata{PID: pid}
	md.Args, md.CmdlineFull = parseCmdline(raw)

	if c.collectEnv {
		if env, err := c.src.Environment(pid); err == nil {
			md.Environ = parseEnviron(env)
		}
	}

	c.mgr.Set(pid, md)
	return md, nil
}
