package kern

import (
	"errors"
	"fmt"
	"syscall"
)

// Sentinel errors for the two outcomes a failed process lookup can be
// refined into. Test with errors.Is.
var (
	// ErrNoSuchProcess means the pid does not name a live process.
	ErrNoSuchProcess = errors.New("no such process")

	// ErrAccessDenied means the pid names a live process whose information
	// the caller is not allowed to read.
	ErrAccessDenied = errors.New("access denied")
)

// SyscallError records a failed kernel query together with the underlying
// errno so callers can report precise diagnostics.
//
// For per-process queries the errno is often ambiguous: the kernel returns
// the same code whether the process exited between two calls or the caller
// simply lacks privilege. RefineLookupError resolves the ambiguity with a
// liveness probe.
type SyscallError struct {
	Op    string        // kernel operation, e.g. "sysctl kern.proc"
	Pid   int32         // target pid, or -1 for system-wide queries
	Errno syscall.Errno // kernel error code
}

func (e *SyscallError) Error() string {
	if e.Pid >= 0 {
		return fmt.Sprintf("%s pid %d: %v", e.Op, e.Pid, e.Errno)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Errno)
}

func (e *SyscallError) Unwrap() error {
	return e.Errno
}
