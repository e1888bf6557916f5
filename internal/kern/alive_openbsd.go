//go:build openbsd

package kern

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// PidExists reports whether pid currently names a live process.
//
// The probe is kill(pid, 0): signal number zero performs the permission
// check without delivering anything. EPERM means the process exists but
// belongs to someone else, so it still counts as alive. Negative pids are
// rejected without touching the kernel.
func PidExists(pid int32) bool {
	if pid < 0 {
		return false
	}
	err := unix.Kill(int(pid), 0)
	return err == nil || errors.Is(err, unix.EPERM)
}

// Probe returns the full verdict for pid: the liveness probe first, then,
// for live processes, an argument read to detect the access-denied case.
func Probe(pid int32) Verdict {
	if !PidExists(pid) {
		return DoesNotExist
	}
	if _, err := CmdlineSlice(pid); err != nil {
		if errors.Is(RefineLookupError(pid, err), ErrAccessDenied) {
			return ExistsAccessDenied
		}
	}
	return Exists
}

// RefineLookupError upgrades an ambiguous per-process query failure into
// ErrNoSuchProcess or ErrAccessDenied. The kernel often returns the same
// errno whether the process exited mid-query or the caller lacks privilege;
// only the liveness probe can tell the two apart after the fact.
//
// The original cause is kept in the wrap chain for diagnostics.
func RefineLookupError(pid int32, cause error) error {
	if errors.Is(cause, ErrNoSuchProcess) || errors.Is(cause, ErrAccessDenied) {
		return cause
	}
	if !PidExists(pid) {
		return fmt.Errorf("%w (pid %d): %w", ErrNoSuchProcess, pid, cause)
	}
	return fmt.Errorf("%w (pid %d): %w", ErrAccessDenied, pid, cause)
}
