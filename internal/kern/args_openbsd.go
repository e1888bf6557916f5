//go:build openbsd

package kern

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// initialArgvSize is the first capacity tried by the growth loop. Doubling
// from here reaches the kern.argmax default in a handful of retries.
const initialArgvSize = 128

// Cmdline returns the kernel's raw argument buffer for pid using the
// size-then-fetch protocol: a sizing probe with a nil destination, then the
// real query into a buffer of exactly the reported length.
//
// The window between the two calls cannot be closed; if the process exits or
// the buffer requirement changes in between, the second call fails with an
// errno that does not distinguish "process gone" from "not permitted". Use
// RefineLookupError to tell the two apart.
func Cmdline(pid int32) ([]byte, error) {
	if pid < 0 {
		return nil, fmt.Errorf("cmdline pid %d: %w", pid, ErrNoSuchProcess)
	}
	mib := []int32{ctlKern, kernProcArgs, pid, kernProcArgv}

	var size uintptr
	if errno := sysctlFn(mib, nil, &size); errno != 0 {
		// The sizing probe itself failed: the pid is invalid or already
		// gone. Nothing was allocated.
		return nil, &SyscallError{Op: "sysctl kern.proc_args size", Pid: pid, Errno: errno}
	}
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)
	if errno := sysctlFn(mib, buf, &size); errno != 0 {
		return nil, &SyscallError{Op: "sysctl kern.proc_args", Pid: pid, Errno: errno}
	}
	return buf[:size], nil
}

// CmdlineSlice returns pid's argument vector parsed into strings.
//
// The KERN_PROC_ARGV node has no sizing probe; the kernel only reports
// ENOMEM when the destination is too small. The loop therefore starts small
// and doubles the buffer until the call succeeds, which bounds the retries
// at O(log(final/initial)). ESRCH ends the loop immediately: the process is
// gone and no capacity will bring it back.
func CmdlineSlice(pid int32) ([]string, error) {
	if pid < 0 {
		return nil, fmt.Errorf("cmdline pid %d: %w", pid, ErrNoSuchProcess)
	}
	mib := []int32{ctlKern, kernProcArgs, pid, kernProcArgv}

	buf := make([]byte, initialArgvSize)
	for {
		size := uintptr(len(buf))
		errno := sysctlFn(mib, buf, &size)
		if errno == 0 {
			args, err := ParseArgv(buf)
			if err != nil {
				return nil, fmt.Errorf("cmdline pid %d: %w", pid, err)
			}
			return args, nil
		}
		switch errno {
		case unix.ENOMEM:
			buf = make([]byte, 2*len(buf))
		case unix.ESRCH:
			return nil, fmt.Errorf("cmdline pid %d: %w", pid, ErrNoSuchProcess)
		default:
			return nil, &SyscallError{Op: "sysctl kern.proc_args", Pid: pid, Errno: errno}
		}
	}
}

// Environ returns pid's environment vector parsed into strings, using the
// same growth loop as CmdlineSlice. Reading another user's environment
// requires privilege; expect ErrAccessDenied-shaped failures more often
// than for argv.
func Environ(pid int32) ([]string, error) {
	if pid < 0 {
		return nil, fmt.Errorf("environ pid %d: %w", pid, ErrNoSuchProcess)
	}
	mib := []int32{ctlKern, kernProcArgs, pid, kernProcEnv}

	buf := make([]byte, initialArgvSize)
	for {
		size := uintptr(len(buf))
		errno := sysctlFn(mib, buf, &size)
		if errno == 0 {
			env, err := ParseArgv(buf)
			if err != nil {
				return nil, fmt.Errorf("environ pid %d: %w", pid, err)
			}
			return env, nil
		}
		switch errno {
		case unix.ENOMEM:
			buf = make([]byte, 2*len(buf))
		case unix.ESRCH:
			return nil, fmt.Errorf("environ pid %d: %w", pid, ErrNoSuchProcess)
		default:
			return nil, &SyscallError{Op: "sysctl kern.proc_args", Pid: pid, Errno: errno}
		}
	}
}

// ArgMax reports the kernel's kern.argmax limit, an upper bound on the size
// any argument buffer can reach. Useful as a sanity cap for callers that
// want to pre-size buffers themselves.
func ArgMax() (int, error) {
	mib := []int32{ctlKern, kernArgMax}
	var argmax int32
	size := unsafe.Sizeof(argmax)
	if errno := sysctlFn(mib, (*[4]byte)(unsafe.Pointer(&argmax))[:], &size); errno != 0 {
		return 0, &SyscallError{Op: "sysctl kern.argmax", Pid: -1, Errno: errno}
	}
	return int(argmax), nil
}
