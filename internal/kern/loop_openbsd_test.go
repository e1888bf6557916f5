//go:build openbsd

package kern

import (
	"errors"
	"syscall"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

// swapSysctl installs fn as the syscall entry for the duration of the test.
func swapSysctl(t *testing.T, fn func(mib []int32, dst []byte, size *uintptr) syscall.Errno) {
	t.Helper()
	prev := sysctlFn
	sysctlFn = fn
	t.Cleanup(func() { sysctlFn = prev })
}

// fillArgv writes a KERN_PROC_ARGV-shaped buffer into dst: a NULL-terminated
// vector of absolute pointers into dst itself, followed by the NUL-terminated
// strings. Returns the number of bytes written.
func fillArgv(dst []byte, args []string) uintptr {
	ptrSize := int(unsafe.Sizeof(uintptr(0)))
	base := uintptr(unsafe.Pointer(&dst[0]))

	strOff := (len(args) + 1) * ptrSize
	for i, arg := range args {
		*(*uintptr)(unsafe.Pointer(&dst[i*ptrSize])) = base + uintptr(strOff)
		copy(dst[strOff:], arg)
		strOff += len(arg)
		dst[strOff] = 0
		strOff++
	}
	*(*uintptr)(unsafe.Pointer(&dst[len(args)*ptrSize])) = 0
	return uintptr(strOff)
}

func TestCmdlineSlice_DoublesUntilFit(t *testing.T) {
	want := []string{"/bin/ls", "-la"}
	var sizes []int
	swapSysctl(t, func(mib []int32, dst []byte, size *uintptr) syscall.Errno {
		sizes = append(sizes, len(dst))
		if len(sizes) < 3 {
			return unix.ENOMEM
		}
		*size = fillArgv(dst, want)
		return 0
	})

	args, err := CmdlineSlice(42)
	if err != nil {
		t.Fatalf("CmdlineSlice: %v", err)
	}
	if len(args) != 2 || args[0] != want[0] || args[1] != want[1] {
		t.Errorf("args = %q, want %q", args, want)
	}
	if len(sizes) != 3 || sizes[0] != 128 || sizes[1] != 256 || sizes[2] != 512 {
		t.Errorf("buffer sizes = %v, want [128 256 512]", sizes)
	}
}

func TestCmdlineSlice_NoRetryWhenGone(t *testing.T) {
	calls := 0
	swapSysctl(t, func(mib []int32, dst []byte, size *uintptr) syscall.Errno {
		calls++
		return unix.ESRCH
	})

	_, err := CmdlineSlice(42)
	if !errors.Is(err, ErrNoSuchProcess) {
		t.Fatalf("err = %v, want ErrNoSuchProcess", err)
	}
	if calls != 1 {
		t.Errorf("syscall count = %d, want 1 (ESRCH must not be retried)", calls)
	}
}

func TestCmdlineSlice_FatalErrnoAborts(t *testing.T) {
	calls := 0
	swapSysctl(t, func(mib []int32, dst []byte, size *uintptr) syscall.Errno {
		calls++
		return unix.EPERM
	})

	_, err := CmdlineSlice(42)
	var scErr *SyscallError
	if !errors.As(err, &scErr) {
		t.Fatalf("err = %v, want *SyscallError", err)
	}
	if scErr.Errno != unix.EPERM {
		t.Errorf("errno = %v, want EPERM", scErr.Errno)
	}
	if calls != 1 {
		t.Errorf("syscall count = %d, want 1", calls)
	}
}

func TestCmdline_SizingFailureSkipsFetch(t *testing.T) {
	fetches := 0
	swapSysctl(t, func(mib []int32, dst []byte, size *uintptr) syscall.Errno {
		if dst != nil {
			fetches++
			return 0
		}
		return unix.ESRCH
	})

	_, err := Cmdline(42)
	var scErr *SyscallError
	if !errors.As(err, &scErr) {
		t.Fatalf("err = %v, want *SyscallError", err)
	}
	if fetches != 0 {
		t.Errorf("fetch calls after failed sizing probe = %d, want 0", fetches)
	}
}

func TestProcesses_RetriesWhenTableGrows(t *testing.T) {
	var fetchCounts []int32
	probes, fetches := 0, 0
	swapSysctl(t, func(mib []int32, dst []byte, size *uintptr) syscall.Errno {
		if dst == nil {
			probes++
			*size = uintptr(sizeofKinfoProc)
			return 0
		}
		fetches++
		fetchCounts = append(fetchCounts, mib[5])
		if fetches == 1 {
			// The table outgrew the headroom between the two calls.
			return unix.ENOMEM
		}
		p := (*KinfoProc)(unsafe.Pointer(&dst[0]))
		p.Pid = 1
		*size = uintptr(sizeofKinfoProc)
		return 0
	})

	procs, err := Processes()
	if err != nil {
		t.Fatalf("Processes: %v", err)
	}
	if len(procs) != 1 || procs[0].Pid != 1 {
		t.Fatalf("procs = %+v, want one entry with pid 1", procs)
	}
	if probes != 2 || fetches != 2 {
		t.Errorf("probes = %d, fetches = %d, want 2 and 2", probes, fetches)
	}
	if len(fetchCounts) == 2 && fetchCounts[1] <= fetchCounts[0] {
		t.Errorf("retry fetch count = %d, want more headroom than first %d",
			fetchCounts[1], fetchCounts[0])
	}
}

func TestProcesses_GivesUpAfterBoundedRetries(t *testing.T) {
	fetches := 0
	swapSysctl(t, func(mib []int32, dst []byte, size *uintptr) syscall.Errno {
		if dst == nil {
			*size = uintptr(sizeofKinfoProc)
			return 0
		}
		fetches++
		return unix.ENOMEM
	})

	_, err := Processes()
	var scErr *SyscallError
	if !errors.As(err, &scErr) {
		t.Fatalf("err = %v, want *SyscallError", err)
	}
	if scErr.Errno != unix.ENOMEM {
		t.Errorf("errno = %v, want ENOMEM", scErr.Errno)
	}
	if fetches != 3 {
		t.Errorf("fetch attempts = %d, want 3", fetches)
	}
}
