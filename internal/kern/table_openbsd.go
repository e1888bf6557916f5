//go:build openbsd

package kern

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Processes returns a snapshot of every process currently visible at the
// caller's privilege level. The returned slice is owned by the caller; it is
// copied out of the sysctl buffer before returning.
//
// An empty table is a valid result, not an error.
func Processes() ([]KinfoProc, error) {
	mib := []int32{ctlKern, kernProc, kernProcAll, 0, int32(sizeofKinfoProc), 0}

	// The table can grow between the sizing probe and the fetch. Headroom
	// absorbs small fork bursts; when the kernel still reports ENOMEM the
	// probe is reissued with doubled headroom, bounded at three attempts,
	// the way kvm_getprocs(3) retries this race internally.
	headroom := uintptr(8)
	for attempt := 0; ; attempt++ {
		mib[5] = 0
		var size uintptr
		if errno := sysctlFn(mib, nil, &size); errno != 0 {
			return nil, &SyscallError{Op: "sysctl kern.proc size", Pid: -1, Errno: errno}
		}
		if size == 0 {
			return []KinfoProc{}, nil
		}

		count := size/uintptr(sizeofKinfoProc) + headroom
		mib[5] = int32(count)

		buf := make([]byte, count*uintptr(sizeofKinfoProc))
		size = uintptr(len(buf))
		errno := sysctlFn(mib, buf, &size)
		if errno == unix.ENOMEM && attempt < 2 {
			headroom *= 2
			continue
		}
		if errno != 0 {
			return nil, &SyscallError{Op: "sysctl kern.proc", Pid: -1, Errno: errno}
		}

		got := int(size) / sizeofKinfoProc
		if got == 0 {
			return []KinfoProc{}, nil
		}

		view := unsafe.Slice((*KinfoProc)(unsafe.Pointer(&buf[0])), got)
		procs := make([]KinfoProc, got)
		copy(procs, view)
		return procs, nil
	}
}
