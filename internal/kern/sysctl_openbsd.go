//go:build openbsd

package kern

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// sysctl issues a raw mib-based sysctl(2). When dst is nil the call is a
// sizing probe: the kernel writes the required byte count into *size without
// copying any data. On return *size holds the number of bytes the kernel
// actually produced.
func sysctl(mib []int32, dst []byte, size *uintptr) syscall.Errno {
	var p unsafe.Pointer
	if len(dst) > 0 {
		p = unsafe.Pointer(&dst[0])
	}
	_, _, errno := unix.Syscall6(
		unix.SYS_SYSCTL,
		uintptr(unsafe.Pointer(&mib[0])),
		uintptr(len(mib)),
		uintptr(p),
		uintptr(unsafe.Pointer(size)),
		0,
		0,
	)
	return errno
}

// sysctlFn is the indirection the readers call through; tests swap it out
// to script kernel behavior deterministically.
var sysctlFn = sysctl
