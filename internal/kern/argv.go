package kern

import (
	"bytes"
	"errors"
	"unsafe"
)

// Errors returned by ParseArgv for malformed kernel buffers.
var (
	errArgvUnterminated = errors.New("argv vector has no NULL terminator")
	errArgvOutOfRange   = errors.New("argv pointer outside buffer")
)

// ParseArgv decodes the buffer filled by the KERN_PROC_ARGV sysctl.
//
// Per sysctl(2), the kernel fills the caller's buffer with an array of char
// pointers terminated by a NULL pointer, followed by the strings themselves.
// The pointers are absolute addresses inside the very buffer the caller
// passed, so each one is translated to an offset before the string is read.
func ParseArgv(buf []byte) ([]string, error) {
	if len(buf) == 0 {
		return nil, errArgvUnterminated
	}

	base := uintptr(unsafe.Pointer(&buf[0]))
	ptrSize := int(unsafe.Sizeof(uintptr(0)))

	args := []string{}
	for off := 0; off+ptrSize <= len(buf); off += ptrSize {
		p := *(*uintptr)(unsafe.Pointer(&buf[off]))
		if p == 0 {
			return args, nil
		}
		if p < base || p >= base+uintptr(len(buf)) {
			return nil, errArgvOutOfRange
		}
		str := buf[p-base:]
		end := bytes.IndexByte(str, 0)
		if end < 0 {
			end = len(str)
		}
		args = append(args, string(str[:end]))
	}
	return nil, errArgvUnterminated
}
