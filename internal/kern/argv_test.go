package kern

import (
	"testing"
	"unsafe"
)

// buildArgvBuffer lays out args the way the KERN_PROC_ARGV sysctl does:
// a NULL-terminated array of absolute pointers into the buffer, followed by
// the NUL-terminated strings.
func buildArgvBuffer(args []string) []byte {
	ptrSize := int(unsafe.Sizeof(uintptr(0)))
	vecLen := (len(args) + 1) * ptrSize

	total := vecLen
	for _, a := range args {
		total += len(a) + 1
	}

	buf := make([]byte, total)
	base := uintptr(unsafe.Pointer(&buf[0]))

	off := vecLen
	for i, a := range args {
		*(*uintptr)(unsafe.Pointer(&buf[i*ptrSize])) = base + uintptr(off)
		copy(buf[off:], a)
		off += len(a) + 1
	}
	// The terminating NULL pointer is already zero.
	return buf
}

func TestParseArgv_RoundTrip(t *testing.T) {
	want := []string{"/usr/bin/tail", "-f", "/var/log/messages"}
	buf := buildArgvBuffer(want)

	got, err := ParseArgv(buf)
	if err != nil {
		t.Fatalf("ParseArgv() error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("ParseArgv() returned %d args, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseArgv_EmptyVector(t *testing.T) {
	// A vector holding only the NULL terminator: zero arguments.
	buf := buildArgvBuffer(nil)

	got, err := ParseArgv(buf)
	if err != nil {
		t.Fatalf("ParseArgv() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ParseArgv() = %v, want empty", got)
	}
}

func TestParseArgv_EmptyBuffer(t *testing.T) {
	if _, err := ParseArgv(nil); err == nil {
		t.Error("ParseArgv(nil) should fail")
	}
}

func TestParseArgv_Unterminated(t *testing.T) {
	// A single pointer that aims back at the start of the buffer: valid as
	// a pointer, but the vector never hits a NULL terminator.
	ptrSize := int(unsafe.Sizeof(uintptr(0)))
	buf := make([]byte, ptrSize)
	*(*uintptr)(unsafe.Pointer(&buf[0])) = uintptr(unsafe.Pointer(&buf[0]))

	if _, err := ParseArgv(buf); err == nil {
		t.Error("ParseArgv() should fail on a vector with no terminator")
	}
}

func TestParseArgv_PointerOutsideBuffer(t *testing.T) {
	ptrSize := int(unsafe.Sizeof(uintptr(0)))
	buf := make([]byte, 2*ptrSize)

	// A pointer that cannot possibly land inside buf.
	*(*uintptr)(unsafe.Pointer(&buf[0])) = uintptr(unsafe.Pointer(&buf[0])) + uintptr(len(buf)) + 4096

	if _, err := ParseArgv(buf); err == nil {
		t.Error("ParseArgv() should reject pointers outside the buffer")
	}
}

func TestParseArgv_StringWithoutNUL(t *testing.T) {
	// A string running to the very end of the buffer with no terminator is
	// accepted as-is; the kernel always terminates, this guards the parser.
	ptrSize := int(unsafe.Sizeof(uintptr(0)))
	buf := make([]byte, 2*ptrSize+2)
	base := uintptr(unsafe.Pointer(&buf[0]))
	*(*uintptr)(unsafe.Pointer(&buf[0])) = base + uintptr(2*ptrSize)
	buf[2*ptrSize] = 'o'
	buf[2*ptrSize+1] = 'k'

	got, err := ParseArgv(buf)
	if err != nil {
		t.Fatalf("ParseArgv() error: %v", err)
	}
	if len(got) != 1 || got[0] != "ok" {
		t.Errorf("ParseArgv() = %v, want [ok]", got)
	}
}
