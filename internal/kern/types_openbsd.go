//go:build openbsd

package kern

import "unsafe"

// sysctl(2) identifiers, copied from sys/sysctl.h.
const (
	ctlKern      = 1  // "high kernel": proc, limits
	kernArgMax   = 8  // int: max bytes of arguments to execve(2)
	kernProc     = 66 // struct: process entries
	kernProcArgs = 55 // node: process argument/environment access

	kernProcAll = 0 // everything (KERN_PROC_ALL)

	kernProcArgv = 1 // argument vector (KERN_PROC_ARGV)
	kernProcEnv  = 3 // environment vector (KERN_PROC_ENV)
)

// KinfoProc mirrors struct kinfo_proc from sys/sysctl.h. The kernel fills
// one of these per process; every field is fixed-width so the layout does
// not vary by architecture. Only a handful of fields are interpreted here,
// the rest pass through to callers verbatim.
type KinfoProc struct {
	Forw         uint64
	Back         uint64
	Paddr        uint64
	Addr         uint64
	Fd           uint64
	Stats        uint64
	Limit        uint64
	Vmspace      uint64
	Sigacts      uint64
	Sess         uint64
	Tsess        uint64
	Ru           uint64
	Eflag        int32
	Exitsig      int32
	Flag         int32
	Pid          int32
	Ppid         int32
	Sid          int32
	Pgid         int32
	Tpgid        int32
	Uid          uint32
	Ruid         uint32
	Gid          uint32
	Rgid         uint32
	Groups       [16]uint32
	Ngroups      int16
	Jobc         int16
	Estcpu       uint32
	RtimeSec     uint32
	RtimeUsec    uint32
	Cpticks      int32
	Pctcpu       uint32
	Swtime       uint32
	Slptime      uint32
	Schedflags   int32
	Uticks       uint64
	Sticks       uint64
	Iticks       uint64
	Tracep       uint64
	Traceflag    int32
	Holdcnt      int32
	Siglist      int32
	Sigmask      uint32
	Sigignore    uint32
	Sigcatch     uint32
	Stat         int8
	Priority     uint8
	Usrpri       uint8
	Nice         uint8
	Xstat        uint16
	Acflag       uint16
	Comm         [24]byte
	Wmesg        [8]byte
	Wchan        uint64
	Login        [32]byte
	VmRssize     int32
	VmTsize      int32
	VmDsize      int32
	VmSsize      int32
	Uvalid       int64
	UstartSec    uint64
	UstartUsec   uint32
	UutimeSec    uint32
	UutimeUsec   uint32
	UstimeSec    uint32
	UstimeUsec   uint32
	UctimeSec    uint32
	UctimeUsec   uint32
	Psflags      int32
	Spare        int32
	Svuid        uint32
	Svgid        uint32
	Emul         [8]byte
	RlimRssCur   uint64
	CpuID        uint64
	VmMapSize    uint64
	Tid          int32
	Rtableid     uint32
}

const sizeofKinfoProc = int(unsafe.Sizeof(KinfoProc{}))

// CommString returns the process's short command name with the fixed-size
// array's trailing NULs stripped.
func (k *KinfoProc) CommString() string {
	return cstring(k.Comm[:])
}

func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
