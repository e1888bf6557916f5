package output

import (
	"encoding/json"
	"io"

	"github.com/mrzor/procsnap/internal/kern"
	"github.com/mrzor/procsnap/internal/procmeta"
)

// JSON renders machine-readable output, one document per invocation.
type JSON struct{}

// NewJSON creates the JSON formatter.
func NewJSON() *JSON {
	return &JSON{}
}

type processRecord struct {
	PID     int32             `json:"pid"`
	PPID    int32             `json:"ppid"`
	UID     uint32            `json:"uid"`
	Comm    string            `json:"comm"`
	Args    []string          `json:"args,omitempty"`
	Cmdline string            `json:"cmdline,omitempty"`
	Environ map[string]string `json:"environ,omitempty"`
	Issues  []string          `json:"issues,omitempty"`
}

type argsRecord struct {
	PID  int32    `json:"pid"`
	Args []string `json:"args"`
}

type verdictRecord struct {
	PID          int32  `json:"pid"`
	Verdict      string `json:"verdict"`
	Alive        bool   `json:"alive"`
	AccessDenied bool   `json:"access_denied"`
}

func (j *JSON) Snapshot(w io.Writer, procs []*procmeta.ProcessMetadata, mgr *procmeta.Manager) error {
	records := make([]processRecord, 0, len(procs))
	for _, p := range procs {
		records = append(records, processRecord{
			PID:     p.PID,
			PPID:    p.PPID,
			UID:     p.UID,
			Comm:    p.Comm,
			Args:    p.Args,
			Cmdline: p.CmdlineFull,
			Environ: p.Environ,
			Issues:  mgr.GetIssues(p.PID),
		})
	}
	return encode(w, records)
}

func (j *JSON) Args(w io.Writer, pid int32, args []string) error {
	return encode(w, argsRecord{PID: pid, Args: args})
}

func (j *JSON) Verdict(w io.Writer, pid int32, v kern.Verdict) error {
	return encode(w, verdictRecord{
		PID:          pid,
		Verdict:      v.String(),
		Alive:        v.Alive(),
		AccessDenied: v == kern.ExistsAccessDenied,
	})
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
