package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/mrzor/procsnap/internal/kern"
	"github.com/mrzor/procsnap/internal/procmeta"
)

// Text renders ps-style tabular output.
type Text struct {
	header *color.Color
	warn   *color.Color
	dead   *color.Color
	alive  *color.Color
}

// NewText creates the text formatter. noColor disables ANSI sequences, on
// top of color's own NO_COLOR/terminal detection.
func NewText(noColor bool) *Text {
	t := &Text{
		header: color.New(color.Bold),
		warn:   color.New(color.FgYellow),
		dead:   color.New(color.FgRed),
		alive:  color.New(color.FgGreen),
	}
	if noColor {
		for _, c := range []*color.Color{t.header, t.warn, t.dead, t.alive} {
			c.DisableColor()
		}
	}
	return t
}

// Snapshot writes one row per process: pid, ppid, uid, command line. When
// the argument vector was unreadable the comm field stands in, bracketed
// the way ps(1) marks system processes, and the recorded issue is appended.
func (t *Text) Snapshot(w io.Writer, procs []*procmeta.ProcessMetadata, mgr *procmeta.Manager) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, t.header.Sprint("PID\tPPID\tUID\tCOMMAND")); err != nil {
		return err
	}

	for _, p := range procs {
		cmdline := p.CmdlineFull
		if cmdline == "" {
			cmdline = "[" + p.Comm + "]"
		}
		row := fmt.Sprintf("%d\t%d\t%d\t%s", p.PID, p.PPID, p.UID, cmdline)
		if issues := mgr.GetIssues(p.PID); len(issues) > 0 {
			row += "\t" + t.warn.Sprintf("(%s)", strings.Join(issues, "; "))
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// Args writes the argument vector one entry per line, indexed.
func (t *Text) Args(w io.Writer, pid int32, args []string) error {
	if _, err := fmt.Fprintln(w, t.header.Sprintf("pid %d: %d argument(s)", pid, len(args))); err != nil {
		return err
	}
	for i, arg := range args {
		if _, err := fmt.Fprintf(w, "  [%d] %s\n", i, arg); err != nil {
			return err
		}
	}
	return nil
}

// Verdict writes a single line verdict.
func (t *Text) Verdict(w io.Writer, pid int32, v kern.Verdict) error {
	c := t.dead
	if v.Alive() {
		c = t.alive
	}
	_, err := fmt.Fprintf(w, "pid %d: %s\n", pid, c.Sprint(v.String()))
	return err
}
