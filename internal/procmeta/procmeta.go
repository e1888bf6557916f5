// Package procmeta models per-process metadata assembled from kernel
// snapshots.
package procmeta

import "strings"

// ProcessMetadata holds structured process information for one pid at the
// instant it was collected.
type ProcessMetadata struct {
	PID         int32             // Process identifier
	PPID        int32             // Parent process identifier
	UID         uint32            // Effective user id
	Comm        string            // Short command name from the process table
	Args        []string          // Command-line arguments
	CmdlineFull string            // Full command line as single string
	Environ     map[string]string // Parsed environment variables, if collected
}

// parseEnviron turns raw KEY=VALUE strings into a map. Entries without an
// equals sign or with an empty key are dropped; duplicate keys keep the
// last value, matching execve semantics.
func parseEnviron(raw []string) map[string]string {
	env := make(map[string]string, len(raw))
	for _, entry := range raw {
		idx := strings.IndexByte(entry, '=')
		if idx <= 0 {
			continue
		}
		env[entry[:idx]] = entry[idx+1:]
	}
	return env
}

// parseCmdline returns the argument slice and the space-joined command line.
func parseCmdline(raw []string) ([]string, string) {
	if len(raw) == 0 {
		return nil, ""
	}
	return raw, strings.Join(raw, " ")
}
