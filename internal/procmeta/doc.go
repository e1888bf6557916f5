// Package procmeta assembles per-process metadata from kernel snapshots.
//
// ProcessMetadata holds the table-level fields (pid, ppid, uid, comm) plus
// the argument vector and, optionally, the parsed environment.
//
// Manager provides command-query separation over collected data:
//
// Queries (read-only):
//   - Get(pid) - Retrieve metadata
//   - GetError(pid) - Retrieve collection errors
//   - GetIssues(pid) - Retrieve capture warnings
//   - Pids() - All pids with stored metadata
//
// Commands (mutations):
//   - Set(pid, metadata) - Store metadata
//   - SetError(pid, err) - Store collection error
//   - AddIssue(pid, issue) - Add capture warning
//   - Delete(pid) - Drop one pid
//   - Reset() - Start a fresh snapshot
//
// Collector drives whole-system snapshots through the Source interface; the
// kernel-backed Source is OpenBSD-only, stubs serve everywhere else.
// Thread-safe with RWMutex for concurrent access.
package procmeta
