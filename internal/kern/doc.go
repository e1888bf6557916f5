// Package kern reads live process information from the OpenBSD kernel.
//
// Everything goes through sysctl(2); no external utilities or libkvm are
// involved. Three capabilities are exposed:
//
//   - Processes() - the full kinfo_proc table via
//     {CTL_KERN, KERN_PROC, KERN_PROC_ALL}
//   - Cmdline(pid) / CmdlineSlice(pid) - a process's argument vector, either
//     as the kernel's raw buffer (size-then-fetch) or parsed into strings
//     (capacity-doubling growth loop)
//   - PidExists(pid) / RefineLookupError(pid, err) - kill(pid, 0) liveness
//     probe and classification of ambiguous lookup failures into
//     ErrNoSuchProcess vs ErrAccessDenied
//
// All calls are stateless and independent: each opens its own buffers, issues
// its own kernel queries, and returns owned results. The process table is a
// live structure, so two consecutive reads may legitimately disagree.
package kern
