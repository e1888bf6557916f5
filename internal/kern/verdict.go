package kern

// Verdict is the outcome of probing a process identifier.
type Verdict int

const (
	// DoesNotExist: the pid names no live process.
	DoesNotExist Verdict = iota
	// Exists: the pid names a live process the caller can inspect.
	Exists
	// ExistsAccessDenied: the pid names a live process, but the caller
	// cannot read its details.
	ExistsAccessDenied
)

func (v Verdict) String() string {
	switch v {
	case Exists:
		return "exists"
	case ExistsAccessDenied:
		return "exists (access denied)"
	default:
		return "no such process"
	}
}

// Alive reports whether the verdict names a live process, regardless of
// whether the caller may inspect it.
func (v Verdict) Alive() bool {
	return v == Exists || v == ExistsAccessDenied
}
