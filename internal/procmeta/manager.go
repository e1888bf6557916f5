package procmeta

import (
	"sync"
)

// Manager manages process metadata lifecycle.
// It provides command-query separation for metadata access.
type Manager struct {
	mu             sync.RWMutex
	metadata       map[int32]*ProcessMetadata // PID -> process metadata
	metadataErrors map[int32]error            // PID -> metadata collection errors
	captureIssues  map[int32][]string         // PID -> list of warnings/issues
}

// NewManager creates a new process metadata manager.
func NewManager() *Manager {
	return &Manager{
		metadata:       make(map[int32]*ProcessMetadata),
		metadataErrors: make(map[int32]error),
		captureIssues:  make(map[int32][]string),
	}
}

// Get retrieves metadata for a PID (query).
// Returns nil if no metadata exists for this PID.
func (m *Manager) Get(pid int32) *ProcessMetadata {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metadata[pid]
}

// GetError retrieves the metadata collection error for a PID (query).
// Returns nil if no error exists for this PID.
func (m *Manager) GetError(pid int32) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metadataErrors[pid]
}

// GetIssues retrieves the capture issues for a PID (query).
// Returns nil if no issues exist for this PID.
func (m *Manager) GetIssues(pid int32) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.captureIssues[pid]
}

// Pids returns every pid with stored metadata (query).
func (m *Manager) Pids() []int32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pids := make([]int32, 0, len(m.metadata))
	for pid := range m.metadata {
		pids = append(pids, pid)
	}
	return pids
}

// Set stores metadata for a PID (command).
// If metadata already exists, it is replaced.
func (m *Manager) Set(pid int32, metadata *ProcessMetadata) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadata[pid] = metadata
}

// SetError stores a metadata collection error for a PID (command).
func (m *Manager) SetError(pid int32, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadataErrors[pid] = err
}

// AddIssue adds a capture issue for a PID (command).
func (m *Manager) AddIssue(pid int32, issue string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.captureIssues[pid] = append(m.captureIssues[pid], issue)
}

// Delete removes all data for a PID (command).
// Called when a snapshot no longer contains the process.
func (m *Manager) Delete(pid int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.metadata, pid)
	delete(m.metadataErrors, pid)
	delete(m.captureIssues, pid)
}

// Reset clears all stored data (command). Each snapshot starts fresh.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadata = make(map[int32]*ProcessMetadata)
	m.metadataErrors = make(map[int32]error)
	m.captureIssues = make(map[int32][]string)
}
