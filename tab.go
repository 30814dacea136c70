package cron

import (
	"sync"

	"github.com/pkg/errors"
)

// Tab (crontab is short for cron table) holds the jobs a Planner resolves.
type Tab interface {
	// Stores a new job after the existing ones
	Put(*Job) error

	// Returns all jobs in insertion order
	All() ([]*Job, error)
}

// NewMemoryTab returns an in-memory Tab. This is a non-persistent storage.
func NewMemoryTab() *MemoryTab {
	return &MemoryTab{}
}

// MemoryTab is a simple storage backend that keeps jobs in the order they
// were put. Names need not be unique, a crontab may list the same job twice.
type MemoryTab struct {
	mu   sync.RWMutex
	jobs []*Job
}

// Put appends a job to the tab.
func (m *MemoryTab) Put(j *Job) error {
	if j == nil {
		return errors.New("cannot put nil job")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobs = append(m.jobs, j)
	return nil
}

// All returns all jobs from the tab.
func (m *MemoryTab) All() ([]*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]*Job, len(m.jobs))
	copy(res, m.jobs)
	return res, nil
}
