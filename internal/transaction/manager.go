package transaction

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// RollbackFunc is a function that reverses a filesystem change
type RollbackFunc func() error

type step struct {
	name string
	undo RollbackFunc
}

// Manager keeps the undo steps of a publish attempt
type Manager struct {
	mu     sync.Mutex
	steps  []step
	logger *zerolog.Logger
}

// NewManager creates a new transaction manager
func NewManager(logger *zerolog.Logger) *Manager {
	return &Manager{logger: logger}
}

// Add registers an undo step
func (m *Manager) Add(name string, fn RollbackFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = append(m.steps, step{name: name, undo: fn})
}

// Len returns the number of pending undo steps
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.steps)
}

// Rollback runs the registered steps newest first and clears them
func (m *Manager) Rollback() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.steps) == 0 {
		return nil
	}

	if m.logger != nil {
		m.logger.Debug().Int("steps", len(m.steps)).Msg("rolling back publish")
	}

	var errs []error
	for i := len(m.steps) - 1; i >= 0; i-- {
		s := m.steps[i]
		if err := s.undo(); err != nil {
			errs = append(errs, fmt.Errorf("rollback %q: %w", s.name, err))
			if m.logger != nil {
				m.logger.Warn().Err(err).Str("operation", s.name).Msg("rollback failed")
			}
		}
	}
	m.steps = nil

	return errors.Join(errs...)
}

// Commit drops the undo steps, keeping the changes
func (m *Manager) Commit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = nil
}
