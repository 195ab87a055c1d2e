package schedule

import (
	"context"
	"sync"
)

// memoryStore keeps templates for the lifetime of the process only.
type memoryStore struct {
	mu        sync.RWMutex
	templates map[string]WeeklyTemplate
}

// NewMemory creates an in-memory Store.
func NewMemory() Store {
	return &memoryStore{templates: make(map[string]WeeklyTemplate)}
}

func (m *memoryStore) Get(_ context.Context, courtID string) (WeeklyTemplate, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tpl, ok := m.templates[courtID]
	if !ok {
		return WeeklyTemplate{}, false, nil
	}
	return tpl.Clone(), true, nil
}

func (m *memoryStore) Set(_ context.Context, courtID string, tpl WeeklyTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[courtID] = tpl.Clone()
	return nil
}

func (m *memoryStore) EnsureDefault(_ context.Context, courtID string) (WeeklyTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tpl, ok := m.templates[courtID]
	if !ok {
		tpl = Default()
		m.templates[courtID] = tpl
	}
	return tpl.Clone(), nil
}
