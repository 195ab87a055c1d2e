package schedule

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetFunc           func(courtID string) (WeeklyTemplate, bool, error)
	SetFunc           func(courtID string, tpl WeeklyTemplate) error
	EnsureDefaultFunc func(courtID string) (WeeklyTemplate, error)

	// Call records
	GetCalls []string
	SetCalls []struct {
		CourtID  string
		Template WeeklyTemplate
	}
	EnsureDefaultCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Get(_ context.Context, courtID string) (WeeklyTemplate, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, courtID)
	if m.GetFunc != nil {
		return m.GetFunc(courtID)
	}
	return WeeklyTemplate{}, false, nil
}

func (m *MockStore) Set(_ context.Context, courtID string, tpl WeeklyTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, struct {
		CourtID  string
		Template WeeklyTemplate
	}{courtID, tpl})
	if m.SetFunc != nil {
		return m.SetFunc(courtID, tpl)
	}
	return nil
}

func (m *MockStore) EnsureDefault(_ context.Context, courtID string) (WeeklyTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnsureDefaultCalls = append(m.EnsureDefaultCalls, courtID)
	if m.EnsureDefaultFunc != nil {
		return m.EnsureDefaultFunc(courtID)
	}
	return Default(), nil
}
