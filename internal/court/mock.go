package court

import (
	"context"
	"fmt"
	"sync"
)

// MockRepository is an in-memory Repository for tests. It is safe for
// concurrent use.
type MockRepository struct {
	mu     sync.Mutex
	courts map[string]Court

	GetCalls []string
}

// NewMock creates a mock holding the given courts.
func NewMock(courts ...Court) *MockRepository {
	m := &MockRepository{courts: make(map[string]Court)}
	for _, c := range courts {
		m.courts[c.ID] = c
	}
	return m
}

func (m *MockRepository) Get(_ context.Context, id string) (Court, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, id)
	c, ok := m.courts[id]
	if !ok {
		return Court{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c, nil
}

func (m *MockRepository) List(_ context.Context) ([]Court, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Court, 0, len(m.courts))
	for _, c := range m.courts {
		out = append(out, c)
	}
	return out, nil
}

func (m *MockRepository) Upsert(_ context.Context, c Court) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courts[c.ID] = c
	return nil
}
