package match

import (
	"context"
	"sync"
)

// MockRepository is a mock implementation of the Repository interface for
// testing. It is safe for concurrent use.
type MockRepository struct {
	mu sync.Mutex

	// Spies for method calls
	ListByCourtFunc func(courtID string) ([]Record, error)
	CancelFunc      func(matchID string) error

	// Call records
	ListByCourtCalls []string
	CancelCalls      []string
}

// NewMock creates a new mock instance.
func NewMock() *MockRepository {
	return &MockRepository{}
}

// Reset clears all call records.
func (m *MockRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListByCourtCalls = nil
	m.CancelCalls = nil
}

func (m *MockRepository) ListByCourt(_ context.Context, courtID string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListByCourtCalls = append(m.ListByCourtCalls, courtID)
	if m.ListByCourtFunc != nil {
		return m.ListByCourtFunc(courtID)
	}
	return []Record{}, nil
}

func (m *MockRepository) Cancel(_ context.Context, matchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CancelCalls = append(m.CancelCalls, matchID)
	if m.CancelFunc != nil {
		return m.CancelFunc(matchID)
	}
	return nil
}
