package auditmock

import (
	"context"
	"sync"

	domain "agrimarket-backend/internal/domain/audit"
)

// Repo keeps entries in memory so tests can assert on what was recorded.
type Repo struct {
	mu       sync.Mutex
	Entries  []domain.Entry
	CreateFn func(ctx context.Context, e *domain.Entry) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		if err := m.CreateFn(ctx, e); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, *e)
	return nil
}

func (m *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Entry, 0, len(m.Entries))
	for i := len(m.Entries) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, m.Entries[i])
	}
	return out, nil
}

func (m *Repo) ListBySubject(ctx context.Context, subjectID string) ([]domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Entry
	for _, e := range m.Entries {
		if e.SubjectID == subjectID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Actions returns recorded actions in order.
func (m *Repo) Actions() []domain.Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Action, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, e.Action)
	}
	return out
}
