package gateway

import (
	"context"
	"sync"

	"payfirm/internal/domain"
)

// MemoryStore is an in-memory run-history and roster-cache store with the
// same cap semantics as SQLiteStore. Used for -no-persist runs and tests.
type MemoryStore struct {
	mu     sync.Mutex
	runs   []domain.RunEntry
	roster *domain.RosterSnapshot
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveRun prepends the run and drops everything past domain.MaxStoredRuns.
func (s *MemoryStore) SaveRun(ctx context.Context, entry domain.RunEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = append([]domain.RunEntry{entry}, s.runs...)
	if len(s.runs) > domain.MaxStoredRuns {
		s.runs = s.runs[:domain.MaxStoredRuns]
	}
	return nil
}

// LoadRuns returns stored runs, newest first.
func (s *MemoryStore) LoadRuns(ctx context.Context) ([]domain.RunEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.RunEntry, len(s.runs))
	copy(out, s.runs)
	return out, nil
}

// ClearRuns removes the whole run history.
func (s *MemoryStore) ClearRuns(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = nil
	return nil
}

// SaveRoster replaces the cached roster snapshot.
func (s *MemoryStore) SaveRoster(ctx context.Context, snapshot domain.RosterSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = &snapshot
	return nil
}

// LoadRoster returns the cached roster snapshot, or nil when none is stored.
func (s *MemoryStore) LoadRoster(ctx context.Context) (*domain.RosterSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.roster, nil
}

// ClearRoster removes the cached roster snapshot.
func (s *MemoryStore) ClearRoster(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = nil
	return nil
}
