// Package memory provides an in-memory ScheduleStore, used by tests and as
// a development fallback when no database is configured.
package memory

import (
	"context"
	"sync"

	"schoolplanner/internal/domain"
)

// ScheduleStore keeps committed session lists per school in memory. Reads
// and writes copy the slice, so callers can mutate their working lists
// freely.
type ScheduleStore struct {
	mu        sync.RWMutex
	schedules map[string][]domain.ScheduledSession
}

// NewScheduleStore returns an empty in-memory store.
func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{schedules: make(map[string][]domain.ScheduledSession)}
}

// GetSchedule returns a copy of the committed session list for the school.
// An unknown school has an empty schedule, not an error: schedules start
// empty.
func (s *ScheduleStore) GetSchedule(_ context.Context, schoolID string) ([]domain.ScheduledSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := s.schedules[schoolID]
	out := make([]domain.ScheduledSession, len(sessions))
	copy(out, sessions)
	return out, nil
}

// ReplaceSchedule swaps the committed session list for the school.
func (s *ScheduleStore) ReplaceSchedule(_ context.Context, schoolID string, sessions []domain.ScheduledSession) error {
	stored := make([]domain.ScheduledSession, len(sessions))
	copy(stored, sessions)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[schoolID] = stored
	return nil
}
