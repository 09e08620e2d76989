package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"schoolplanner/internal/domain"
)

type scheduleService struct {
	schoolRepo     domain.SchoolRepository
	store          domain.ScheduleStore
	contextTimeout time.Duration
}

// NewScheduleService creates a ScheduleService backed by the given school
// repository (existence checks) and schedule store (committed lists).
func NewScheduleService(schoolRepo domain.SchoolRepository, store domain.ScheduleStore, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{
		schoolRepo:     schoolRepo,
		store:          store,
		contextTimeout: timeout,
	}
}

func (s *scheduleService) GetSchedule(ctx context.Context, schoolID string) ([]domain.ScheduledSession, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.schoolRepo.GetByID(ctx, schoolID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get school: %w", err)
	}
	sessions, err := s.store.GetSchedule(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	if sessions == nil {
		sessions = []domain.ScheduledSession{}
	}
	return sessions, nil
}

func (s *scheduleService) ReplaceSchedule(ctx context.Context, schoolID string, sessions []domain.ScheduledSession) ([]domain.ScheduledSession, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.schoolRepo.GetByID(ctx, schoolID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get school: %w", err)
	}

	normalized := make([]domain.ScheduledSession, len(sessions))
	seen := make(map[string]struct{}, len(sessions))
	for i, session := range sessions {
		if err := session.Validate(); err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		if session.ID == "" {
			session.ID = uuid.NewString()
		}
		if _, dup := seen[session.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate session id %s", domain.ErrValidation, session.ID)
		}
		seen[session.ID] = struct{}{}
		normalized[i] = session
	}

	if err := s.store.ReplaceSchedule(ctx, schoolID, normalized); err != nil {
		return nil, fmt.Errorf("replace schedule: %w", err)
	}
	return normalized, nil
}
