package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schoolplanner/internal/domain"
)

type catalogService struct {
	catalogRepo    domain.CatalogRepository
	contextTimeout time.Duration
}

// NewCatalogService creates the level/group/subject/course management
// service.
func NewCatalogService(catalogRepo domain.CatalogRepository, timeout time.Duration) domain.CatalogService {
	return &catalogService{catalogRepo: catalogRepo, contextTimeout: timeout}
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return nil
}

func (s *catalogService) AddLevel(ctx context.Context, schoolID, name string) (*domain.Level, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireName(name); err != nil {
		return nil, err
	}
	level := &domain.Level{SchoolID: schoolID, Name: strings.TrimSpace(name)}
	if err := s.catalogRepo.CreateLevel(ctx, level); err != nil {
		return nil, fmt.Errorf("failed to create level: %w", err)
	}
	return level, nil
}

func (s *catalogService) ListLevels(ctx context.Context, schoolID string) ([]*domain.Level, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.ListLevels(ctx, schoolID)
}

func (s *catalogService) DeleteLevel(ctx context.Context, schoolID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.DeleteLevel(ctx, schoolID, id)
}

func (s *catalogService) AddGroup(ctx context.Context, schoolID, name, levelID string) (*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireName(name); err != nil {
		return nil, err
	}
	if levelID == "" {
		return nil, fmt.Errorf("%w: level is required", domain.ErrValidation)
	}
	group := &domain.Group{SchoolID: schoolID, Name: strings.TrimSpace(name), LevelID: levelID}
	if err := s.catalogRepo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

func (s *catalogService) ListGroups(ctx context.Context, schoolID string) ([]*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.ListGroups(ctx, schoolID)
}

func (s *catalogService) DeleteGroup(ctx context.Context, schoolID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.DeleteGroup(ctx, schoolID, id)
}

func validateSubject(subject *domain.Subject) error {
	if err := requireName(subject.Name); err != nil {
		return err
	}
	if subject.LevelID == "" {
		return fmt.Errorf("%w: level is required", domain.ErrValidation)
	}
	if subject.Fee < 0 {
		return fmt.Errorf("%w: fee cannot be negative", domain.ErrValidation)
	}
	if subject.SessionsPerMonth < 0 {
		return fmt.Errorf("%w: sessions per month cannot be negative", domain.ErrValidation)
	}
	return nil
}

func (s *catalogService) AddSubject(ctx context.Context, subject *domain.Subject) (*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateSubject(subject); err != nil {
		return nil, err
	}
	if err := s.catalogRepo.CreateSubject(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}
	return subject, nil
}

func (s *catalogService) UpdateSubject(ctx context.Context, subject *domain.Subject) (*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateSubject(subject); err != nil {
		return nil, err
	}
	if err := s.catalogRepo.UpdateSubject(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}
	return subject, nil
}

func (s *catalogService) ListSubjects(ctx context.Context, schoolID string) ([]*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.ListSubjects(ctx, schoolID)
}

func (s *catalogService) DeleteSubject(ctx context.Context, schoolID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.DeleteSubject(ctx, schoolID, id)
}

func (s *catalogService) AddCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireName(course.Name); err != nil {
		return nil, err
	}
	if course.Fee < 0 {
		return nil, fmt.Errorf("%w: fee cannot be negative", domain.ErrValidation)
	}
	if err := s.catalogRepo.CreateCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return course, nil
}

func (s *catalogService) UpdateCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireName(course.Name); err != nil {
		return nil, err
	}
	if err := s.catalogRepo.UpdateCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return course, nil
}

func (s *catalogService) ListCourses(ctx context.Context, schoolID string) ([]*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.ListCourses(ctx, schoolID)
}

func (s *catalogService) DeleteCourse(ctx context.Context, schoolID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.DeleteCourse(ctx, schoolID, id)
}
