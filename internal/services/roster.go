package services

import (
	"context"
	"fmt"
	"time"

	"schoolplanner/internal/domain"
)

type rosterService struct {
	rosterRepo     domain.RosterRepository
	contextTimeout time.Duration
}

// NewRosterService creates the teacher/student management service.
func NewRosterService(rosterRepo domain.RosterRepository, timeout time.Duration) domain.RosterService {
	return &rosterService{rosterRepo: rosterRepo, contextTimeout: timeout}
}

func validateTeacher(teacher *domain.Teacher) error {
	if err := requireName(teacher.Name); err != nil {
		return err
	}
	if !teacher.SalaryType.Valid() {
		return fmt.Errorf("%w: salary type %q is unknown", domain.ErrValidation, teacher.SalaryType)
	}
	if teacher.SalaryValue < 0 {
		return fmt.Errorf("%w: salary value cannot be negative", domain.ErrValidation)
	}
	return nil
}

func (s *rosterService) AddTeacher(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateTeacher(teacher); err != nil {
		return nil, err
	}
	if err := s.rosterRepo.CreateTeacher(ctx, teacher); err != nil {
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}
	return teacher, nil
}

func (s *rosterService) UpdateTeacher(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateTeacher(teacher); err != nil {
		return nil, err
	}
	if err := s.rosterRepo.UpdateTeacher(ctx, teacher); err != nil {
		return nil, fmt.Errorf("failed to update teacher: %w", err)
	}
	return teacher, nil
}

func (s *rosterService) ListTeachers(ctx context.Context, schoolID string) ([]*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.rosterRepo.ListTeachers(ctx, schoolID)
}

func (s *rosterService) DeleteTeacher(ctx context.Context, schoolID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.rosterRepo.DeleteTeacher(ctx, schoolID, id)
}

func (s *rosterService) AddStudent(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireName(student.Name); err != nil {
		return nil, err
	}
	if student.LevelID == "" {
		return nil, fmt.Errorf("%w: level is required", domain.ErrValidation)
	}
	if student.RegistrationDate.IsZero() {
		student.RegistrationDate = time.Now()
	}
	if err := s.rosterRepo.CreateStudent(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return student, nil
}

func (s *rosterService) UpdateStudent(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireName(student.Name); err != nil {
		return nil, err
	}
	if err := s.rosterRepo.UpdateStudent(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return student, nil
}

func (s *rosterService) ListStudents(ctx context.Context, schoolID string) ([]*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.rosterRepo.ListStudents(ctx, schoolID)
}

func (s *rosterService) DeleteStudent(ctx context.Context, schoolID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.rosterRepo.DeleteStudent(ctx, schoolID, id)
}
