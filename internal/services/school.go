package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"schoolplanner/internal/domain"
)

const (
	accessCodeLen      = 8
	accessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // no 0/O/1/I
)

type schoolService struct {
	schoolRepo     domain.SchoolRepository
	hasher         domain.CodeHasher
	mailer         domain.Mailer
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSchoolService creates the super-admin school management service.
// The mailer is used to deliver freshly generated access codes to the school
// owner; a mail failure does not fail provisioning.
func NewSchoolService(schoolRepo domain.SchoolRepository, hasher domain.CodeHasher, mailer domain.Mailer, logger *slog.Logger, timeout time.Duration) domain.SchoolService {
	return &schoolService{
		schoolRepo:     schoolRepo,
		hasher:         hasher,
		mailer:         mailer,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// generateAccessCode returns a short human-typable code from an unambiguous
// alphabet.
func generateAccessCode() (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(accessCodeAlphabet)))
	for i := 0; i < accessCodeLen; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate access code: %w", err)
		}
		b.WriteByte(accessCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

func (s *schoolService) CreateSchool(ctx context.Context, name, logo, ownerEmail string, trialDays int) (*domain.ProvisionedSchool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: school name is required", domain.ErrValidation)
	}

	ownerCode, err := generateAccessCode()
	if err != nil {
		return nil, err
	}
	staffCode, err := generateAccessCode()
	if err != nil {
		return nil, err
	}
	ownerHash, err := s.hasher.Hash(ownerCode)
	if err != nil {
		return nil, fmt.Errorf("failed to hash owner code: %w", err)
	}
	staffHash, err := s.hasher.Hash(staffCode)
	if err != nil {
		return nil, fmt.Errorf("failed to hash staff code: %w", err)
	}

	now := time.Now()
	var trialEnd time.Time
	if trialDays > 0 {
		trialEnd = now.AddDate(0, 0, trialDays)
	}
	school := domain.NewSchool(strings.TrimSpace(name), logo, ownerHash, staffHash, trialEnd, now, now)
	if err := s.schoolRepo.Create(ctx, school); err != nil {
		return nil, fmt.Errorf("failed to create school: %w", err)
	}

	if s.mailer != nil && ownerEmail != "" {
		subject := fmt.Sprintf("Your %s admin access", school.Name)
		text := fmt.Sprintf("Owner code: %s\nStaff code: %s", ownerCode, staffCode)
		html := fmt.Sprintf("<p>Owner code: <b>%s</b></p><p>Staff code: <b>%s</b></p>", ownerCode, staffCode)
		if err := s.mailer.Send(ownerEmail, subject, html, text); err != nil {
			s.logger.Warn("failed to send access codes", "school_id", school.ID, "err", err)
		}
	}

	return &domain.ProvisionedSchool{School: school, OwnerCode: ownerCode, StaffCode: staffCode}, nil
}

func (s *schoolService) GetSchool(ctx context.Context, id string) (*domain.School, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.schoolRepo.GetByID(ctx, id)
}

func (s *schoolService) ListSchools(ctx context.Context) ([]*domain.School, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	schools, err := s.schoolRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	if schools == nil {
		schools = []*domain.School{}
	}
	return schools, nil
}

func (s *schoolService) UpdateSchoolDetails(ctx context.Context, id, name, logo string) (*domain.School, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: school name is required", domain.ErrValidation)
	}
	return s.schoolRepo.UpdateDetails(ctx, id, strings.TrimSpace(name), logo)
}

func (s *schoolService) ToggleSchoolStatus(ctx context.Context, id string) (*domain.School, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	school, err := s.schoolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get school: %w", err)
	}
	return s.schoolRepo.SetActive(ctx, id, !school.IsActive)
}

func (s *schoolService) DeleteSchool(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.schoolRepo.Delete(ctx, id)
}
