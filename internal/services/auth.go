package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"schoolplanner/internal/domain"
)

type authService struct {
	schoolRepo     domain.SchoolRepository
	hasher         domain.CodeHasher
	tokens         domain.TokenIssuer
	adminCode      string
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

// NewAuthService creates the access-code login service. adminCode is the
// configured super-admin code; school codes are matched against their bcrypt
// hashes.
func NewAuthService(schoolRepo domain.SchoolRepository, hasher domain.CodeHasher, tokens domain.TokenIssuer, adminCode string, tokenExpiry, timeout time.Duration) domain.AuthService {
	return &authService{
		schoolRepo:     schoolRepo,
		hasher:         hasher,
		tokens:         tokens,
		adminCode:      adminCode,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

// LoginWithCode resolves an access code to a role. The code space is flat:
// a code belongs to the super-admin or to exactly one school as owner or
// staff. Matching scans all schools, which is fine at tenant counts this
// product serves (tens of schools, one bcrypt compare each).
func (s *authService) LoginWithCode(ctx context.Context, code string) (*domain.AuthResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: access code is required", domain.ErrValidation)
	}

	if s.adminCode != "" && subtle.ConstantTimeCompare([]byte(code), []byte(s.adminCode)) == 1 {
		token, err := s.tokens.Issue("", domain.RoleSuperAdmin, s.tokenExpiry)
		if err != nil {
			return nil, fmt.Errorf("failed to issue token: %w", err)
		}
		return &domain.AuthResult{Token: token, Role: domain.RoleSuperAdmin}, nil
	}

	schools, err := s.schoolRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	for _, school := range schools {
		role := ""
		if s.hasher.Compare(school.OwnerCodeHash, code) == nil {
			role = domain.RoleOwner
		} else if s.hasher.Compare(school.StaffCodeHash, code) == nil {
			role = domain.RoleStaff
		}
		if role == "" {
			continue
		}
		if !school.IsActive {
			return nil, domain.ErrSchoolInactive
		}
		token, err := s.tokens.Issue(school.ID, role, s.tokenExpiry)
		if err != nil {
			return nil, fmt.Errorf("failed to issue token: %w", err)
		}
		return &domain.AuthResult{Token: token, Role: role, SchoolID: school.ID, School: school}, nil
	}

	return nil, domain.ErrInvalidCredentials
}
