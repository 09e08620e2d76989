package domain

import (
	"context"
	"time"
)

// Role tags what an access code grants.
const (
	RoleSuperAdmin = "super_admin"
	RoleOwner      = "owner"
	RoleStaff      = "staff"
)

// AuthResult is a successful code login: a bearer token plus what it grants.
type AuthResult struct {
	Token    string  `json:"token"`
	Role     string  `json:"role"`
	SchoolID string  `json:"school_id,omitempty"`
	School   *School `json:"school,omitempty"`
}

// AuthService logs users in by access code. A code belongs either to the
// configured super-admin or to exactly one school (owner or staff).
type AuthService interface {
	LoginWithCode(ctx context.Context, code string) (*AuthResult, error)
}

// CodeHasher hashes and verifies school access codes.
// Implementations may use bcrypt, argon2, etc.
type CodeHasher interface {
	Hash(code string) (string, error)
	Compare(hash, code string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated principal.
type TokenIssuer interface {
	Issue(schoolID, role string, expiry time.Duration) (string, error)
}

// TokenClaims is what a verified token grants.
type TokenClaims struct {
	SchoolID string
	Role     string
}

// TokenVerifier verifies a token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}
