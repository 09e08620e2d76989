package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"schoolplanner/internal/domain"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a CodeHasher that stores school access codes as
// bcrypt hashes.
func NewBcryptHasher(cost int) domain.CodeHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, code string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
}
