package domain

import (
	"context"
	"time"
)

// School is a tenant of the admin panel. Access codes are stored hashed;
// the plain codes are shown once at provisioning time.
// swagger:model School
type School struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Logo          string    `json:"logo"`
	OwnerCodeHash string    `json:"-"`
	StaffCodeHash string    `json:"-"`
	IsActive      bool      `json:"is_active"`
	TrialEndDate  time.Time `json:"trial_end_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewSchool returns a new School with the given fields. ID is typically set
// by the repository on create.
func NewSchool(name, logo, ownerCodeHash, staffCodeHash string, trialEnd, createdAt, updatedAt time.Time) *School {
	return &School{
		Name:          name,
		Logo:          logo,
		OwnerCodeHash: ownerCodeHash,
		StaffCodeHash: staffCodeHash,
		IsActive:      true,
		TrialEndDate:  trialEnd,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

// SchoolRepository defines the interface for school storage.
type SchoolRepository interface {
	Create(ctx context.Context, school *School) error
	GetByID(ctx context.Context, id string) (*School, error)
	List(ctx context.Context) ([]*School, error)
	UpdateDetails(ctx context.Context, id, name, logo string) (*School, error)
	SetActive(ctx context.Context, id string, active bool) (*School, error)
	UpdateCodes(ctx context.Context, id, ownerCodeHash, staffCodeHash string) error
	Delete(ctx context.Context, id string) error
}

// ProvisionedSchool is the result of creating a school: the record plus the
// plain access codes, returned exactly once.
type ProvisionedSchool struct {
	School    *School `json:"school"`
	OwnerCode string  `json:"owner_code"`
	StaffCode string  `json:"staff_code"`
}

// SchoolService defines the super-admin school management operations.
type SchoolService interface {
	CreateSchool(ctx context.Context, name, logo, ownerEmail string, trialDays int) (*ProvisionedSchool, error)
	GetSchool(ctx context.Context, id string) (*School, error)
	ListSchools(ctx context.Context) ([]*School, error)
	UpdateSchoolDetails(ctx context.Context, id, name, logo string) (*School, error)
	ToggleSchoolStatus(ctx context.Context, id string) (*School, error)
	DeleteSchool(ctx context.Context, id string) error
}
