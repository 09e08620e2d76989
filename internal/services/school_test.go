package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolplanner/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeMailer records sends and optionally fails.
type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func TestSchoolService_CreateSchool(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSchoolRepo()
	mailer := &fakeMailer{}
	svc := NewSchoolService(repo, fakeHasher{}, mailer, testLogger, time.Second)

	got, err := svc.CreateSchool(ctx, "Al Noor Academy", "logo.png", "owner@example.com", 14)
	require.NoError(t, err)
	assert.NotEmpty(t, got.School.ID)
	assert.True(t, got.School.IsActive)
	assert.Len(t, got.OwnerCode, 8)
	assert.Len(t, got.StaffCode, 8)
	assert.NotEqual(t, got.OwnerCode, got.StaffCode)
	assert.False(t, got.School.TrialEndDate.IsZero())

	// Codes are stored hashed, never plain.
	stored, err := repo.GetByID(ctx, got.School.ID)
	require.NoError(t, err)
	assert.NotEqual(t, got.OwnerCode, stored.OwnerCodeHash)
	require.NoError(t, fakeHasher{}.Compare(stored.OwnerCodeHash, got.OwnerCode))
	require.NoError(t, fakeHasher{}.Compare(stored.StaffCodeHash, got.StaffCode))

	assert.Equal(t, []string{"owner@example.com"}, mailer.sent)
}

func TestSchoolService_CreateSchool_MailFailureIsNotFatal(t *testing.T) {
	repo := newFakeSchoolRepo()
	svc := NewSchoolService(repo, fakeHasher{}, &fakeMailer{err: errors.New("ses down")}, testLogger, time.Second)

	got, err := svc.CreateSchool(context.Background(), "School", "", "owner@example.com", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, got.School.ID)
}

func TestSchoolService_CreateSchool_RequiresName(t *testing.T) {
	svc := NewSchoolService(newFakeSchoolRepo(), fakeHasher{}, &fakeMailer{}, testLogger, time.Second)
	_, err := svc.CreateSchool(context.Background(), "   ", "", "", 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSchoolService_ToggleSchoolStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSchoolRepo()
	school := seedSchool(t, repo)
	school.IsActive = true
	svc := NewSchoolService(repo, fakeHasher{}, &fakeMailer{}, testLogger, time.Second)

	toggled, err := svc.ToggleSchoolStatus(ctx, school.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleSchoolStatus(ctx, school.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	_, err = svc.ToggleSchoolStatus(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSchoolService_UpdateSchoolDetails(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSchoolRepo()
	school := seedSchool(t, repo)
	svc := NewSchoolService(repo, fakeHasher{}, &fakeMailer{}, testLogger, time.Second)

	updated, err := svc.UpdateSchoolDetails(ctx, school.ID, "Renamed", "new-logo.png")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	_, err = svc.UpdateSchoolDetails(ctx, school.ID, "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
