package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"schoolplanner/internal/delivery/http/middleware"
	"schoolplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeScheduleService implements domain.ScheduleService for handler tests.
type fakeScheduleService struct {
	getResult     []domain.ScheduledSession
	getErr        error
	replaceResult []domain.ScheduledSession
	replaceErr    error

	lastGetSchoolID     string
	lastReplaceSchoolID string
	lastReplaceSessions []domain.ScheduledSession
}

func (f *fakeScheduleService) GetSchedule(_ context.Context, schoolID string) ([]domain.ScheduledSession, error) {
	f.lastGetSchoolID = schoolID
	return f.getResult, f.getErr
}

func (f *fakeScheduleService) ReplaceSchedule(_ context.Context, schoolID string, sessions []domain.ScheduledSession) ([]domain.ScheduledSession, error) {
	f.lastReplaceSchoolID = schoolID
	f.lastReplaceSessions = sessions
	return f.replaceResult, f.replaceErr
}

// withClaims sets authenticated claims on the request, as RequireAuth would.
func withClaims(req *http.Request, schoolID, role string) *http.Request {
	return req.WithContext(middleware.SetClaims(req.Context(), &domain.TokenClaims{SchoolID: schoolID, Role: role}))
}

func testSession(id string) domain.ScheduledSession {
	return domain.ScheduledSession{
		ID:        id,
		Day:       domain.Monday,
		TimeSlot:  "10:00",
		Classroom: "A1",
		Duration:  60,
		Ref:       domain.SubjectRef("subj-1"),
	}
}

func TestScheduleController_GetSchedule(t *testing.T) {
	tests := []struct {
		name       string
		schoolID   string
		claims     *domain.TokenClaims
		svc        *fakeScheduleService
		wantStatus int
	}{
		{
			name:       "success own school",
			schoolID:   "school-1",
			claims:     &domain.TokenClaims{SchoolID: "school-1", Role: domain.RoleOwner},
			svc:        &fakeScheduleService{getResult: []domain.ScheduledSession{testSession("s1")}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "super admin reads any school",
			schoolID:   "school-2",
			claims:     &domain.TokenClaims{Role: domain.RoleSuperAdmin},
			svc:        &fakeScheduleService{},
			wantStatus: http.StatusOK,
		},
		{
			name:       "staff of another school is forbidden",
			schoolID:   "school-2",
			claims:     &domain.TokenClaims{SchoolID: "school-1", Role: domain.RoleStaff},
			svc:        &fakeScheduleService{},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing claims",
			schoolID:   "school-1",
			claims:     nil,
			svc:        &fakeScheduleService{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown school",
			schoolID:   "school-9",
			claims:     &domain.TokenClaims{Role: domain.RoleSuperAdmin},
			svc:        &fakeScheduleService{getErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "service failure",
			schoolID:   "school-1",
			claims:     &domain.TokenClaims{SchoolID: "school-1", Role: domain.RoleOwner},
			svc:        &fakeScheduleService{getErr: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewScheduleController(testLogger, tt.svc)

			req := httptest.NewRequest(http.MethodGet, "/schools/"+tt.schoolID+"/schedule", nil)
			req.SetPathValue("schoolID", tt.schoolID)
			if tt.claims != nil {
				req = withClaims(req, tt.claims.SchoolID, tt.claims.Role)
			}
			rec := httptest.NewRecorder()

			ctrl.GetSchedule(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.schoolID, tt.svc.lastGetSchoolID)
			}
		})
	}
}

func TestScheduleController_ReplaceSchedule(t *testing.T) {
	saved := []domain.ScheduledSession{testSession("s1")}

	tests := []struct {
		name       string
		body       string
		svc        *fakeScheduleService
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"sessions":[{"day":"monday","time_slot":"10:00","classroom":"A1","duration":60,"subject_id":"subj-1"}]}`,
			svc:        &fakeScheduleService{replaceResult: saved},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty schedule is allowed",
			body:       `{"sessions":[]}`,
			svc:        &fakeScheduleService{replaceResult: []domain.ScheduledSession{}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown field rejected",
			body:       `{"sessions":[],"extra":true}`,
			svc:        &fakeScheduleService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "session with both subject and course rejected at decode",
			body:       `{"sessions":[{"day":"monday","time_slot":"10:00","classroom":"A1","duration":60,"subject_id":"s","course_id":"c"}]}`,
			svc:        &fakeScheduleService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid session reported by service",
			body:       `{"sessions":[{"day":"monday","time_slot":"10:15","classroom":"A1","duration":60,"subject_id":"subj-1"}]}`,
			svc:        &fakeScheduleService{replaceErr: domain.ErrValidation},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewScheduleController(testLogger, tt.svc)

			req := httptest.NewRequest(http.MethodPut, "/schools/school-1/schedule", bytes.NewBufferString(tt.body))
			req.SetPathValue("schoolID", "school-1")
			req = withClaims(req, "school-1", domain.RoleOwner)
			rec := httptest.NewRecorder()

			ctrl.ReplaceSchedule(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.name == "success" {
				assert.Equal(t, "school-1", tt.svc.lastReplaceSchoolID)
				require.Len(t, tt.svc.lastReplaceSessions, 1)
				assert.Equal(t, "subj-1", tt.svc.lastReplaceSessions[0].Ref.EntityID())
			}
		})
	}
}

func TestScheduleController_GetScheduleLayout(t *testing.T) {
	// Two staggered sessions on the same day: they overlap, so each gets half
	// the day width.
	a := domain.ScheduledSession{ID: "a", Day: domain.Monday, TimeSlot: "10:00", Classroom: "A1", Duration: 60, Ref: domain.SubjectRef("subj-1")}
	b := domain.ScheduledSession{ID: "b", Day: domain.Monday, TimeSlot: "10:30", Classroom: "A2", Duration: 60, Ref: domain.SubjectRef("subj-2")}

	svc := &fakeScheduleService{getResult: []domain.ScheduledSession{a, b}}
	ctrl := NewScheduleController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/schools/school-1/schedule/layout", nil)
	req.SetPathValue("schoolID", "school-1")
	req = withClaims(req, "school-1", domain.RoleStaff)
	rec := httptest.NewRecorder()

	ctrl.GetScheduleLayout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data ScheduleLayoutResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Len(t, envelope.Data.Sessions, 2)
	require.Contains(t, envelope.Data.Geometry, "a")
	require.Contains(t, envelope.Data.Geometry, "b")
	assert.Equal(t, 2, envelope.Data.Geometry["a"].Columns)
	assert.NotEqual(t, envelope.Data.Geometry["a"].LeftPct, envelope.Data.Geometry["b"].LeftPct)
	assert.Len(t, envelope.Data.Days, 7)
	assert.Len(t, envelope.Data.SlotTimes, 30)
	assert.Equal(t, "08:00", envelope.Data.SlotTimes[0])
}
