package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"schoolplanner/internal/delivery/http/helpers"
	"schoolplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	claims *domain.TokenClaims
	err    error
}

func (f *fakeTokenVerifier) Verify(_ string) (*domain.TokenClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func TestRequireAuth(t *testing.T) {
	ownerClaims := &domain.TokenClaims{SchoolID: "school-1", Role: domain.RoleOwner}

	tests := []struct {
		name         string
		authHeader   string
		verifier     domain.TokenVerifier
		wantStatus   int
		wantBodyCode string
		nextCalled   bool
		wantClaims   *domain.TokenClaims
	}{
		{
			name:       "valid token sets claims and calls next",
			authHeader: "Bearer valid-token",
			verifier:   &fakeTokenVerifier{claims: ownerClaims},
			wantStatus: http.StatusOK,
			nextCalled: true,
			wantClaims: ownerClaims,
		},
		{
			name:         "missing authorization header",
			authHeader:   "",
			verifier:     &fakeTokenVerifier{claims: ownerClaims},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "no Bearer prefix",
			authHeader:   "Basic abc",
			verifier:     &fakeTokenVerifier{claims: ownerClaims},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "empty token after Bearer",
			authHeader:   "Bearer ",
			verifier:     &fakeTokenVerifier{claims: ownerClaims},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "verifier rejects token",
			authHeader:   "Bearer bad-token",
			verifier:     &fakeTokenVerifier{err: errors.New("invalid or expired token")},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotClaims *domain.TokenClaims
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotClaims, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			req := httptest.NewRequest(http.MethodGet, "/schools/school-1/schedule", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			RequireAuth(tt.verifier)(next)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.wantClaims != nil {
				assert.Equal(t, tt.wantClaims, gotClaims)
			}
			if tt.wantBodyCode != "" {
				var resp helpers.APIResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantBodyCode, resp.Error.Code)
			}
		})
	}
}

func TestRequireSuperAdmin(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.TokenClaims
		wantStatus int
		nextCalled bool
	}{
		{
			name:       "super admin passes",
			claims:     &domain.TokenClaims{Role: domain.RoleSuperAdmin},
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "owner is forbidden",
			claims:     &domain.TokenClaims{SchoolID: "school-1", Role: domain.RoleOwner},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no claims is unauthorized",
			claims:     nil,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			}

			req := httptest.NewRequest(http.MethodGet, "/schools", nil)
			if tt.claims != nil {
				req = req.WithContext(SetClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			RequireSuperAdmin(next)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
		})
	}
}

func TestCanAccessSchool(t *testing.T) {
	assert.True(t, CanAccessSchool(&domain.TokenClaims{Role: domain.RoleSuperAdmin}, "any-school"))
	assert.True(t, CanAccessSchool(&domain.TokenClaims{SchoolID: "school-1", Role: domain.RoleStaff}, "school-1"))
	assert.False(t, CanAccessSchool(&domain.TokenClaims{SchoolID: "school-1", Role: domain.RoleOwner}, "school-2"))
}
