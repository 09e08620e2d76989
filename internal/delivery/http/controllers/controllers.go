// Package controllers holds the HTTP handlers of the admin API. Handlers
// decode and validate requests, enforce school-level access, call the
// services, and write the standard response envelope.
package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"schoolplanner/internal/delivery/http/helpers"
	"schoolplanner/internal/delivery/http/middleware"
	"schoolplanner/internal/domain"
)

// schoolFromPath extracts the schoolID path value and checks the caller may
// act on that school. On failure it writes the error response and returns
// false.
func schoolFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	schoolID := r.PathValue("schoolID")
	if schoolID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing schoolID")
		return "", false
	}
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", false
	}
	if !middleware.CanAccessSchool(claims, schoolID) {
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "wrong school")
		return "", false
	}
	return schoolID, true
}

// writeServiceError maps service errors onto HTTP responses and logs the
// unexpected ones.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrSchoolInactive):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
