package controllers

import (
	"log/slog"
	"net/http"

	"schoolplanner/internal/delivery/http/helpers"
	"schoolplanner/internal/domain"
)

// CreateSchoolRequest is the request body for POST /schools.
type CreateSchoolRequest struct {
	Name       string `json:"name"`
	Logo       string `json:"logo"`
	OwnerEmail string `json:"owner_email"`
	TrialDays  int    `json:"trial_days"`
}

// Validate implements Validator.
func (c CreateSchoolRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.TrialDays < 0 {
		errs = append(errs, "trial_days must not be negative")
	}
	return errs
}

// CreateSchoolSuccessResponse is the success response envelope for POST /schools (201).
type CreateSchoolSuccessResponse struct {
	Data  *domain.ProvisionedSchool `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// UpdateSchoolRequest is the request body for PATCH /schools/{schoolID}.
type UpdateSchoolRequest struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Validate implements Validator.
func (u UpdateSchoolRequest) Validate() []string {
	var errs []string
	if u.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// SchoolSuccessResponse is the success response envelope for single-school
// endpoints (200).
type SchoolSuccessResponse struct {
	Data  *domain.School    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSchoolsSuccessResponse is the success response envelope for GET /schools (200).
type ListSchoolsSuccessResponse struct {
	Data  []*domain.School  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeleteSchoolResponse is the data payload for DELETE /schools/{schoolID} (200).
type DeleteSchoolResponse struct {
	Status string `json:"status"`
}

// DeleteSchoolSuccessResponse is the success response envelope for DELETE /schools/{schoolID} (200).
type DeleteSchoolSuccessResponse struct {
	Data  DeleteSchoolResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// SchoolController handles super-admin tenant management. All routes are
// behind RequireSuperAdmin.
type SchoolController struct {
	Logger  *slog.Logger
	Service domain.SchoolService
}

func NewSchoolController(logger *slog.Logger, svc domain.SchoolService) *SchoolController {
	return &SchoolController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSchool godoc
// @Summary Provision a new school
// @Description Creates a school tenant with generated owner and staff access codes. The plain codes are returned once in the response and, when an owner email is given, also sent by email. Super-admin only.
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateSchoolRequest true "School data"
// @Success 201 {object} controllers.CreateSchoolSuccessResponse "data contains the school and its plain access codes"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not super admin)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schools [post]
func (c *SchoolController) CreateSchool(w http.ResponseWriter, r *http.Request) {
	var req CreateSchoolRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	provisioned, err := c.Service.CreateSchool(r.Context(), req.Name, req.Logo, req.OwnerEmail, req.TrialDays)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, provisioned)
}

// ListSchools godoc
// @Summary List all schools
// @Description Returns all school tenants. Super-admin only.
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSchoolsSuccessResponse "data is an array of schools"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schools [get]
func (c *SchoolController) ListSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := c.Service.ListSchools(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if schools == nil {
		schools = []*domain.School{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schools)
}

// GetSchool godoc
// @Summary Get a school by ID
// @Description Returns a single school tenant. Super-admin only.
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Success 200 {object} controllers.SchoolSuccessResponse "data contains the school"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schools/{schoolID} [get]
func (c *SchoolController) GetSchool(w http.ResponseWriter, r *http.Request) {
	schoolID := r.PathValue("schoolID")
	if schoolID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing schoolID")
		return
	}
	school, err := c.Service.GetSchool(r.Context(), schoolID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, school)
}

// UpdateSchool godoc
// @Summary Update a school's name and logo
// @Description Updates the display details of a school. Access codes and active status are managed by their own endpoints. Super-admin only.
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param body body UpdateSchoolRequest true "New details"
// @Success 200 {object} controllers.SchoolSuccessResponse "data contains the updated school"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schools/{schoolID} [patch]
func (c *SchoolController) UpdateSchool(w http.ResponseWriter, r *http.Request) {
	schoolID := r.PathValue("schoolID")
	if schoolID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing schoolID")
		return
	}
	var req UpdateSchoolRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	school, err := c.Service.UpdateSchoolDetails(r.Context(), schoolID, req.Name, req.Logo)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, school)
}

// ToggleSchoolStatus godoc
// @Summary Toggle a school's active flag
// @Description Flips the is_active flag. Logins for an inactive school are rejected. Super-admin only.
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Success 200 {object} controllers.SchoolSuccessResponse "data contains the updated school"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schools/{schoolID}/toggle-status [patch]
func (c *SchoolController) ToggleSchoolStatus(w http.ResponseWriter, r *http.Request) {
	schoolID := r.PathValue("schoolID")
	if schoolID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing schoolID")
		return
	}
	school, err := c.Service.ToggleSchoolStatus(r.Context(), schoolID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, school)
}

// DeleteSchool godoc
// @Summary Delete a school
// @Description Deletes a school tenant and all its data. Super-admin only.
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Success 200 {object} controllers.DeleteSchoolSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schools/{schoolID} [delete]
func (c *SchoolController) DeleteSchool(w http.ResponseWriter, r *http.Request) {
	schoolID := r.PathValue("schoolID")
	if schoolID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing schoolID")
		return
	}
	if err := c.Service.DeleteSchool(r.Context(), schoolID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteSchoolResponse{Status: "deleted"})
}
