package controllers

import (
	"log/slog"
	"net/http"

	"schoolplanner/internal/delivery/http/helpers"
	"schoolplanner/internal/domain"
)

// LoginRequest is the request body for POST /auth/login. A single access
// code identifies the caller: the super-admin code or a school owner/staff
// code.
type LoginRequest struct {
	Code string `json:"code"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if l.Code == "" {
		errs = append(errs, "code is required")
	}
	return errs
}

// LoginSuccessResponse is the success response envelope for POST /auth/login (200).
type LoginSuccessResponse struct {
	Data  *domain.AuthResult `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Log in with an access code
// @Description Exchanges an access code for a bearer token. The super-admin code grants the super_admin role; a school code grants owner or staff on that school and returns the school record.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Access code"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains token, role, and school"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (unknown code or inactive school)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.LoginWithCode(r.Context(), req.Code)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
