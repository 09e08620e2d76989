package controllers

import (
	"log/slog"
	"net/http"

	"schoolplanner/internal/delivery/http/helpers"
	"schoolplanner/internal/domain"
)

// CreateLevelRequest is the request body for POST /schools/{schoolID}/levels.
type CreateLevelRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CreateLevelRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// CreateGroupRequest is the request body for POST /schools/{schoolID}/groups.
type CreateGroupRequest struct {
	Name    string `json:"name"`
	LevelID string `json:"level_id"`
}

// Validate implements Validator.
func (c CreateGroupRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.LevelID == "" {
		errs = append(errs, "level_id is required")
	}
	return errs
}

// SubjectRequest is the request body for creating and updating subjects.
type SubjectRequest struct {
	Name             string  `json:"name"`
	Fee              float64 `json:"fee"`
	SessionsPerMonth int     `json:"sessions_per_month"`
	Classroom        string  `json:"classroom"`
	LevelID          string  `json:"level_id"`
}

// Validate implements Validator.
func (s SubjectRequest) Validate() []string {
	var errs []string
	if s.Name == "" {
		errs = append(errs, "name is required")
	}
	if s.Fee < 0 {
		errs = append(errs, "fee must not be negative")
	}
	return errs
}

// CourseRequest is the request body for creating and updating courses.
type CourseRequest struct {
	Name       string   `json:"name"`
	Fee        float64  `json:"fee"`
	TeacherIDs []string `json:"teacher_ids"`
}

// Validate implements Validator.
func (c CourseRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Fee < 0 {
		errs = append(errs, "fee must not be negative")
	}
	return errs
}

// StatusResponse is the data payload for delete endpoints (200).
type StatusResponse struct {
	Status string `json:"status"`
}

// CatalogController manages the schedulable entities of a school: levels,
// groups, subjects and courses.
type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateLevel godoc
// @Summary Add a level
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param body body CreateLevelRequest true "Level data"
// @Success 201 {object} helpers.APIResponse "data contains the created level"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/levels [post]
func (c *CatalogController) CreateLevel(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	var req CreateLevelRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	level, err := c.Service.AddLevel(r.Context(), schoolID, req.Name)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, level)
}

// ListLevels godoc
// @Summary List levels
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of levels"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/levels [get]
func (c *CatalogController) ListLevels(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	levels, err := c.Service.ListLevels(r.Context(), schoolID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if levels == nil {
		levels = []*domain.Level{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, levels)
}

// DeleteLevel godoc
// @Summary Delete a level
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param levelID path string true "Level ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /schools/{schoolID}/levels/{levelID} [delete]
func (c *CatalogController) DeleteLevel(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	levelID := r.PathValue("levelID")
	if err := c.Service.DeleteLevel(r.Context(), schoolID, levelID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// CreateGroup godoc
// @Summary Add a group
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param body body CreateGroupRequest true "Group data"
// @Success 201 {object} helpers.APIResponse "data contains the created group"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/groups [post]
func (c *CatalogController) CreateGroup(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	var req CreateGroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	group, err := c.Service.AddGroup(r.Context(), schoolID, req.Name, req.LevelID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, group)
}

// ListGroups godoc
// @Summary List groups
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of groups"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/groups [get]
func (c *CatalogController) ListGroups(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	groups, err := c.Service.ListGroups(r.Context(), schoolID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if groups == nil {
		groups = []*domain.Group{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, groups)
}

// DeleteGroup godoc
// @Summary Delete a group
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param groupID path string true "Group ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /schools/{schoolID}/groups/{groupID} [delete]
func (c *CatalogController) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	groupID := r.PathValue("groupID")
	if err := c.Service.DeleteGroup(r.Context(), schoolID, groupID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// CreateSubject godoc
// @Summary Add a subject
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param body body SubjectRequest true "Subject data"
// @Success 201 {object} helpers.APIResponse "data contains the created subject"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/subjects [post]
func (c *CatalogController) CreateSubject(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	var req SubjectRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	subject, err := c.Service.AddSubject(r.Context(), &domain.Subject{
		SchoolID:         schoolID,
		Name:             req.Name,
		Fee:              req.Fee,
		SessionsPerMonth: req.SessionsPerMonth,
		Classroom:        req.Classroom,
		LevelID:          req.LevelID,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, subject)
}

// UpdateSubject godoc
// @Summary Update a subject
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param subjectID path string true "Subject ID (UUID)"
// @Param body body SubjectRequest true "Subject data"
// @Success 200 {object} helpers.APIResponse "data contains the updated subject"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /schools/{schoolID}/subjects/{subjectID} [put]
func (c *CatalogController) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	subjectID := r.PathValue("subjectID")
	var req SubjectRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	subject, err := c.Service.UpdateSubject(r.Context(), &domain.Subject{
		ID:               subjectID,
		SchoolID:         schoolID,
		Name:             req.Name,
		Fee:              req.Fee,
		SessionsPerMonth: req.SessionsPerMonth,
		Classroom:        req.Classroom,
		LevelID:          req.LevelID,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, subject)
}

// ListSubjects godoc
// @Summary List subjects
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of subjects"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/subjects [get]
func (c *CatalogController) ListSubjects(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	subjects, err := c.Service.ListSubjects(r.Context(), schoolID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if subjects == nil {
		subjects = []*domain.Subject{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, subjects)
}

// DeleteSubject godoc
// @Summary Delete a subject
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param subjectID path string true "Subject ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /schools/{schoolID}/subjects/{subjectID} [delete]
func (c *CatalogController) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	subjectID := r.PathValue("subjectID")
	if err := c.Service.DeleteSubject(r.Context(), schoolID, subjectID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// CreateCourse godoc
// @Summary Add a course
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param body body CourseRequest true "Course data"
// @Success 201 {object} helpers.APIResponse "data contains the created course"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/courses [post]
func (c *CatalogController) CreateCourse(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	var req CourseRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	course, err := c.Service.AddCourse(r.Context(), &domain.Course{
		SchoolID:   schoolID,
		Name:       req.Name,
		Fee:        req.Fee,
		TeacherIDs: req.TeacherIDs,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, course)
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param courseID path string true "Course ID (UUID)"
// @Param body body CourseRequest true "Course data"
// @Success 200 {object} helpers.APIResponse "data contains the updated course"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /schools/{schoolID}/courses/{courseID} [put]
func (c *CatalogController) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	courseID := r.PathValue("courseID")
	var req CourseRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	course, err := c.Service.UpdateCourse(r.Context(), &domain.Course{
		ID:         courseID,
		SchoolID:   schoolID,
		Name:       req.Name,
		Fee:        req.Fee,
		TeacherIDs: req.TeacherIDs,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, course)
}

// ListCourses godoc
// @Summary List courses
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of courses"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/courses [get]
func (c *CatalogController) ListCourses(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	courses, err := c.Service.ListCourses(r.Context(), schoolID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if courses == nil {
		courses = []*domain.Course{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, courses)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param courseID path string true "Course ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /schools/{schoolID}/courses/{courseID} [delete]
func (c *CatalogController) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	courseID := r.PathValue("courseID")
	if err := c.Service.DeleteCourse(r.Context(), schoolID, courseID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
