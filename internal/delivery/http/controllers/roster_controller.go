package controllers

import (
	"log/slog"
	"net/http"

	"schoolplanner/internal/delivery/http/helpers"
	"schoolplanner/internal/domain"
)

// TeacherRequest is the request body for creating and updating teachers.
type TeacherRequest struct {
	Name        string            `json:"name"`
	Phone       string            `json:"phone"`
	SubjectIDs  []string          `json:"subject_ids"`
	LevelIDs    []string          `json:"level_ids"`
	CourseIDs   []string          `json:"course_ids"`
	SalaryType  domain.SalaryType `json:"salary_type"`
	SalaryValue float64           `json:"salary_value"`
}

// Validate implements Validator.
func (t TeacherRequest) Validate() []string {
	var errs []string
	if t.Name == "" {
		errs = append(errs, "name is required")
	}
	if t.SalaryType != "" && !t.SalaryType.Valid() {
		errs = append(errs, "salary_type must be fixed, percentage, or per_session")
	}
	if t.SalaryValue < 0 {
		errs = append(errs, "salary_value must not be negative")
	}
	return errs
}

// StudentRequest is the request body for creating and updating students.
type StudentRequest struct {
	Name        string   `json:"name"`
	ParentPhone string   `json:"parent_phone"`
	LevelID     string   `json:"level_id"`
	GroupIDs    []string `json:"group_ids"`
	SubjectIDs  []string `json:"subject_ids"`
	CourseIDs   []string `json:"course_ids"`
}

// Validate implements Validator.
func (s StudentRequest) Validate() []string {
	var errs []string
	if s.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// RosterController manages a school's teachers and students.
type RosterController struct {
	Logger  *slog.Logger
	Service domain.RosterService
}

func NewRosterController(logger *slog.Logger, svc domain.RosterService) *RosterController {
	return &RosterController{
		Logger:  logger,
		Service: svc,
	}
}

func (t TeacherRequest) toDomain(schoolID, id string) *domain.Teacher {
	return &domain.Teacher{
		ID:          id,
		SchoolID:    schoolID,
		Name:        t.Name,
		Phone:       t.Phone,
		SubjectIDs:  t.SubjectIDs,
		LevelIDs:    t.LevelIDs,
		CourseIDs:   t.CourseIDs,
		SalaryType:  t.SalaryType,
		SalaryValue: t.SalaryValue,
	}
}

func (s StudentRequest) toDomain(schoolID, id string) *domain.Student {
	return &domain.Student{
		ID:          id,
		SchoolID:    schoolID,
		Name:        s.Name,
		ParentPhone: s.ParentPhone,
		LevelID:     s.LevelID,
		GroupIDs:    s.GroupIDs,
		SubjectIDs:  s.SubjectIDs,
		CourseIDs:   s.CourseIDs,
	}
}

// CreateTeacher godoc
// @Summary Add a teacher
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param body body TeacherRequest true "Teacher data"
// @Success 201 {object} helpers.APIResponse "data contains the created teacher"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/teachers [post]
func (c *RosterController) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	var req TeacherRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	teacher, err := c.Service.AddTeacher(r.Context(), req.toDomain(schoolID, ""))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, teacher)
}

// UpdateTeacher godoc
// @Summary Update a teacher
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param teacherID path string true "Teacher ID (UUID)"
// @Param body body TeacherRequest true "Teacher data"
// @Success 200 {object} helpers.APIResponse "data contains the updated teacher"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /schools/{schoolID}/teachers/{teacherID} [put]
func (c *RosterController) UpdateTeacher(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	teacherID := r.PathValue("teacherID")
	var req TeacherRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	teacher, err := c.Service.UpdateTeacher(r.Context(), req.toDomain(schoolID, teacherID))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, teacher)
}

// ListTeachers godoc
// @Summary List teachers
// @Tags roster
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of teachers"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/teachers [get]
func (c *RosterController) ListTeachers(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	teachers, err := c.Service.ListTeachers(r.Context(), schoolID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if teachers == nil {
		teachers = []*domain.Teacher{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, teachers)
}

// DeleteTeacher godoc
// @Summary Delete a teacher
// @Tags roster
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param teacherID path string true "Teacher ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /schools/{schoolID}/teachers/{teacherID} [delete]
func (c *RosterController) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	teacherID := r.PathValue("teacherID")
	if err := c.Service.DeleteTeacher(r.Context(), schoolID, teacherID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// CreateStudent godoc
// @Summary Add a student
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param body body StudentRequest true "Student data"
// @Success 201 {object} helpers.APIResponse "data contains the created student"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/students [post]
func (c *RosterController) CreateStudent(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	var req StudentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	student, err := c.Service.AddStudent(r.Context(), req.toDomain(schoolID, ""))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, student)
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param studentID path string true "Student ID (UUID)"
// @Param body body StudentRequest true "Student data"
// @Success 200 {object} helpers.APIResponse "data contains the updated student"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /schools/{schoolID}/students/{studentID} [put]
func (c *RosterController) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	studentID := r.PathValue("studentID")
	var req StudentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	student, err := c.Service.UpdateStudent(r.Context(), req.toDomain(schoolID, studentID))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, student)
}

// ListStudents godoc
// @Summary List students
// @Tags roster
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of students"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /schools/{schoolID}/students [get]
func (c *RosterController) ListStudents(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	students, err := c.Service.ListStudents(r.Context(), schoolID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if students == nil {
		students = []*domain.Student{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, students)
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags roster
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param studentID path string true "Student ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /schools/{schoolID}/students/{studentID} [delete]
func (c *RosterController) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	studentID := r.PathValue("studentID")
	if err := c.Service.DeleteStudent(r.Context(), schoolID, studentID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
