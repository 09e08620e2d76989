package controllers

import (
	"log/slog"
	"net/http"

	"schoolplanner/internal/delivery/http/helpers"
	"schoolplanner/internal/domain"
	"schoolplanner/internal/schedule"
)

// ScheduleSuccessResponse is the success response envelope for GET and PUT
// /schools/{schoolID}/schedule (200).
type ScheduleSuccessResponse struct {
	Data  []domain.ScheduledSession `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ReplaceScheduleRequest is the request body for PUT /schools/{schoolID}/schedule.
// It carries the full week: the stored schedule is replaced wholesale, the
// way the editor saves.
type ReplaceScheduleRequest struct {
	Sessions []domain.ScheduledSession `json:"sessions"`
}

// ScheduleLayoutResponse is the data payload for GET /schools/{schoolID}/schedule/layout.
// Geometry maps session ID to its computed grid placement. Days and SlotTimes
// describe the grid axes so a client can render without hardcoding them.
type ScheduleLayoutResponse struct {
	Sessions  []domain.ScheduledSession    `json:"sessions"`
	Geometry  map[string]schedule.Geometry `json:"geometry"`
	Days      []domain.Weekday             `json:"days"`
	SlotTimes []string                     `json:"slot_times"`
	RowHeight int                          `json:"row_height_px"`
}

// ScheduleLayoutSuccessResponse is the success response envelope for GET
// /schools/{schoolID}/schedule/layout (200).
type ScheduleLayoutSuccessResponse struct {
	Data  ScheduleLayoutResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ScheduleController serves a school's weekly schedule and its computed
// layout.
type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// GetSchedule godoc
// @Summary Get a school's weekly schedule
// @Description Returns all scheduled sessions for the school. Owners and staff see their own school; the super-admin may read any.
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Success 200 {object} controllers.ScheduleSuccessResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (wrong school)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schools/{schoolID}/schedule [get]
func (c *ScheduleController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	sessions, err := c.Service.GetSchedule(r.Context(), schoolID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ReplaceSchedule godoc
// @Summary Replace a school's weekly schedule
// @Description Replaces the stored schedule with the submitted sessions. Every session is validated; sessions without an id get one assigned. The normalized schedule is returned.
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Param body body ReplaceScheduleRequest true "Full week of sessions"
// @Success 200 {object} controllers.ScheduleSuccessResponse "data is the saved schedule"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid session)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (wrong school)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schools/{schoolID}/schedule [put]
func (c *ScheduleController) ReplaceSchedule(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	var req ReplaceScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	saved, err := c.Service.ReplaceSchedule(r.Context(), schoolID, req.Sessions)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, saved)
}

// GetScheduleLayout godoc
// @Summary Get a school's schedule with computed layout
// @Description Returns the sessions together with per-session grid geometry: pixel top/height from the time axis, and percentage left/width from collision clustering and column packing. Overlapping sessions share the day width side by side.
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param schoolID path string true "School ID (UUID)"
// @Success 200 {object} controllers.ScheduleLayoutSuccessResponse "data contains sessions, geometry, and grid axes"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (wrong school)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schools/{schoolID}/schedule/layout [get]
func (c *ScheduleController) GetScheduleLayout(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := schoolFromPath(w, r)
	if !ok {
		return
	}
	sessions, err := c.Service.GetSchedule(r.Context(), schoolID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ScheduleLayoutResponse{
		Sessions:  sessions,
		Geometry:  schedule.Project(sessions),
		Days:      domain.WeekDays,
		SlotTimes: schedule.SlotTimes(),
		RowHeight: schedule.RowHeightPx,
	})
}
