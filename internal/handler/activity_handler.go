package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"recipebox/internal/service"
)

// ActivityHandler handles activity log endpoints.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// AddActivityRequest carries an activity append. Timestamp is milliseconds
// since epoch; zero means "now".
type AddActivityRequest struct {
	Activity  string `json:"activity"`
	Timestamp int64  `json:"timestamp"`
}

// AddActivityResponse acknowledges an append. Duplicate is set when the entry
// collapsed into an existing row inside the de-duplication window.
type AddActivityResponse struct {
	Ok        bool `json:"ok"`
	Duplicate bool `json:"duplicate,omitempty"`
}

// ActivityResponse is one log entry as exposed to clients.
type ActivityResponse struct {
	Email     string `json:"email"`
	Activity  string `json:"activity"`
	Timestamp int64  `json:"timestamp"`
}

// List godoc
// @Summary List the caller's activity log, newest first
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max rows (1-1000); 0 or absent returns all"
// @Success 200 {array} ActivityResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	rows, err := h.activityService.List(c.Request().Context(), email, limit)
	if err != nil {
		return domainError(err)
	}

	out := make([]ActivityResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ActivityResponse{
			Email:     row.UserEmail,
			Activity:  row.Activity,
			Timestamp: row.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Add godoc
// @Summary Append an activity entry
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddActivityRequest true "Activity data"
// @Success 200 {object} AddActivityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /activities [post]
func (h *ActivityHandler) Add(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	var req AddActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	duplicate, err := h.activityService.Add(c.Request().Context(), email, req.Activity, req.Timestamp)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, AddActivityResponse{Ok: true, Duplicate: duplicate})
}
