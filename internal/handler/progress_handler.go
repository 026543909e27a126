package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebox/internal/service"
)

// ProgressHandler handles progress endpoints.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// SetProgressRequest carries a progress upsert.
type SetProgressRequest struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Position int    `json:"position"`
}

// ProgressResponse is one progress record as exposed to clients; "id" is the
// recipe id.
type ProgressResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Position  int    `json:"position"`
	Timestamp int64  `json:"timestamp"`
}

// List godoc
// @Summary List the caller's progress records
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProgressResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /progress [get]
func (h *ProgressHandler) List(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	rows, err := h.progressService.List(c.Request().Context(), email)
	if err != nil {
		return domainError(err)
	}

	out := make([]ProgressResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ProgressResponse{
			ID:        row.RecipeID,
			Status:    row.Status,
			Position:  row.Position,
			Timestamp: row.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Set godoc
// @Summary Upsert progress for a recipe
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetProgressRequest true "Progress data"
// @Success 200 {object} OkResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /progress [post]
func (h *ProgressHandler) Set(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	var req SetProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.progressService.Set(c.Request().Context(), email, req.ID, req.Status, req.Position); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, OkResponse{Ok: true})
}

// Delete godoc
// @Summary Delete progress for a recipe
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe id"
// @Success 200 {object} OkResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /progress/{id} [delete]
func (h *ProgressHandler) Delete(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	if err := h.progressService.Delete(c.Request().Context(), email, c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, OkResponse{Ok: true})
}
