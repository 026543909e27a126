package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebox/internal/service"
)

// FavoriteHandler handles favorite endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// AddFavoriteRequest carries the recipe to bookmark.
type AddFavoriteRequest struct {
	ID string `json:"id"`
}

// OkResponse is the generic mutation acknowledgement.
type OkResponse struct {
	Ok bool `json:"ok"`
}

// List godoc
// @Summary List the caller's favorite recipe ids
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	ids, err := h.favoriteService.List(c.Request().Context(), email)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, ids)
}

// Add godoc
// @Summary Bookmark a recipe
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFavoriteRequest true "Recipe id"
// @Success 200 {object} OkResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.favoriteService.Add(c.Request().Context(), email, req.ID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, OkResponse{Ok: true})
}

// Remove godoc
// @Summary Remove a bookmark
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe id"
// @Success 200 {object} OkResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	if err := h.favoriteService.Remove(c.Request().Context(), email, c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, OkResponse{Ok: true})
}
