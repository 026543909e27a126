package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"recipebox/internal/auth"
	"recipebox/internal/errors"
)

// callerEmail extracts the authenticated identity set by the JWT middleware.
// Every protected handler scopes its queries by this email.
func callerEmail(c echo.Context) (string, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token",
			Code:  "AUTH_ERROR",
		})
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.Email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token claims",
			Code:  "AUTH_ERROR",
		})
	}
	return claims.Email, nil
}

// domainError translates a service error into an echo error carrying the
// standard {error, code} body.
func domainError(err error) *echo.HTTPError {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
