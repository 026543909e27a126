package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingCredentials is returned when email or password is empty.
	ErrMissingCredentials = errors.New("missing email or password")
	// ErrAccountExists is returned when signing up with a registered email.
	ErrAccountExists = errors.New("account exists")
	// ErrInvalidCredentials is returned when login fails to verify.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a refresh token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrUserNotFound is returned when the token identity has no user row.
	ErrUserNotFound = errors.New("user not found")
	// ErrMissingRecipeID is returned when a favorite or progress call omits the recipe id.
	ErrMissingRecipeID = errors.New("missing recipe id")
	// ErrMissingStatus is returned when a progress write omits the status.
	ErrMissingStatus = errors.New("missing status")
	// ErrMissingActivity is returned when an activity append omits the label.
	ErrMissingActivity = errors.New("missing activity")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate signup maps to
// 400 rather than 409, matching the public API contract.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingCredentials),
		errors.Is(err, ErrMissingRecipeID),
		errors.Is(err, ErrMissingStatus),
		errors.Is(err, ErrMissingActivity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrAccountExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONFLICT")
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "AUTH_ERROR")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
