package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingCredentials is returned when email or password is absent from a request.
	ErrMissingCredentials = errors.New("Email and password are required")
	// ErrMissingUserID is returned when a user id is absent from a request.
	ErrMissingUserID = errors.New("User ID is required")
	// ErrUserAlreadyExists is returned when registering an email that is already taken.
	ErrUserAlreadyExists = errors.New("User already exists")
	// ErrInvalidCredentials is returned for any authentication failure.
	// Unknown email and wrong password deliberately share this error so the
	// response never reveals which one occurred.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrUserNotFound is returned when no record matches the requested id.
	ErrUserNotFound = errors.New("User not found")
	// ErrEmailInUse is returned when an update targets an email owned by another record.
	ErrEmailInUse = errors.New("Email already in use")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Uniqueness conflicts
// surface as 400, matching the documented API contract.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingCredentials), errors.Is(err, ErrMissingUserID):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserAlreadyExists), errors.Is(err, ErrEmailInUse):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Something went wrong!")
	}
}
