package pokesdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/pokesort/pkg/httpx"
)

// Error codes written in the "error" field of every error response.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicate          = "DUPLICATE_ERROR"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeInvalidPassword    = "INVALID_PASSWORD"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotFound           = "NOT_FOUND"
	CodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	CodeServerError        = "SERVER_ERROR"
)

// FieldError names one failing input field. Nested fields use dotted paths
// such as "preferences.theme".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the JSON error body shared by the server and the client.
type APIError struct {
	StatusCode int          `json:"-"`
	Code       string       `json:"error"`
	Message    string       `json:"message,omitempty"`
	Field      string       `json:"field,omitempty"`
	Details    []FieldError `json:"details,omitempty"`
	RetryAfter int          `json:"retryAfter,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Is matches on status and code so callers can use errors.Is against the
// predefined values below.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Code == t.Code
}

// WriteError writes e as the response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

// FieldMessage returns the message reported for field, if any.
func (e *APIError) FieldMessage(field string) (string, bool) {
	for _, d := range e.Details {
		if d.Field == field {
			return d.Message, true
		}
	}
	return "", false
}

// NewValidationError builds a 400 carrying per-field details.
func NewValidationError(details []FieldError) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       CodeValidation,
		Message:    "Invalid input",
		Details:    details,
	}
}

// NewDuplicateError builds a 409 naming the field that collided.
func NewDuplicateError(field, message string) *APIError {
	return &APIError{
		StatusCode: http.StatusConflict,
		Code:       CodeDuplicate,
		Message:    message,
		Field:      field,
	}
}

// NewServerError builds a 500 with a caller-facing message and no detail.
func NewServerError(message string) *APIError {
	return &APIError{StatusCode: http.StatusInternalServerError, Code: CodeServerError, Message: message}
}

var (
	ErrInvalidBody = NewValidationError([]FieldError{{Field: "body", Message: "Request body must be valid JSON"}})

	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeInvalidCredentials,
		Message:    "Invalid username or password",
	}

	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeUnauthorized,
		Message:    "You must be logged in",
	}

	ErrUserNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       CodeNotFound,
		Message:    "User not found",
	}

	ErrSignUpFailed = NewServerError("Something went wrong. Please try again later.")

	ErrUnexpected = NewServerError("An unexpected error occurred")

	ErrMethodNotAllowed = &APIError{
		StatusCode: http.StatusMethodNotAllowed,
		Code:       CodeValidation,
		Message:    "Method not allowed",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError, falling
// back to the status text when the body is not ours.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       CodeServerError,
			Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}
	apiErr.StatusCode = resp.StatusCode
	return apiErr
}
