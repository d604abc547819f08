package app_error

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// ValidationError blocks a submission, e.g. a level without a description.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) HTTPStatus() int {
	return 400
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConfigurationError marks a score row that references a level number outside
// the aspect's configured levels and the default scale. The row points at
// corrupt data, so aggregate views surface it as a warning instead of
// dropping it silently.
type ConfigurationError struct {
	AspectId int
	Level    int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("aspect %d has no level %d configured", e.AspectId, e.Level)
}

func (e *ConfigurationError) HTTPStatus() int {
	return 422
}

// AccessError is deliberately generic: a wrong team code, a missing team and
// a duplicated code all produce the same message so codes cannot be enumerated.
type AccessError struct{}

func (e *AccessError) Error() string {
	return "contraseña incorrecta"
}

func (e *AccessError) HTTPStatus() int {
	return 401
}

// StoreError wraps a failed round trip to the database. There is no retry
// policy, the caller resubmits manually.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) HTTPStatus() int {
	return 500
}

type httpStatusError interface {
	error
	HTTPStatus() int
}

// Render writes err as a json response, using the error's own status when it
// carries one and 500 otherwise.
func Render(c *gin.Context, err error) {
	if statusErr, ok := err.(httpStatusError); ok {
		c.JSON(statusErr.HTTPStatus(), gin.H{"error": statusErr.Error()})
		return
	}
	c.JSON(500, gin.H{"error": err.Error()})
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}
