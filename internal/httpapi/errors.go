package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/learner"
)

// Error is an API failure with the status and machine-readable code sent to
// the client.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func badRequest(code string, format string, args ...any) *Error {
	return newError(http.StatusBadRequest, code, fmt.Errorf(format, args...))
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

// toAPIError maps service errors onto HTTP statuses.
func toAPIError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	case errors.Is(err, learner.ErrPositionOutOfRange):
		return newError(http.StatusBadRequest, "position_out_of_range", err)
	case errors.Is(err, learner.ErrUnknownLanguage):
		return newError(http.StatusBadRequest, "unknown_language", err)
	case errors.Is(err, learner.ErrUnknownDialect):
		return newError(http.StatusBadRequest, "unknown_dialect", err)
	case errors.Is(err, learner.ErrInvalidStudyMinutes):
		return newError(http.StatusBadRequest, "invalid_study_minutes", err)
	case errors.Is(err, learner.ErrInvalidWord):
		return newError(http.StatusBadRequest, "invalid_word", err)
	case errors.Is(err, learner.ErrInvalidStep):
		return newError(http.StatusBadRequest, "invalid_step", err)
	default:
		return newError(http.StatusInternalServerError, "internal", err)
	}
}

// respondError writes the error envelope. Internal errors are logged and
// their details withheld from the client.
func (s *Server) respondError(c *gin.Context, err error) {
	apiErr := toAPIError(err)
	msg := apiErr.Error()
	if apiErr.Status >= http.StatusInternalServerError {
		s.log.Error("request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err.Error())
		msg = http.StatusText(apiErr.Status)
	}
	c.AbortWithStatusJSON(apiErr.Status, errorEnvelope{
		Error: apiError{Message: msg, Code: apiErr.Code},
	})
}
