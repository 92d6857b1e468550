package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/vedicworks/muhurat-api/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// domainHTTPError maps application error codes onto transport statuses:
// bad input is the caller's fault, an unresolvable location is a semantic
// rejection, an LLM failure is an upstream fault, and storage failures
// stay internal.
func domainHTTPError(err error, fallbackCode string) *HTTPError {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case apperrors.IsCode(err, apperrors.CodeInvalidInput):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, apperrors.CodeLocationError):
		status = http.StatusUnprocessableEntity
		code = "location_error"
	case apperrors.IsCode(err, apperrors.CodeLLMError):
		status = http.StatusBadGateway
		code = "llm_error"
	case apperrors.IsCode(err, apperrors.CodeStorageError):
		status = http.StatusInternalServerError
		code = "storage_error"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
