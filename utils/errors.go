package utils

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// AppError pairs an envelope code with the underlying cause. The cause
// is logged, never serialized.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// TokenError marks a token that is present but cannot be decoded.
func TokenError(err error) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: MsgUnauthorized, Err: err}
}

// ValidationError marks a malformed payload or parameter.
func ValidationError(err error) *AppError {
	return &AppError{Code: CodeBadRequest, Message: MsgBadRequest, Err: err}
}

// StorageError marks a database or constraint failure.
func StorageError(err error) *AppError {
	return &AppError{Code: CodeError, Message: MsgError, Err: err}
}

// RenderError writes the failure envelope for err, falling back to the
// generic storage failure for errors with no envelope mapping.
func RenderError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		Fail(c, appErr.Code, appErr.Message)
		return
	}
	FailError(c)
}
