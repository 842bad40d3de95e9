package errors

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type AppError struct {
	Code            Code
	Message         string
	InternalDetails string
	IsUserFacing    bool
	SuggestedAction string
	WrappedError    error
	StackTrace      string
}

func (e *AppError) Error() string {
	if e.WrappedError != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.WrappedError)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.WrappedError
}

func New(code Code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StackTrace: string(debug.Stack()),
	}
}

func NewUserFacing(code Code, message string, suggestion string) *AppError {
	return &AppError{
		Code:            code,
		Message:         message,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
		StackTrace:      string(debug.Stack()),
	}
}

// Wrap returns err unchanged when it already is an AppError, keeping the
// innermost code and stack.
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Code:         code,
		Message:      message,
		WrappedError: err,
		StackTrace:   string(debug.Stack()),
	}
}

// WrapUserFacing always produces a user-facing error. An AppError cause keeps
// its stack and is recorded in InternalDetails.
func WrapUserFacing(err error, code Code, message string, suggestion string) *AppError {
	if err == nil {
		return nil
	}

	wrapped := &AppError{
		Code:            code,
		Message:         message,
		WrappedError:    err,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		wrapped.InternalDetails = appErr.Error()
		wrapped.StackTrace = appErr.StackTrace
		return wrapped
	}
	wrapped.StackTrace = string(debug.Stack())
	return wrapped
}

func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetUserFacingMessage walks the chain for the first user-facing AppError.
func GetUserFacingMessage(err error) (string, string, bool) {
	for err != nil {
		var appErr *AppError
		if !errors.As(err, &appErr) {
			break
		}
		if appErr.IsUserFacing {
			return appErr.Message, appErr.SuggestedAction, true
		}
		err = appErr.WrappedError
	}
	return "An unexpected error occurred.", "Re-run with --log-level debug for details.", false
}
