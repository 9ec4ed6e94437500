package errors

import "fmt"

// ErrorCode represents a subtag error code.
type ErrorCode string

const (
	ErrConfiguration  ErrorCode = "CONFIGURATION"   // bad invocation config, caught before launch
	ErrLaunch         ErrorCode = "LAUNCH"          // SublerCLI binary missing or not executable
	ErrExecution      ErrorCode = "EXECUTION"       // process started but did not run to completion
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // malformed CLI/MCP parameters
	ErrNotFound       ErrorCode = "NOT_FOUND"       // journal record not found
	ErrInternal       ErrorCode = "INTERNAL"        // unexpected internal failure
)

// Error represents a structured error with code, status, and details.
type Error struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewConfiguration creates a 400 error for an invalid invocation config.
// Configuration errors are detected eagerly, before any process launch.
func NewConfiguration(msg string) *Error {
	return &Error{
		Code:    ErrConfiguration,
		Status:  400,
		Message: msg,
	}
}

// NewLaunch creates a 502 error for a SublerCLI executable that could not
// be started at the resolved path.
func NewLaunch(path string, err error) *Error {
	return &Error{
		Code:    ErrLaunch,
		Status:  502,
		Message: fmt.Sprintf("could not launch SublerCLI at %s: %v", path, err),
		Details: map[string]any{"executable": path},
	}
}

// NewExecution creates a 502 error for a process that started but failed
// before its output and exit status could be captured.
func NewExecution(err error) *Error {
	return &Error{
		Code:    ErrExecution,
		Status:  502,
		Message: fmt.Sprintf("SublerCLI did not run to completion: %v", err),
	}
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *Error {
	return &Error{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a journal record that cannot be found.
func NewNotFound(id string) *Error {
	return &Error{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("invocation not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *Error {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is an Error with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*Error); ok {
		return sErr.Code == code
	}
	return false
}
