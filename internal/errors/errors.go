package errors

import "fmt"

// ErrorCode represents a Vitae error code.
type ErrorCode string

const (
	ErrInvalidRequest     ErrorCode = "INVALID_REQUEST"      // 400
	ErrNotFound           ErrorCode = "NOT_FOUND"            // 404
	ErrNameAlreadyExists  ErrorCode = "NAME_ALREADY_EXISTS"  // 409
	ErrConflict           ErrorCode = "CONFLICT"             // 409
	ErrUnsupportedFormat  ErrorCode = "UNSUPPORTED_FORMAT"   // 415
	ErrSourceUnreadable   ErrorCode = "SOURCE_UNREADABLE"    // 422
	ErrLLMResponseInvalid ErrorCode = "LLM_RESPONSE_INVALID" // 502
	ErrCancelled          ErrorCode = "CANCELLED"            // 499
	ErrInternal           ErrorCode = "INTERNAL"             // 500
)

// VitaeError represents a structured error with code, status, and details.
type VitaeError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *VitaeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *VitaeError {
	return &VitaeError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a resume cannot be found.
func NewNotFound(identifier string) *VitaeError {
	return &VitaeError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("resume not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewNameAlreadyExists creates a 409 error for name collisions.
func NewNameAlreadyExists(name string) *VitaeError {
	return &VitaeError{
		Code:    ErrNameAlreadyExists,
		Status:  409,
		Message: fmt.Sprintf("resume with name %q already exists", name),
		Details: map[string]any{"name": name},
	}
}

// NewConflict creates a 409 error for general conflicts.
func NewConflict(msg string) *VitaeError {
	return &VitaeError{
		Code:    ErrConflict,
		Status:  409,
		Message: msg,
	}
}

// NewUnsupportedFormat creates a 415 error for a source document type the
// extractor does not handle.
func NewUnsupportedFormat(ext string) *VitaeError {
	return &VitaeError{
		Code:    ErrUnsupportedFormat,
		Status:  415,
		Message: fmt.Sprintf("unsupported source format: %q", ext),
		Details: map[string]any{"extension": ext},
	}
}

// NewSourceUnreadable creates a 422 error for a source document that exists
// but cannot be read or decoded.
func NewSourceUnreadable(path string, err error) *VitaeError {
	msg := fmt.Sprintf("cannot read source document: %s", path)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &VitaeError{
		Code:    ErrSourceUnreadable,
		Status:  422,
		Message: msg,
		Details: map[string]any{"path": path},
	}
}

// NewLLMResponseInvalid creates a 502 error for a model response that could
// not be decoded into a resume record.
func NewLLMResponseInvalid(err error) *VitaeError {
	msg := "model returned an invalid resume payload"
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &VitaeError{
		Code:    ErrLLMResponseInvalid,
		Status:  502,
		Message: msg,
	}
}

// NewCancelled creates a 499 error for an operation stopped by context
// cancellation.
func NewCancelled(operation string) *VitaeError {
	return &VitaeError{
		Code:    ErrCancelled,
		Status:  499,
		Message: fmt.Sprintf("operation cancelled: %s", operation),
		Details: map[string]any{"operation": operation},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *VitaeError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &VitaeError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a VitaeError with the given code.
func Is(err error, code ErrorCode) bool {
	if vErr, ok := err.(*VitaeError); ok {
		return vErr.Code == code
	}
	return false
}
