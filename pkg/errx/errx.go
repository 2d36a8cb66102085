package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies an error for transport-agnostic handling.
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeBusiness       Type = "BUSINESS"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeRateLimit      Type = "RATE_LIMIT"
	TypeExternal       Type = "EXTERNAL"
	TypeInternal       Type = "INTERNAL"
)

// Code identifies a registered error within a registry.
type Code struct {
	registry   string
	code       string
	errType    Type
	httpStatus int
	message    string
}

// Registry groups error codes under a domain prefix (e.g. "PROFILE").
type Registry struct {
	prefix string
}

func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register declares a new error code for this registry.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	return Code{
		registry:   r.prefix,
		code:       code,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
}

// New creates an error for a registered code.
func (r *Registry) New(code Code) *Error {
	return &Error{
		Code:       code.registry + "_" + code.code,
		Type:       code.errType,
		HTTPStatus: code.httpStatus,
		Message:    code.message,
		key:        code,
	}
}

// NewWithCause creates an error for a registered code wrapping an underlying cause.
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	e := r.New(code)
	e.Cause = cause
	return e
}

// Error is a typed application error carrying an HTTP mapping and
// structured details.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`

	key Code
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a single key/value detail and returns the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges a detail map into the error.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// ToHTTPResponse renders the error as a JSON-serializable body.
func (e *Error) ToHTTPResponse() map[string]any {
	body := map[string]any{
		"error":   e.Message,
		"type":    string(e.Type),
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	return body
}

// Wrap converts an arbitrary error into an *Error with the given message and type.
func Wrap(err error, message string, t Type) *Error {
	status := http.StatusInternalServerError
	switch t {
	case TypeValidation:
		status = http.StatusBadRequest
	case TypeNotFound:
		status = http.StatusNotFound
	case TypeConflict:
		status = http.StatusConflict
	case TypeAuthentication:
		status = http.StatusUnauthorized
	case TypeAuthorization:
		status = http.StatusForbidden
	case TypeRateLimit:
		status = http.StatusTooManyRequests
	case TypeExternal:
		status = http.StatusBadGateway
	}
	return &Error{
		Code:       string(t),
		Type:       t,
		HTTPStatus: status,
		Message:    message,
		Cause:      err,
	}
}

// IsCode reports whether err (or anything it wraps) is an *Error created
// from the given registered code.
func IsCode(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.key == code
}
