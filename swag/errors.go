package swag

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes validation and conversion failures.
type ErrorCode string

const (
	MissingField  ErrorCode = "MissingField"
	InvalidChoice ErrorCode = "InvalidChoice"
	InvalidType   ErrorCode = "InvalidType"
	InvalidValue  ErrorCode = "InvalidValue"
	TypeRequired  ErrorCode = "TypeRequired"

	EncodeError     ErrorCode = "EncodeError"
	ConversionFault ErrorCode = "ConversionError"
	ValidationFault ErrorCode = "ValidationError"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("swag: validation failed")

// ValidationError names the record and field that rejected a value. Field is
// a dotted path relative to Record, e.g. "paths[0].operations[1].httpMethod".
type ValidationError struct {
	Record  string
	Field   string
	Code    ErrorCode
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("swag: %s: %s: %s", e.Record, e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func newValidationError(record, field string, code ErrorCode, format string, args ...any) *ValidationError {
	return &ValidationError{
		Record:  record,
		Field:   field,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ConversionError reports a failure turning a flattened document into a
// kin-openapi model.
type ConversionError struct {
	Code        ErrorCode
	Message     string
	JSONPointer string // e.g. "#/paths/~1user/post"
	Cause       error
}

func (e *ConversionError) Error() string { return e.Message }
func (e *ConversionError) Unwrap() error { return e.Cause }
