package fixture

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/compozy/fixturegen/pkg/attrpath"
)

// Error codes
const (
	ErrCodeGenerationFailed     = "GENERATION_FAILED"
	ErrCodeInstantiationFailed  = "INSTANTIATION_FAILED"
	ErrCodeTypeResolutionFailed = "TYPE_RESOLUTION_FAILED"
	ErrCodeIncomparableKey      = "INCOMPARABLE_KEY"
	ErrCodeOverrideMismatch     = "OVERRIDE_MISMATCH"
	ErrCodeConstraintInvalid    = "CONSTRAINT_INVALID"
	ErrCodeConstraintRange      = "CONSTRAINT_RANGE"
	ErrCodeInvalidArgument      = "INVALID_ARGUMENT"
)

// Error messages
const (
	ErrMsgGenerationFailed     = "Failed to generate %s: %s"
	ErrMsgInstantiationFailed  = "Failed to instantiate %s: %s"
	ErrMsgTypeResolutionFailed = "Failed to resolve type arguments of %s: %s"
	ErrMsgIncomparableKey      = "Sorted container %s requires ordered keys: %s"
	ErrMsgOverrideMismatch     = "Override for %s does not fit field type %s: %s"
	ErrMsgConstraintInvalid    = "Invalid constraints on %s: %s"
	ErrMsgConstraintRange      = "No %s value satisfies the constraints on %s: %s"
)

// Error is returned by every generation failure. Code identifies the kind of
// failure; Path is the attribute being generated when it happened.
type Error struct {
	Code    string
	Message string
	Type    reflect.Type
	Path    attrpath.Path
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the given code and message
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorf creates a new Error with the given code and formatted message
func NewErrorf(code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) at(t reflect.Type, path attrpath.Path, cause error) *Error {
	e.Type = t
	e.Path = path
	e.Err = cause
	return e
}

// HasCode reports whether err or any Error it wraps carries code.
func HasCode(err error, code string) bool {
	for err != nil {
		var fe *Error
		if !errors.As(err, &fe) {
			return false
		}
		if fe.Code == code {
			return true
		}
		err = fe.Err
	}
	return false
}

func newGenerationError(t reflect.Type, cause error) *Error {
	path := attrpath.Root
	var inner *Error
	if errors.As(cause, &inner) {
		path = inner.Path
	}
	return NewErrorf(ErrCodeGenerationFailed, ErrMsgGenerationFailed, typeName(t), cause.Error()).at(t, path, cause)
}

func newInstantiationError(t reflect.Type, path attrpath.Path, cause error) *Error {
	return NewErrorf(ErrCodeInstantiationFailed, ErrMsgInstantiationFailed, t, cause.Error()).at(t, path, cause)
}

func newTypeResolutionError(t reflect.Type, path attrpath.Path, cause error) *Error {
	return NewErrorf(ErrCodeTypeResolutionFailed, ErrMsgTypeResolutionFailed, t, cause.Error()).at(t, path, cause)
}

func newIncomparableKeyError(t reflect.Type, path attrpath.Path, cause error) *Error {
	return NewErrorf(ErrCodeIncomparableKey, ErrMsgIncomparableKey, t, cause.Error()).at(t, path, cause)
}

func newOverrideMismatchError(t reflect.Type, path attrpath.Path, cause error) *Error {
	return NewErrorf(ErrCodeOverrideMismatch, ErrMsgOverrideMismatch, path, t, cause.Error()).at(t, path, cause)
}

func newConstraintInvalidError(t reflect.Type, path attrpath.Path, cause error) *Error {
	return NewErrorf(ErrCodeConstraintInvalid, ErrMsgConstraintInvalid, path, cause.Error()).at(t, path, cause)
}

func newConstraintRangeError(t reflect.Type, path attrpath.Path, cause error) *Error {
	return NewErrorf(ErrCodeConstraintRange, ErrMsgConstraintRange, t, path, cause.Error()).at(t, path, cause)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
