package transform

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidParameters reports a request that failed validation.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrOutOfBoundsCrop reports a crop rectangle that does not fit inside
	// the working image at the time the crop step runs.
	ErrOutOfBoundsCrop = errors.New("crop region out of bounds")

	// ErrEmptyTarget reports a crop or resize whose width or height is zero.
	ErrEmptyTarget = errors.New("zero-area target")
)

// FieldError describes one parameter that failed its predicate.
type FieldError struct {
	Field  string
	Reason string
}

// ParamError lists every parameter that failed validation.
//
// errors.Is(err, ErrInvalidParameters) is true for any *ParamError.
type ParamError struct {
	Fields []FieldError
}

func (e *ParamError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return ErrInvalidParameters.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrInvalidParameters.
func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParameters
}

func (e *ParamError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}
