package entity

import (
	"errors"
	"fmt"
)

// ErrValidationFailed matches every *ValidationError under errors.Is, so
// handlers can map field errors to 400 without inspecting the field.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError names the field that failed and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrValidationFailed) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
