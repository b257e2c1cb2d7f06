package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrEmailExists    = errors.New("email already exists")
)

// FieldRule identifies which constraint a field violated. Required and enum
// violations are distinct so callers can format different messages.
type FieldRule string

const (
	RuleRequired  FieldRule = "required"
	RuleMaxLength FieldRule = "max_length"
	RuleEnum      FieldRule = "enum"
	RuleType      FieldRule = "type"
)

type FieldViolation struct {
	Field   string
	Rule    FieldRule
	Message string
}

// ValidationError reports field-level violations in the order the fields
// were checked.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, fmt.Sprintf("%s (%s)", v.Field, v.Rule))
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// RequiredOnly reports whether every violation is a missing required field.
func (e *ValidationError) RequiredOnly() bool {
	for _, v := range e.Violations {
		if v.Rule != RuleRequired {
			return false
		}
	}
	return len(e.Violations) > 0
}
