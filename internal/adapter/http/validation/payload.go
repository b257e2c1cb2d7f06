// Package validation builds domain inputs from decoded request bodies.
// Partial-update builders take the raw JSON object alongside the typed
// request so an absent field stays distinguishable from an explicit null.
package validation

import (
	"encoding/json"
	"fmt"
	"time"

	"memberdesk/internal/core/domain"
)

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func nullViolation(field string) domain.FieldViolation {
	return domain.FieldViolation{
		Field:   field,
		Rule:    domain.RuleType,
		Message: fmt.Sprintf("%s must not be null", field),
	}
}

// parseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func parseDate(field, value string) (time.Time, *domain.FieldViolation) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, &domain.FieldViolation{
		Field:   field,
		Rule:    domain.RuleType,
		Message: fmt.Sprintf("%s must be an RFC 3339 timestamp or a YYYY-MM-DD date", field),
	}
}

func asError(violations []domain.FieldViolation) *domain.ValidationError {
	if len(violations) == 0 {
		return nil
	}
	return &domain.ValidationError{Violations: violations}
}
