// Package validation enforces the per-field constraints of both entity
// kinds before anything is persisted. It has no side effects and no
// knowledge of the storage client: create variants require every mandatory
// field, patch variants check only the fields the caller supplied.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"memberdesk/internal/core/domain"
)

func label(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

func required(field string) domain.FieldViolation {
	return domain.FieldViolation{
		Field:   field,
		Rule:    domain.RuleRequired,
		Message: fmt.Sprintf("%s is required", label(field)),
	}
}

func maxLength(field string, max int) domain.FieldViolation {
	return domain.FieldViolation{
		Field:   field,
		Rule:    domain.RuleMaxLength,
		Message: fmt.Sprintf("%s must be at most %d characters", label(field), max),
	}
}

func enum(field string, allowed ...string) domain.FieldViolation {
	return domain.FieldViolation{
		Field:   field,
		Rule:    domain.RuleEnum,
		Message: fmt.Sprintf("%s must be one of: %s", label(field), strings.Join(allowed, ", ")),
	}
}

func asError(violations []domain.FieldViolation) *domain.ValidationError {
	if len(violations) == 0 {
		return nil
	}
	return &domain.ValidationError{Violations: violations}
}

// NewMember checks a full member candidate for creation.
func NewMember(in domain.CreateMemberInput) *domain.ValidationError {
	var violations []domain.FieldViolation

	if strings.TrimSpace(in.Name) == "" {
		violations = append(violations, required("name"))
	}
	if strings.TrimSpace(in.Email) == "" {
		violations = append(violations, required("email"))
	}
	switch {
	case in.MembershipType == "":
		violations = append(violations, required("membershipType"))
	case !in.MembershipType.Valid():
		violations = append(violations, enum("membershipType",
			string(domain.MembershipBasic), string(domain.MembershipPremium), string(domain.MembershipVIP)))
	}

	return asError(violations)
}

// MemberPatch checks only the fields supplied in a partial update.
func MemberPatch(in domain.UpdateMemberInput) *domain.ValidationError {
	var violations []domain.FieldViolation

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		violations = append(violations, required("name"))
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) == "" {
		violations = append(violations, required("email"))
	}
	if in.MembershipType != nil && !in.MembershipType.Valid() {
		violations = append(violations, enum("membershipType",
			string(domain.MembershipBasic), string(domain.MembershipPremium), string(domain.MembershipVIP)))
	}

	return asError(violations)
}

// NewTask checks a full task candidate for creation.
func NewTask(in domain.CreateTaskInput) *domain.ValidationError {
	var violations []domain.FieldViolation

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		violations = append(violations, required("title"))
	case utf8.RuneCountInString(title) > domain.TaskTitleMaxLen:
		violations = append(violations, maxLength("title", domain.TaskTitleMaxLen))
	}
	if in.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*in.Description)) > domain.TaskDescriptionMaxLen {
		violations = append(violations, maxLength("description", domain.TaskDescriptionMaxLen))
	}
	if in.Priority != nil && !in.Priority.Valid() {
		violations = append(violations, enum("priority",
			string(domain.PriorityLow), string(domain.PriorityMedium), string(domain.PriorityHigh)))
	}

	return asError(violations)
}

// TaskPatch checks only the fields supplied in a partial update.
func TaskPatch(in domain.UpdateTaskInput) *domain.ValidationError {
	var violations []domain.FieldViolation

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		switch {
		case title == "":
			violations = append(violations, required("title"))
		case utf8.RuneCountInString(title) > domain.TaskTitleMaxLen:
			violations = append(violations, maxLength("title", domain.TaskTitleMaxLen))
		}
	}
	if in.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*in.Description)) > domain.TaskDescriptionMaxLen {
		violations = append(violations, maxLength("description", domain.TaskDescriptionMaxLen))
	}
	if in.Priority != nil && !in.Priority.Valid() {
		violations = append(violations, enum("priority",
			string(domain.PriorityLow), string(domain.PriorityMedium), string(domain.PriorityHigh)))
	}

	return asError(violations)
}
