package validation_test

import (
	"strings"
	"testing"

	"memberdesk/internal/core/domain"
	"memberdesk/internal/core/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewMember_Valid(t *testing.T) {
	vErr := validation.NewMember(domain.CreateMemberInput{
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
		MembershipType: domain.MembershipPremium,
	})
	assert.Nil(t, vErr)
}

func TestNewMember_MissingFields(t *testing.T) {
	vErr := validation.NewMember(domain.CreateMemberInput{})
	require.NotNil(t, vErr)
	require.Len(t, vErr.Violations, 3)

	// Violations are reported in field-check order.
	assert.Equal(t, "name", vErr.Violations[0].Field)
	assert.Equal(t, "email", vErr.Violations[1].Field)
	assert.Equal(t, "membershipType", vErr.Violations[2].Field)
	for _, v := range vErr.Violations {
		assert.Equal(t, domain.RuleRequired, v.Rule)
	}
	assert.True(t, vErr.RequiredOnly())
}

func TestNewMember_WhitespaceOnlyNameIsMissing(t *testing.T) {
	vErr := validation.NewMember(domain.CreateMemberInput{
		Name:           "   ",
		Email:          "ada@example.com",
		MembershipType: domain.MembershipBasic,
	})
	require.NotNil(t, vErr)
	require.Len(t, vErr.Violations, 1)
	assert.Equal(t, "name", vErr.Violations[0].Field)
	assert.Equal(t, domain.RuleRequired, vErr.Violations[0].Rule)
}

func TestNewMember_InvalidMembershipType(t *testing.T) {
	vErr := validation.NewMember(domain.CreateMemberInput{
		Name:           "Ada",
		Email:          "ada@example.com",
		MembershipType: "Gold",
	})
	require.NotNil(t, vErr)
	require.Len(t, vErr.Violations, 1)
	assert.Equal(t, "membershipType", vErr.Violations[0].Field)
	assert.Equal(t, domain.RuleEnum, vErr.Violations[0].Rule)
	assert.False(t, vErr.RequiredOnly())
}

func TestMemberPatch_ChecksSuppliedFieldsOnly(t *testing.T) {
	// Name omitted entirely: no violation even though it would be
	// required on create.
	vErr := validation.MemberPatch(domain.UpdateMemberInput{
		Email: strPtr("new@example.com"),
	})
	assert.Nil(t, vErr)

	empty := ""
	vErr = validation.MemberPatch(domain.UpdateMemberInput{Email: &empty})
	require.NotNil(t, vErr)
	assert.Equal(t, "email", vErr.Violations[0].Field)
	assert.Equal(t, domain.RuleRequired, vErr.Violations[0].Rule)
}

func TestNewTask_Valid(t *testing.T) {
	priority := domain.PriorityHigh
	vErr := validation.NewTask(domain.CreateTaskInput{
		Title:    "Ship the release",
		Priority: &priority,
	})
	assert.Nil(t, vErr)
}

func TestNewTask_MissingTitle(t *testing.T) {
	vErr := validation.NewTask(domain.CreateTaskInput{})
	require.NotNil(t, vErr)
	require.Len(t, vErr.Violations, 1)
	assert.Equal(t, "title", vErr.Violations[0].Field)
	assert.Equal(t, domain.RuleRequired, vErr.Violations[0].Rule)
}

func TestNewTask_TitleTooLong(t *testing.T) {
	vErr := validation.NewTask(domain.CreateTaskInput{
		Title: strings.Repeat("x", domain.TaskTitleMaxLen+1),
	})
	require.NotNil(t, vErr)
	assert.Equal(t, "title", vErr.Violations[0].Field)
	assert.Equal(t, domain.RuleMaxLength, vErr.Violations[0].Rule)
}

func TestNewTask_LimitsCountCharactersNotBytes(t *testing.T) {
	// 100 three-byte runes: 300 bytes but exactly at the character limit.
	title := strings.Repeat("日", domain.TaskTitleMaxLen)
	vErr := validation.NewTask(domain.CreateTaskInput{Title: title})
	assert.Nil(t, vErr)

	over := title + "本"
	vErr = validation.NewTask(domain.CreateTaskInput{Title: over})
	require.NotNil(t, vErr)
	assert.Equal(t, "title", vErr.Violations[0].Field)
	assert.Equal(t, domain.RuleMaxLength, vErr.Violations[0].Rule)

	description := strings.Repeat("é", domain.TaskDescriptionMaxLen)
	vErr = validation.NewTask(domain.CreateTaskInput{Title: "ok", Description: &description})
	assert.Nil(t, vErr)

	vErr = validation.TaskPatch(domain.UpdateTaskInput{Title: &over})
	require.NotNil(t, vErr)
	assert.Equal(t, domain.RuleMaxLength, vErr.Violations[0].Rule)
}

func TestNewTask_DescriptionTooLong(t *testing.T) {
	long := strings.Repeat("x", domain.TaskDescriptionMaxLen+1)
	vErr := validation.NewTask(domain.CreateTaskInput{
		Title:       "ok",
		Description: &long,
	})
	require.NotNil(t, vErr)
	assert.Equal(t, "description", vErr.Violations[0].Field)
	assert.Equal(t, domain.RuleMaxLength, vErr.Violations[0].Rule)
}

func TestNewTask_InvalidPriority(t *testing.T) {
	priority := domain.TaskPriority("urgent")
	vErr := validation.NewTask(domain.CreateTaskInput{
		Title:    "ok",
		Priority: &priority,
	})
	require.NotNil(t, vErr)
	assert.Equal(t, "priority", vErr.Violations[0].Field)
	assert.Equal(t, domain.RuleEnum, vErr.Violations[0].Rule)
}

func TestTaskPatch_ChecksSuppliedFieldsOnly(t *testing.T) {
	vErr := validation.TaskPatch(domain.UpdateTaskInput{})
	assert.Nil(t, vErr)

	empty := ""
	vErr = validation.TaskPatch(domain.UpdateTaskInput{Title: &empty})
	require.NotNil(t, vErr)
	assert.Equal(t, "title", vErr.Violations[0].Field)
	assert.Equal(t, domain.RuleRequired, vErr.Violations[0].Rule)

	priority := domain.TaskPriority("invalid")
	vErr = validation.TaskPatch(domain.UpdateTaskInput{Priority: &priority})
	require.NotNil(t, vErr)
	assert.Equal(t, domain.RuleEnum, vErr.Violations[0].Rule)
}
