package validation

import (
	"encoding/json"

	"memberdesk/internal/adapter/http/dto"
	"memberdesk/internal/core/domain"
)

func BuildCreateMemberInput(req dto.CreateMemberRequest) (domain.CreateMemberInput, *domain.ValidationError) {
	var violations []domain.FieldViolation

	var in domain.CreateMemberInput
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Email != nil {
		in.Email = *req.Email
	}
	if req.MembershipType != nil {
		in.MembershipType = domain.MembershipType(*req.MembershipType)
	}
	if req.JoinDate != nil {
		parsed, violation := parseDate("joinDate", *req.JoinDate)
		if violation != nil {
			violations = append(violations, *violation)
		} else {
			in.JoinDate = &parsed
		}
	}
	in.IsActive = req.IsActive

	return in, asError(violations)
}

func BuildUpdateMemberInput(req dto.UpdateMemberRequest, raw map[string]json.RawMessage) (domain.UpdateMemberInput, *domain.ValidationError) {
	var violations []domain.FieldViolation
	var in domain.UpdateMemberInput

	if hasJSONField(raw, "name") {
		if req.Name == nil {
			violations = append(violations, nullViolation("name"))
		} else {
			in.Name = req.Name
		}
	}

	if hasJSONField(raw, "email") {
		if req.Email == nil {
			violations = append(violations, nullViolation("email"))
		} else {
			in.Email = req.Email
		}
	}

	if hasJSONField(raw, "membershipType") {
		if req.MembershipType == nil {
			violations = append(violations, nullViolation("membershipType"))
		} else {
			value := domain.MembershipType(*req.MembershipType)
			in.MembershipType = &value
		}
	}

	if hasJSONField(raw, "joinDate") {
		if req.JoinDate == nil {
			violations = append(violations, nullViolation("joinDate"))
		} else {
			parsed, violation := parseDate("joinDate", *req.JoinDate)
			if violation != nil {
				violations = append(violations, *violation)
			} else {
				in.JoinDate = &parsed
			}
		}
	}

	if hasJSONField(raw, "isActive") {
		if req.IsActive == nil {
			violations = append(violations, nullViolation("isActive"))
		} else {
			in.IsActive = req.IsActive
		}
	}

	return in, asError(violations)
}
