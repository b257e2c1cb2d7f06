package validation

import (
	"encoding/json"

	"memberdesk/internal/adapter/http/dto"
	"memberdesk/internal/core/domain"
)

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, *domain.ValidationError) {
	var violations []domain.FieldViolation

	in := domain.CreateTaskInput{
		Description: req.Description,
		Tags:        req.Tags,
		Completed:   req.Completed,
	}
	if req.Title != nil {
		in.Title = *req.Title
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		in.Priority = &value
	}
	if req.DueDate != nil {
		parsed, violation := parseDate("dueDate", *req.DueDate)
		if violation != nil {
			violations = append(violations, *violation)
		} else {
			in.DueDate = &parsed
		}
	}

	return in, asError(violations)
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, *domain.ValidationError) {
	var violations []domain.FieldViolation
	var in domain.UpdateTaskInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			violations = append(violations, nullViolation("title"))
		} else {
			in.Title = req.Title
		}
	}

	if hasJSONField(raw, "description") {
		in.DescriptionSet = true
		// An explicit null clears the description.
		in.Description = req.Description
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			violations = append(violations, nullViolation("priority"))
		} else {
			value := domain.TaskPriority(*req.Priority)
			in.Priority = &value
		}
	}

	if hasJSONField(raw, "dueDate") {
		in.DueDateSet = true
		if req.DueDate != nil {
			parsed, violation := parseDate("dueDate", *req.DueDate)
			if violation != nil {
				violations = append(violations, *violation)
				in.DueDateSet = false
			} else {
				in.DueDate = &parsed
			}
		}
	}

	if hasJSONField(raw, "tags") {
		in.TagsSet = true
		in.Tags = req.Tags
		if in.Tags == nil {
			in.Tags = []string{}
		}
	}

	if hasJSONField(raw, "completed") {
		if req.Completed == nil {
			violations = append(violations, nullViolation("completed"))
		} else {
			in.Completed = req.Completed
		}
	}

	return in, asError(violations)
}
