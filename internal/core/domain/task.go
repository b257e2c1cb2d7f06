package domain

import "time"

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

const (
	TaskTitleMaxLen       = 100
	TaskDescriptionMaxLen = 500
)

type Task struct {
	ID          string
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     *time.Time
	Tags        []string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    *TaskPriority
	DueDate     *time.Time
	Tags        []string
	Completed   *bool
}

// UpdateTaskInput carries only the fields present in the request body.
// The *Set flags distinguish "absent" from "explicitly set to null" for
// fields that may be cleared.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Priority       *TaskPriority
	DueDate        *time.Time
	DueDateSet     bool
	Tags           []string
	TagsSet        bool
	Completed      *bool
}

// TaskFilter holds the exact-match filters the task collection supports.
type TaskFilter struct {
	Completed *bool
	Priority  *TaskPriority
}

type TaskPage struct {
	Page  int64
	Limit int64
}

// TaskListResult is one page of tasks plus collection-wide counters.
type TaskListResult struct {
	Tasks []Task
	Page  int64
	Limit int64
	Total int64
	Pages int64
}
