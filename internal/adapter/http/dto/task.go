package dto

type TaskItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Tags        []string `json:"tags"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Request bodies use pointers throughout so missing fields stay
// distinguishable from zero values; the schema validator reports
// per-field violations instead of binding-tag errors.
type CreateTaskRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority"`
	DueDate     *string  `json:"dueDate"`
	Tags        []string `json:"tags"`
	Completed   *bool    `json:"completed"`
}

type UpdateTaskRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority"`
	DueDate     *string  `json:"dueDate"`
	Tags        []string `json:"tags"`
	Completed   *bool    `json:"completed"`
}
