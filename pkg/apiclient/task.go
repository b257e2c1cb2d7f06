package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `json:"tags"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type CreateTask struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Completed   *bool    `json:"completed,omitempty"`
}

// TaskPatch is a partial update; nil fields are left untouched.
type TaskPatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Completed   *bool    `json:"completed,omitempty"`
}

// TaskListOptions mirror the list query parameters.
type TaskListOptions struct {
	Page      int64
	Limit     int64
	Completed *bool
	Priority  string
}

func (o TaskListOptions) query() string {
	values := url.Values{}
	if o.Page > 0 {
		values.Set("page", strconv.FormatInt(o.Page, 10))
	}
	if o.Limit > 0 {
		values.Set("limit", strconv.FormatInt(o.Limit, 10))
	}
	if o.Completed != nil {
		values.Set("completed", strconv.FormatBool(*o.Completed))
	}
	if o.Priority != "" {
		values.Set("priority", o.Priority)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func (c *Client) ListTasks(ctx context.Context, opts TaskListOptions) ([]Task, *Pagination, error) {
	var tasks []Task
	resp, err := c.do(ctx, http.MethodGet, "/api/tasks"+opts.query(), nil, &tasks)
	if err != nil {
		return nil, nil, err
	}
	return tasks, resp.Pagination, nil
}

func (c *Client) GetTask(ctx context.Context, id string) (Task, error) {
	var task Task
	if _, err := c.do(ctx, http.MethodGet, "/api/tasks/"+id, nil, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (c *Client) CreateTask(ctx context.Context, in CreateTask) (Task, error) {
	var task Task
	if _, err := c.do(ctx, http.MethodPost, "/api/tasks", in, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error) {
	var task Task
	if _, err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, patch, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
	return err
}
