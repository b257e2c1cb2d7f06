package service

import (
	"context"
	"strings"
	"time"

	"memberdesk/internal/core/domain"
	"memberdesk/internal/core/ports"
	"memberdesk/internal/core/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) List(ctx context.Context, filter domain.TaskFilter, page domain.TaskPage) (domain.TaskListResult, error) {
	if page.Page < 1 {
		page.Page = defaultPage
	}
	if page.Limit < 1 {
		page.Limit = defaultLimit
	}

	tasks, total, err := s.taskRepository.List(ctx, filter, page)
	if err != nil {
		return domain.TaskListResult{}, err
	}

	return domain.TaskListResult{
		Tasks: tasks,
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
		Pages: (total + page.Limit - 1) / page.Limit,
	}, nil
}

func (s *TaskService) GetByID(ctx context.Context, id string) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

// Create validates the candidate, applies creation-time defaults and
// persists it. Defaults are computed here, never by the storage adapter.
func (s *TaskService) Create(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Description != nil {
		trimmed := strings.TrimSpace(*in.Description)
		in.Description = &trimmed
	}

	if vErr := validation.NewTask(in); vErr != nil {
		return domain.Task{}, vErr
	}

	now := time.Now().UTC()
	task := domain.Task{
		Title:     in.Title,
		Priority:  domain.PriorityMedium,
		Tags:      []string{},
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.DueDate != nil {
		value := *in.DueDate
		task.DueDate = &value
	}
	if in.Tags != nil {
		task.Tags = in.Tags
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}

	return s.taskRepository.Insert(ctx, task)
}

// Update validates only the supplied fields and merges them onto the
// stored document.
func (s *TaskService) Update(ctx context.Context, id string, in domain.UpdateTaskInput) (domain.Task, error) {
	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		in.Title = &trimmed
	}
	if in.Description != nil {
		trimmed := strings.TrimSpace(*in.Description)
		in.Description = &trimmed
	}

	if vErr := validation.TaskPatch(in); vErr != nil {
		return domain.Task{}, vErr
	}

	return s.taskRepository.Update(ctx, id, in)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.taskRepository.Delete(ctx, id)
}
