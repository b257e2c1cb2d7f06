package ports

import (
	"context"

	"memberdesk/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, filter domain.TaskFilter, page domain.TaskPage) ([]domain.Task, int64, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Insert(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, id string, in domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	List(ctx context.Context, filter domain.TaskFilter, page domain.TaskPage) (domain.TaskListResult, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id string, in domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}
