package apiclient

import (
	"context"
	"sync"
)

// TaskList keeps an in-memory copy of one task list view. Mutations keep
// it consistent with the server by re-fetching, except Create, which
// prepends the entity the server returned without a round trip.
type TaskList struct {
	mu     sync.Mutex
	client *Client
	opts   TaskListOptions

	items      []Task
	pagination Pagination
}

func NewTaskList(client *Client, opts TaskListOptions) *TaskList {
	return &TaskList{client: client, opts: opts}
}

func (l *TaskList) Refresh(ctx context.Context) error {
	tasks, pagination, err := l.client.ListTasks(ctx, l.opts)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = tasks
	if pagination != nil {
		l.pagination = *pagination
	}
	return nil
}

func (l *TaskList) Items() []Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]Task, len(l.items))
	copy(items, l.items)
	return items
}

func (l *TaskList) Pagination() Pagination {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pagination
}

func (l *TaskList) Create(ctx context.Context, in CreateTask) (Task, error) {
	task, err := l.client.CreateTask(ctx, in)
	if err != nil {
		return Task{}, err
	}

	l.mu.Lock()
	l.items = append([]Task{task}, l.items...)
	l.mu.Unlock()
	return task, nil
}

func (l *TaskList) Update(ctx context.Context, id string, patch TaskPatch) (Task, error) {
	task, err := l.client.UpdateTask(ctx, id, patch)
	if err != nil {
		return Task{}, err
	}
	if err := l.Refresh(ctx); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (l *TaskList) Delete(ctx context.Context, id string) error {
	if err := l.client.DeleteTask(ctx, id); err != nil {
		return err
	}
	return l.Refresh(ctx)
}

// MemberList is the member counterpart of TaskList; the member collection
// is not paginated.
type MemberList struct {
	mu     sync.Mutex
	client *Client

	items []Member
}

func NewMemberList(client *Client) *MemberList {
	return &MemberList{client: client}
}

func (l *MemberList) Refresh(ctx context.Context) error {
	members, err := l.client.ListMembers(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = members
	return nil
}

func (l *MemberList) Items() []Member {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]Member, len(l.items))
	copy(items, l.items)
	return items
}

func (l *MemberList) Create(ctx context.Context, in CreateMember) (Member, error) {
	member, err := l.client.CreateMember(ctx, in)
	if err != nil {
		return Member{}, err
	}

	l.mu.Lock()
	l.items = append([]Member{member}, l.items...)
	l.mu.Unlock()
	return member, nil
}

func (l *MemberList) Update(ctx context.Context, id string, patch MemberPatch) (Member, error) {
	member, err := l.client.UpdateMember(ctx, id, patch)
	if err != nil {
		return Member{}, err
	}
	if err := l.Refresh(ctx); err != nil {
		return Member{}, err
	}
	return member, nil
}

func (l *MemberList) Delete(ctx context.Context, id string) error {
	if err := l.client.DeleteMember(ctx, id); err != nil {
		return err
	}
	return l.Refresh(ctx)
}
