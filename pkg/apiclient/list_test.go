package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeTaskAPI is a minimal in-memory backend speaking the envelope wire
// format, enough to drive the cached list views.
type fakeTaskAPI struct {
	mu    sync.Mutex
	seq   int
	tasks []map[string]any
}

func (f *fakeTaskAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/tasks":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"count":   len(f.tasks),
				"data":    f.tasks,
				"pagination": map[string]any{
					"page": 1, "limit": 10, "total": len(f.tasks), "pages": 1,
				},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/tasks":
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.seq++
			task := map[string]any{
				"id":        fmt.Sprintf("t%d", f.seq),
				"title":     body["title"],
				"priority":  "medium",
				"tags":      []string{},
				"completed": false,
				"createdAt": "2025-05-20T10:20:30Z",
				"updatedAt": "2025-05-20T10:20:30Z",
			}
			f.tasks = append([]map[string]any{task}, f.tasks...)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true, "message": "Task created successfully", "data": task,
			})
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/tasks/"):
			id := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			for _, task := range f.tasks {
				if task["id"] == id {
					for key, value := range body {
						task[key] = value
					}
					_ = json.NewEncoder(w).Encode(map[string]any{
						"success": true, "message": "Task updated successfully", "data": task,
					})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Task not found"})
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/tasks/"):
			id := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
			for i, task := range f.tasks {
				if task["id"] == id {
					f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
					_ = json.NewEncoder(w).Encode(map[string]any{
						"success": true, "message": "Task deleted successfully",
					})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Task not found"})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "API endpoint not found"})
		}
	})
}

func TestTaskList_CreatePrependsWithoutRefetch(t *testing.T) {
	api := &fakeTaskAPI{}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	list := NewTaskList(New(server.URL), TaskListOptions{})
	ctx := context.Background()

	require.NoError(t, list.Refresh(ctx))
	require.Empty(t, list.Items())

	first, err := list.Create(ctx, CreateTask{Title: "first"})
	require.NoError(t, err)

	second, err := list.Create(ctx, CreateTask{Title: "second"})
	require.NoError(t, err)

	items := list.Items()
	require.Len(t, items, 2)
	require.Equal(t, second.ID, items[0].ID)
	require.Equal(t, first.ID, items[1].ID)
}

func TestTaskList_UpdateRefetches(t *testing.T) {
	api := &fakeTaskAPI{}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	list := NewTaskList(New(server.URL), TaskListOptions{})
	ctx := context.Background()

	created, err := list.Create(ctx, CreateTask{Title: "first"})
	require.NoError(t, err)

	completed := true
	updated, err := list.Update(ctx, created.ID, TaskPatch{Completed: &completed})
	require.NoError(t, err)
	require.True(t, updated.Completed)

	items := list.Items()
	require.Len(t, items, 1)
	require.True(t, items[0].Completed)
	require.Equal(t, int64(1), list.Pagination().Total)
}

func TestTaskList_DeleteRefetches(t *testing.T) {
	api := &fakeTaskAPI{}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	list := NewTaskList(New(server.URL), TaskListOptions{})
	ctx := context.Background()

	created, err := list.Create(ctx, CreateTask{Title: "first"})
	require.NoError(t, err)
	require.Len(t, list.Items(), 1)

	require.NoError(t, list.Delete(ctx, created.ID))
	require.Empty(t, list.Items())
}

func TestTaskList_ItemsReturnsCopy(t *testing.T) {
	api := &fakeTaskAPI{}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	list := NewTaskList(New(server.URL), TaskListOptions{})
	ctx := context.Background()

	_, err := list.Create(ctx, CreateTask{Title: "first"})
	require.NoError(t, err)

	items := list.Items()
	items[0].Title = "mutated"
	require.Equal(t, "first", list.Items()[0].Title)
}

func TestMemberList_CreatePrependsAndErrorsPassThrough(t *testing.T) {
	var failCreate bool
	members := []map[string]any{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true, "count": len(members), "data": members,
			})
		case http.MethodPost:
			if failCreate {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Email already exists"})
				return
			}
			member := map[string]any{
				"id": "m1", "name": "Ada", "email": "ada@example.com", "membershipType": "Basic",
				"joinDate": "2025-05-20T10:20:30Z", "isActive": true,
				"createdAt": "2025-05-20T10:20:30Z", "updatedAt": "2025-05-20T10:20:30Z",
			}
			members = append([]map[string]any{member}, members...)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": member})
		}
	}))
	defer server.Close()

	list := NewMemberList(New(server.URL))
	ctx := context.Background()

	created, err := list.Create(ctx, CreateMember{Name: "Ada", Email: "ada@example.com", MembershipType: "Basic"})
	require.NoError(t, err)
	require.Equal(t, "m1", created.ID)
	require.Len(t, list.Items(), 1)

	failCreate = true
	_, err = list.Create(ctx, CreateMember{Name: "Dup", Email: "ada@example.com", MembershipType: "Basic"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Email already exists", apiErr.Message)
	// Failed create leaves the cached view untouched.
	require.Len(t, list.Items(), 1)
}
