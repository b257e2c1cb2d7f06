package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"memberdesk/internal/adapter/http/dto"
	"memberdesk/internal/adapter/http/mapper"
	"memberdesk/internal/adapter/http/middleware"
	"memberdesk/internal/adapter/http/validation"
	"memberdesk/internal/core/domain"
	"memberdesk/internal/core/ports"
	"memberdesk/pkg/envelope"
)

type TaskHandler struct {
	taskService  ports.TaskService
	exposeErrors bool
}

func NewTaskHandler(taskService ports.TaskService, exposeErrors bool) *TaskHandler {
	return &TaskHandler{taskService: taskService, exposeErrors: exposeErrors}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	var filter domain.TaskFilter
	if value, ok := c.GetQuery("completed"); ok {
		completed := value == "true"
		filter.Completed = &completed
	}
	if value, ok := c.GetQuery("priority"); ok && value != "" {
		priority := domain.TaskPriority(value)
		filter.Priority = &priority
	}

	page := domain.TaskPage{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}

	result, err := h.taskService.List(c.Request.Context(), filter, page)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			envelope.Fail(envelope.MsgFailListTasks, lang).WithDetail(err, h.exposeErrors),
		)
		return
	}

	items := mapper.ToTaskItems(result.Tasks)
	c.JSON(http.StatusOK, envelope.OK(items).WithCount(len(items)).WithPagination(envelope.Pagination{
		Page:  result.Page,
		Limit: result.Limit,
		Total: result.Total,
		Pages: result.Pages,
	}))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID := c.Param("id")

	task, err := h.taskService.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, envelope.Fail(envelope.MsgTaskNotFound, lang))
			return
		}

		zap.L().Error("failed to fetch task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			envelope.Fail(envelope.MsgFailGetTask, lang).WithDetail(err, h.exposeErrors),
		)
		return
	}

	c.JSON(http.StatusOK, envelope.OK(mapper.ToTaskItem(task)))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := decodeBody(c, &req, nil); err != nil {
		c.JSON(http.StatusBadRequest, bindFailure(err, lang))
		return
	}

	in, vErr := validation.BuildCreateTaskInput(req)
	if vErr != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(envelope.MsgValidationErrors, lang).WithErrors(fieldErrors(vErr)))
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), in)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, envelope.Fail(envelope.MsgValidationErrors, lang).WithErrors(fieldErrors(validationErr)))
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			envelope.Fail(envelope.MsgFailCreateTask, lang).WithDetail(err, h.exposeErrors),
		)
		return
	}

	c.JSON(http.StatusCreated, envelope.OKMessage(mapper.ToTaskItem(task), envelope.MsgTaskCreated, lang))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID := c.Param("id")

	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	if err := decodeBody(c, &req, &raw); err != nil {
		c.JSON(http.StatusBadRequest, bindFailure(err, lang))
		return
	}

	in, vErr := validation.BuildUpdateTaskInput(req, raw)
	if vErr != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(envelope.MsgValidationErrors, lang).WithErrors(fieldErrors(vErr)))
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), taskID, in)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, envelope.Fail(envelope.MsgValidationErrors, lang).WithErrors(fieldErrors(validationErr)))
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, envelope.Fail(envelope.MsgTaskNotFound, lang))
		default:
			zap.L().Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				envelope.Fail(envelope.MsgFailUpdateTask, lang).WithDetail(err, h.exposeErrors),
			)
		}
		return
	}

	c.JSON(http.StatusOK, envelope.OKMessage(mapper.ToTaskItem(task), envelope.MsgTaskUpdated, lang))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID := c.Param("id")

	if err := h.taskService.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, envelope.Fail(envelope.MsgTaskNotFound, lang))
			return
		}

		zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			envelope.Fail(envelope.MsgFailDeleteTask, lang).WithDetail(err, h.exposeErrors),
		)
		return
	}

	c.JSON(http.StatusOK, envelope.OKMessage(nil, envelope.MsgTaskDeleted, lang))
}

// queryInt parses a positive integer query parameter, falling back to the
// default for anything unparseable.
func queryInt(c *gin.Context, key string, fallback int64) int64 {
	value := c.Query(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
