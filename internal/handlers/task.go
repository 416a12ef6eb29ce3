package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gsouza/task-manager-api/internal/dto"
	apierrors "github.com/gsouza/task-manager-api/internal/errors"
	"github.com/gsouza/task-manager-api/internal/middleware"
	"github.com/gsouza/task-manager-api/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the caller's tasks with subtasks nested under each one
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.taskService.ListTasks(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks))
}

// CreateTask creates a new task for the caller
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Title    string `json:"title"`
		Priority string `json:"priority"`
		DueDate  string `json:"due_date"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:    req.Title,
		Priority: req.Priority,
		DueDate:  req.DueDate,
		UserID:   userID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task, nil))
}

// UpdateTask applies a partial update to one of the caller's tasks. The
// body is parsed as a raw map so that an absent field and a field set to
// its zero value stay distinguishable.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{
		Title:     stringField(rawReq, "title"),
		Priority:  stringField(rawReq, "priority"),
		DueDate:   stringField(rawReq, "due_date"),
		Completed: boolField(rawReq, "completed"),
	}

	if err := h.taskService.UpdateTask(userID, taskID, input); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tarefa atualizada com sucesso",
	})
}

// DeleteTask removes one of the caller's tasks along with its subtasks
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleEmpty),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrEmptyPatch):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTitleTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrSubtaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// stringField extracts an optional string field from a raw patch body
func stringField(raw map[string]any, key string) *string {
	value, ok := raw[key]
	if !ok {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return &s
}

// boolField extracts an optional completed-style field, normalizing JSON
// numbers to their truthiness the way the stored form expects
func boolField(raw map[string]any, key string) *bool {
	value, ok := raw[key]
	if !ok {
		return nil
	}
	var b bool
	switch v := value.(type) {
	case bool:
		b = v
	case float64:
		b = v != 0
	default:
		return nil
	}
	return &b
}
