package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gsouza/task-manager-api/internal/dto"
	apierrors "github.com/gsouza/task-manager-api/internal/errors"
	"github.com/gsouza/task-manager-api/internal/middleware"
	"github.com/gsouza/task-manager-api/internal/services"
)

// SubtaskHandler coordinates subtask HTTP handlers.
type SubtaskHandler struct {
	taskService *services.TaskService
}

// NewSubtaskHandler creates a new SubtaskHandler
func NewSubtaskHandler(taskService *services.TaskService) *SubtaskHandler {
	return &SubtaskHandler{
		taskService: taskService,
	}
}

// CreateSubtask creates a subtask under one of the caller's tasks
func (h *SubtaskHandler) CreateSubtask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type CreateSubtaskRequest struct {
		Title   string `json:"title"`
		DueDate string `json:"due_date"`
	}

	var req CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	subtask, err := h.taskService.CreateSubtask(services.CreateSubtaskInput{
		Title:   req.Title,
		DueDate: req.DueDate,
		TaskID:  taskID,
		UserID:  userID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubtaskDTO(*subtask))
}

// UpdateSubtask applies a partial update to one of the caller's subtasks
func (h *SubtaskHandler) UpdateSubtask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	subtaskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateSubtaskInput{
		Title:     stringField(rawReq, "title"),
		DueDate:   stringField(rawReq, "due_date"),
		Completed: boolField(rawReq, "completed"),
	}

	if err := h.taskService.UpdateSubtask(userID, subtaskID, input); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sub-tarefa atualizada com sucesso.",
	})
}

// DeleteSubtask removes one of the caller's subtasks
func (h *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	subtaskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteSubtask(userID, subtaskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
