package dto

import (
	"time"

	"github.com/gsouza/task-manager-api/internal/models"
	"github.com/gsouza/task-manager-api/internal/services"
)

// SubtaskDTO represents a subtask in API responses
type SubtaskDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	DueDate   string    `json:"due_date"`
	TaskID    uint64    `json:"task_id"`
	UserID    uint64    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskDTO represents a task with its nested subtasks in API responses.
// Subtasks is never omitted; a task without subtasks carries an empty
// array.
type TaskDTO struct {
	ID        uint64       `json:"id"`
	Title     string       `json:"title"`
	Completed bool         `json:"completed"`
	Priority  string       `json:"priority"`
	DueDate   string       `json:"due_date"`
	UserID    uint64       `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
	Subtasks  []SubtaskDTO `json:"subtasks"`
}

// ToSubtaskDTO converts a Subtask model to SubtaskDTO
func ToSubtaskDTO(subtask models.Subtask) SubtaskDTO {
	return SubtaskDTO{
		ID:        subtask.ID,
		Title:     subtask.Title,
		Completed: subtask.Completed,
		DueDate:   subtask.DueDate,
		TaskID:    subtask.TaskID,
		UserID:    subtask.UserID,
		CreatedAt: subtask.CreatedAt,
	}
}

// ToTaskDTO converts a task and its subtasks to TaskDTO
func ToTaskDTO(task models.Task, subtasks []models.Subtask) TaskDTO {
	subtaskDTOs := make([]SubtaskDTO, len(subtasks))
	for i, subtask := range subtasks {
		subtaskDTOs[i] = ToSubtaskDTO(subtask)
	}

	return TaskDTO{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		Priority:  task.Priority,
		DueDate:   task.DueDate,
		UserID:    task.UserID,
		CreatedAt: task.CreatedAt,
		Subtasks:  subtaskDTOs,
	}
}

// ToTaskListResponse converts the service projection to the response shape
func ToTaskListResponse(items []services.TaskWithSubtasks) []TaskDTO {
	result := make([]TaskDTO, len(items))
	for i, item := range items {
		result[i] = ToTaskDTO(item.Task, item.Subtasks)
	}
	return result
}
