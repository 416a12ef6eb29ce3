package repository

import (
	"github.com/gsouza/task-manager-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username (case-sensitive)
	FindByUsername(username string) (*models.User, error)
}

// TaskRepository defines the interface for task and subtask data access.
// Every method that reads or mutates an existing row filters by owner; a
// row belonging to another user behaves exactly like a missing row.
type TaskRepository interface {
	// ListByUser returns all tasks owned by a user in id order
	ListByUser(userID uint64) ([]models.Task, error)

	// ListSubtasksByUser returns all subtasks owned by a user in id order
	ListSubtasksByUser(userID uint64) ([]models.Subtask, error)

	// FindByTitleAndUser finds a task by exact title within one owner's set
	FindByTitleAndUser(title string, userID uint64) (*models.Task, error)

	// FindByIDAndUser finds a task by id, scoped to its owner
	FindByIDAndUser(id, userID uint64) (*models.Task, error)

	// Create creates a new task
	Create(task *models.Task) error

	// UpdateFields applies a partial update to an owned task and reports
	// how many rows matched
	UpdateFields(id, userID uint64, fields map[string]any) (int64, error)

	// Delete removes an owned task and its subtasks, reporting how many
	// task rows matched
	Delete(id, userID uint64) (int64, error)

	// CreateSubtask creates a new subtask
	CreateSubtask(subtask *models.Subtask) error

	// UpdateSubtaskFields applies a partial update to an owned subtask
	UpdateSubtaskFields(id, userID uint64, fields map[string]any) (int64, error)

	// DeleteSubtask removes an owned subtask
	DeleteSubtask(id, userID uint64) (int64, error)
}
