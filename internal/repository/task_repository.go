package repository

import (
	"github.com/gsouza/task-manager-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// ListByUser returns all tasks owned by a user in id order
func (r *GormTaskRepository) ListByUser(userID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListSubtasksByUser returns all subtasks owned by a user in id order
func (r *GormTaskRepository) ListSubtasksByUser(userID uint64) ([]models.Subtask, error) {
	var subtasks []models.Subtask
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&subtasks).Error; err != nil {
		return nil, err
	}
	return subtasks, nil
}

// FindByTitleAndUser finds a task by exact title within one owner's set
func (r *GormTaskRepository) FindByTitleAndUser(title string, userID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("title = ? AND user_id = ?", title, userID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByIDAndUser finds a task by id, scoped to its owner
func (r *GormTaskRepository) FindByIDAndUser(id, userID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// UpdateFields applies a partial update to an owned task
func (r *GormTaskRepository) UpdateFields(id, userID uint64, fields map[string]any) (int64, error) {
	result := r.db.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// Delete removes an owned task and its subtasks in one transaction. The
// subtask cleanup backs up the FK cascade so it holds even when the
// connection was opened without the foreign_keys pragma.
func (r *GormTaskRepository) Delete(id, userID uint64) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		if affected == 0 {
			return nil
		}

		return tx.Where("task_id = ?", id).Delete(&models.Subtask{}).Error
	})
	return affected, err
}

// CreateSubtask creates a new subtask
func (r *GormTaskRepository) CreateSubtask(subtask *models.Subtask) error {
	return r.db.Create(subtask).Error
}

// UpdateSubtaskFields applies a partial update to an owned subtask
func (r *GormTaskRepository) UpdateSubtaskFields(id, userID uint64, fields map[string]any) (int64, error) {
	result := r.db.Model(&models.Subtask{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// DeleteSubtask removes an owned subtask
func (r *GormTaskRepository) DeleteSubtask(id, userID uint64) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Subtask{})
	return result.RowsAffected, result.Error
}
