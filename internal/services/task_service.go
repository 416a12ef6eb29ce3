package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gsouza/task-manager-api/internal/constants"
	"github.com/gsouza/task-manager-api/internal/models"
	"github.com/gsouza/task-manager-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired   = errors.New("título obrigatório")
	ErrTitleEmpty      = errors.New("título não pode ser vazio")
	ErrTitleTaken      = errors.New("já existe uma tarefa com este nome")
	ErrInvalidPriority = errors.New("prioridade inválida")
	ErrEmptyPatch      = errors.New("nenhum campo para atualizar fornecido")
	ErrTaskNotFound    = errors.New("tarefa não encontrada")
	ErrSubtaskNotFound = errors.New("sub-tarefa não encontrada")
)

// TaskService enforces ownership on every task and subtask operation and
// derives the nested tasks-with-subtasks projection.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// TaskWithSubtasks pairs a task with the subtasks nested under it.
type TaskWithSubtasks struct {
	Task     models.Task
	Subtasks []models.Subtask
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title    string
	Priority string
	DueDate  string
	UserID   uint64
}

// CreateSubtaskInput represents input for creating a subtask
type CreateSubtaskInput struct {
	Title   string
	DueDate string
	TaskID  uint64
	UserID  uint64
}

// UpdateTaskInput represents a partial update; nil fields are left untouched
type UpdateTaskInput struct {
	Title     *string
	Priority  *string
	DueDate   *string
	Completed *bool
}

// UpdateSubtaskInput represents a partial update for a subtask
type UpdateSubtaskInput struct {
	Title     *string
	DueDate   *string
	Completed *bool
}

// ListTasks returns every task owned by the user with its subtasks nested,
// in retrieval order. Tasks and subtasks are loaded in two independent
// queries and merged in one pass; a join would duplicate task rows.
func (s *TaskService) ListTasks(userID uint64) ([]TaskWithSubtasks, error) {
	tasks, err := s.taskRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	subtasks, err := s.taskRepo.ListSubtasksByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subtasks: %w", err)
	}

	result := make([]TaskWithSubtasks, len(tasks))
	index := make(map[uint64]int, len(tasks))
	for i, task := range tasks {
		result[i] = TaskWithSubtasks{
			Task:     task,
			Subtasks: []models.Subtask{},
		}
		index[task.ID] = i
	}

	// A subtask whose parent is not in the map (orphaned by a data
	// anomaly) is dropped, not an error.
	for _, subtask := range subtasks {
		if i, ok := index[subtask.TaskID]; ok {
			result[i].Subtasks = append(result[i].Subtasks, subtask)
		}
	}

	return result, nil
}

// CreateTask creates a task for the user, applying the priority and
// due-date defaults. Returns the task as assembled, not re-read.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = constants.PriorityNormal
	}
	if !constants.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	if _, err := s.taskRepo.FindByTitleAndUser(input.Title, input.UserID); err == nil {
		return nil, ErrTitleTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check title: %w", err)
	}

	task := &models.Task{
		Title:    input.Title,
		Priority: priority,
		DueDate:  normalizeDueDate(input.DueDate),
		UserID:   input.UserID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		// Same conflict as the pre-check; see the unique index on
		// (user_id, title).
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// CreateSubtask creates a subtask under one of the caller's tasks. The
// parent must exist and belong to the caller; a foreign parent looks
// exactly like a missing one.
func (s *TaskService) CreateSubtask(input CreateSubtaskInput) (*models.Subtask, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	if _, err := s.taskRepo.FindByIDAndUser(input.TaskID, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to check parent task: %w", err)
	}

	subtask := &models.Subtask{
		Title:   input.Title,
		DueDate: normalizeDueDate(input.DueDate),
		TaskID:  input.TaskID,
		UserID:  input.UserID,
	}

	if err := s.taskRepo.CreateSubtask(subtask); err != nil {
		return nil, fmt.Errorf("failed to create subtask: %w", err)
	}

	return subtask, nil
}

// UpdateTask applies a partial update to an owned task. Fields absent from
// the input are left untouched.
func (s *TaskService) UpdateTask(userID, taskID uint64, input UpdateTaskInput) error {
	fields := map[string]any{}
	if input.Title != nil {
		if *input.Title == "" {
			return ErrTitleEmpty
		}
		fields["title"] = *input.Title
	}
	if input.Priority != nil {
		if !constants.ValidPriority(*input.Priority) {
			return ErrInvalidPriority
		}
		fields["priority"] = *input.Priority
	}
	if input.DueDate != nil {
		fields["due_date"] = normalizeDueDate(*input.DueDate)
	}
	if input.Completed != nil {
		fields["completed"] = *input.Completed
	}

	if len(fields) == 0 {
		return ErrEmptyPatch
	}

	affected, err := s.taskRepo.UpdateFields(taskID, userID, fields)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// UpdateSubtask applies a partial update to an owned subtask.
func (s *TaskService) UpdateSubtask(userID, subtaskID uint64, input UpdateSubtaskInput) error {
	fields := map[string]any{}
	if input.Title != nil {
		if *input.Title == "" {
			return ErrTitleEmpty
		}
		fields["title"] = *input.Title
	}
	if input.DueDate != nil {
		fields["due_date"] = normalizeDueDate(*input.DueDate)
	}
	if input.Completed != nil {
		fields["completed"] = *input.Completed
	}

	if len(fields) == 0 {
		return ErrEmptyPatch
	}

	affected, err := s.taskRepo.UpdateSubtaskFields(subtaskID, userID, fields)
	if err != nil {
		return fmt.Errorf("failed to update subtask: %w", err)
	}
	if affected == 0 {
		return ErrSubtaskNotFound
	}
	return nil
}

// DeleteTask removes an owned task; its subtasks go with it in the storage
// layer.
func (s *TaskService) DeleteTask(userID, taskID uint64) error {
	affected, err := s.taskRepo.Delete(taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteSubtask removes an owned subtask
func (s *TaskService) DeleteSubtask(userID, subtaskID uint64) error {
	affected, err := s.taskRepo.DeleteSubtask(subtaskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete subtask: %w", err)
	}
	if affected == 0 {
		return ErrSubtaskNotFound
	}
	return nil
}

// normalizeDueDate maps an absent or blank due date to the stored sentinel.
func normalizeDueDate(dueDate string) string {
	if strings.TrimSpace(dueDate) == "" {
		return constants.NoDueDate
	}
	return dueDate
}
