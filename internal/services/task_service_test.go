package services

import (
	"testing"

	"github.com/gsouza/task-manager-api/internal/constants"
	"github.com/gsouza/task-manager-api/internal/models"
	"github.com/gsouza/task-manager-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTaskService(t *testing.T) (*TaskService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}, &models.Subtask{}))

	return NewTaskService(repository.NewTaskRepository(db)), db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestListTasks_PreservesRetrievalOrder(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "alice")

	for _, title := range []string{"primeira", "segunda", "terceira"} {
		_, err := svc.CreateTask(CreateTaskInput{Title: title, UserID: user.ID})
		require.NoError(t, err)
	}

	result, err := svc.ListTasks(user.ID)
	require.NoError(t, err)
	require.Len(t, result, 3)
	require.Equal(t, "primeira", result[0].Task.Title)
	require.Equal(t, "segunda", result[1].Task.Title)
	require.Equal(t, "terceira", result[2].Task.Title)
}

// A subtask whose parent is not in the caller's task set (a data anomaly;
// the API cannot produce one) is dropped from the projection, not an error.
func TestListTasks_DropsOrphanedSubtasks(t *testing.T) {
	svc, db := setupTaskService(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	bobTask, err := svc.CreateTask(CreateTaskInput{Title: "tarefa do bob", UserID: bob.ID})
	require.NoError(t, err)

	_, err = svc.CreateTask(CreateTaskInput{Title: "tarefa da alice", UserID: alice.ID})
	require.NoError(t, err)

	// Inserted directly: owned by alice but parented under bob's task
	orphan := &models.Subtask{
		Title:   "órfã",
		DueDate: constants.NoDueDate,
		TaskID:  bobTask.ID,
		UserID:  alice.ID,
	}
	require.NoError(t, db.Create(orphan).Error)

	result, err := svc.ListTasks(alice.ID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Empty(t, result[0].Subtasks)
}

func TestCreateTask_ReturnsAssembledFields(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "alice")

	task, err := svc.CreateTask(CreateTaskInput{Title: "comprar leite", UserID: user.ID})
	require.NoError(t, err)
	require.NotZero(t, task.ID)
	require.Equal(t, constants.PriorityNormal, task.Priority)
	require.Equal(t, constants.NoDueDate, task.DueDate)
	require.False(t, task.Completed)
}

func TestUpdateTask_RejectsEmptyTitle(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "alice")

	task, err := svc.CreateTask(CreateTaskInput{Title: "comprar leite", UserID: user.ID})
	require.NoError(t, err)

	empty := ""
	err = svc.UpdateTask(user.ID, task.ID, UpdateTaskInput{Title: &empty})
	require.ErrorIs(t, err, ErrTitleEmpty)
}

func TestCreateTask_ConflictComesFromUniqueIndexToo(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "alice")

	_, err := svc.CreateTask(CreateTaskInput{Title: "comprar leite", UserID: user.ID})
	require.NoError(t, err)

	// Bypass the service pre-check and hit the index directly: the store
	// constraint must surface as the same conflict the pre-check gives
	err = db.Create(&models.Task{
		Title:    "comprar leite",
		Priority: constants.PriorityNormal,
		DueDate:  constants.NoDueDate,
		UserID:   user.ID,
	}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
