package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gsouza/task-manager-api/internal/constants"
	"github.com/gsouza/task-manager-api/internal/dto"
	"github.com/gsouza/task-manager-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// SubtaskHandlerTestSuite reuses the task suite environment for the
// subtask routes.
type SubtaskHandlerTestSuite struct {
	TaskHandlerTestSuite
}

func (suite *SubtaskHandlerTestSuite) TestCreateSubtask_Defaults() {
	user := suite.createTestUser("alice")
	task := suite.createTestTask("Comprar leite", user.ID)

	w := suite.doRequest(user, http.MethodPost, fmt.Sprintf("/api/tasks/%d/subtasks", task.ID), map[string]any{
		"title": "Ir ao mercado",
	})

	suite.Require().Equal(http.StatusCreated, w.Code)

	var response dto.SubtaskDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Ir ao mercado", response.Title)
	assert.Equal(suite.T(), constants.NoDueDate, response.DueDate)
	assert.Equal(suite.T(), task.ID, response.TaskID)
	assert.Equal(suite.T(), user.ID, response.UserID)
	assert.False(suite.T(), response.Completed)
}

func (suite *SubtaskHandlerTestSuite) TestCreateSubtask_MissingTitle() {
	user := suite.createTestUser("alice")
	task := suite.createTestTask("Comprar leite", user.ID)

	w := suite.doRequest(user, http.MethodPost, fmt.Sprintf("/api/tasks/%d/subtasks", task.ID), map[string]any{
		"due_date": "2025-01-01",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// The original system inserted subtasks without verifying the parent; that
// gap is closed here: a parent owned by someone else behaves exactly like
// a parent that does not exist.
func (suite *SubtaskHandlerTestSuite) TestCreateSubtask_ParentOwnedByOtherUser() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	task := suite.createTestTask("Tarefa da Alice", alice.ID)

	w := suite.doRequest(bob, http.MethodPost, fmt.Sprintf("/api/tasks/%d/subtasks", task.ID), map[string]any{
		"title": "Intrusa",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var count int64
	suite.db.Model(&models.Subtask{}).Count(&count)
	assert.Zero(suite.T(), count)
}

func (suite *SubtaskHandlerTestSuite) TestCreateSubtask_ParentMissing() {
	user := suite.createTestUser("alice")

	w := suite.doRequest(user, http.MethodPost, "/api/tasks/999/subtasks", map[string]any{
		"title": "Órfã",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SubtaskHandlerTestSuite) TestUpdateSubtask_CompletedOnly() {
	user := suite.createTestUser("alice")
	task := suite.createTestTask("Comprar leite", user.ID)
	subtask := &models.Subtask{
		Title:   "Ir ao mercado",
		DueDate: "2025-01-01",
		TaskID:  task.ID,
		UserID:  user.ID,
	}
	suite.Require().NoError(suite.db.Create(subtask).Error)

	w := suite.doRequest(user, http.MethodPut, fmt.Sprintf("/api/subtasks/%d", subtask.ID), map[string]any{
		"completed": true,
	})

	suite.Require().Equal(http.StatusOK, w.Code)

	var stored models.Subtask
	suite.Require().NoError(suite.db.First(&stored, subtask.ID).Error)
	assert.True(suite.T(), stored.Completed)
	assert.Equal(suite.T(), "Ir ao mercado", stored.Title)
	assert.Equal(suite.T(), "2025-01-01", stored.DueDate)
}

func (suite *SubtaskHandlerTestSuite) TestUpdateSubtask_EmptyPatch() {
	user := suite.createTestUser("alice")
	task := suite.createTestTask("Comprar leite", user.ID)
	subtask := suite.createTestSubtask("Ir ao mercado", task.ID, user.ID)

	w := suite.doRequest(user, http.MethodPut, fmt.Sprintf("/api/subtasks/%d", subtask.ID), map[string]any{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SubtaskHandlerTestSuite) TestUpdateSubtask_ForeignSubtaskLooksMissing() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	task := suite.createTestTask("Tarefa da Alice", alice.ID)
	subtask := suite.createTestSubtask("Sub da Alice", task.ID, alice.ID)

	w := suite.doRequest(bob, http.MethodPut, fmt.Sprintf("/api/subtasks/%d", subtask.ID), map[string]any{
		"completed": true,
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var stored models.Subtask
	suite.Require().NoError(suite.db.First(&stored, subtask.ID).Error)
	assert.False(suite.T(), stored.Completed)
}

func (suite *SubtaskHandlerTestSuite) TestDeleteSubtask() {
	user := suite.createTestUser("alice")
	task := suite.createTestTask("Comprar leite", user.ID)
	subtask := suite.createTestSubtask("Ir ao mercado", task.ID, user.ID)

	w := suite.doRequest(user, http.MethodDelete, fmt.Sprintf("/api/subtasks/%d", subtask.ID), nil)
	suite.Require().Equal(http.StatusNoContent, w.Code)

	var count int64
	suite.db.Model(&models.Subtask{}).Count(&count)
	assert.Zero(suite.T(), count)

	// The parent task survives
	var taskCount int64
	suite.db.Model(&models.Task{}).Count(&taskCount)
	assert.Equal(suite.T(), int64(1), taskCount)
}

func (suite *SubtaskHandlerTestSuite) TestDeleteSubtask_ForeignSubtaskLooksMissing() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	task := suite.createTestTask("Tarefa da Alice", alice.ID)
	subtask := suite.createTestSubtask("Sub da Alice", task.ID, alice.ID)

	w := suite.doRequest(bob, http.MethodDelete, fmt.Sprintf("/api/subtasks/%d", subtask.ID), nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var count int64
	suite.db.Model(&models.Subtask{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func TestSubtaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SubtaskHandlerTestSuite))
}
