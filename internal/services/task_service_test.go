package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"devdash-backend/internal/models"
	"devdash-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, "a@example.com")

	task, err := env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "Draft release notes"})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, user.ID, task.UserID)
	assert.False(t, task.Completed)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, 0, task.Progress)
	assert.NotNil(t, task.Tags)
	assert.Empty(t, task.Tags)

	updated, err := env.tasks.UpdateTask(ctx, user.ID, task.ID, &models.TaskUpdateRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Draft release notes", updated.Title)
	assert.True(t, updated.UpdatedAt.After(task.UpdatedAt))

	got, err := env.tasks.GetTask(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	require.NoError(t, env.tasks.DeleteTask(ctx, user.ID, task.ID))
	_, err = env.tasks.GetTask(ctx, user.ID, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_OtherUsersTasksLookMissing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, env.db, "owner@example.com")
	other := testutil.CreateUser(t, env.db, "other@example.com")

	task, err := env.tasks.CreateTask(ctx, owner.ID, &models.TaskCreateRequest{Title: "private"})
	require.NoError(t, err)

	_, err = env.tasks.GetTask(ctx, other.ID, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = env.tasks.UpdateTask(ctx, other.ID, task.ID, &models.TaskUpdateRequest{Title: strPtr("hijacked")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, env.tasks.DeleteTask(ctx, other.ID, task.ID), ErrNotFound)
	_, err = env.tasks.GetTask(ctx, other.ID, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := env.tasks.GetTask(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Title)

	list, err := env.tasks.GetTasks(ctx, other.ID, &models.TaskListRequest{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTaskService_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, "a@example.com")

	_, err := env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{})
	requireValidation(t, err, "title")

	_, err = env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "   "})
	requireValidation(t, err, "title")

	_, err = env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "x", Priority: "SOMEDAY"})
	requireValidation(t, err, "priority")

	_, err = env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "x", Progress: 101})
	requireValidation(t, err, "progress")

	task, err := env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "x"})
	require.NoError(t, err)
	_, err = env.tasks.UpdateTask(ctx, user.ID, task.ID, &models.TaskUpdateRequest{Title: strPtr("")})
	requireValidation(t, err, "title")
}

func TestTaskService_DueDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, "a@example.com")

	due := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)
	task, err := env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "x", DueDate: &due})
	require.NoError(t, err)
	require.NotNil(t, task.DueDate)
	assert.True(t, due.Equal(*task.DueDate))

	// absent leaves it alone
	task, err = env.tasks.UpdateTask(ctx, user.ID, task.ID, &models.TaskUpdateRequest{Progress: new(int)})
	require.NoError(t, err)
	require.NotNil(t, task.DueDate)

	task, err = env.tasks.UpdateTask(ctx, user.ID, task.ID, &models.TaskUpdateRequest{DueDate: models.Null[time.Time]()})
	require.NoError(t, err)
	assert.Nil(t, task.DueDate)

	later := due.Add(48 * time.Hour)
	task, err = env.tasks.UpdateTask(ctx, user.ID, task.ID, &models.TaskUpdateRequest{DueDate: models.Set(later)})
	require.NoError(t, err)
	require.NotNil(t, task.DueDate)
	assert.True(t, later.Equal(*task.DueDate))
}

func TestTaskService_TagsReplacedOnlyWhenPresent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, "a@example.com")

	task, err := env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "x", Tags: []string{"go", "db", "go"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "db"}, tagNames(task.Tags))

	task, err = env.tasks.UpdateTask(ctx, user.ID, task.ID, &models.TaskUpdateRequest{Title: strPtr("y")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "db"}, tagNames(task.Tags))

	task, err = env.tasks.UpdateTask(ctx, user.ID, task.ID, &models.TaskUpdateRequest{Tags: &[]string{"db", "ops"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"db", "ops"}, tagNames(task.Tags))

	task, err = env.tasks.UpdateTask(ctx, user.ID, task.ID, &models.TaskUpdateRequest{Tags: &[]string{}})
	require.NoError(t, err)
	assert.Empty(t, task.Tags)
}

func TestTaskService_ListFiltersAndOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, "a@example.com")

	draft, err := env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "Draft release notes", Priority: models.PriorityHigh})
	require.NoError(t, err)
	_, err = env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "Groceries", Description: "milk"})
	require.NoError(t, err)
	_, err = env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "Deploy", Completed: true})
	require.NoError(t, err)

	all, err := env.tasks.GetTasks(ctx, user.ID, &models.TaskListRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Deploy", all[0].Title)

	_, err = env.tasks.UpdateTask(ctx, user.ID, draft.ID, &models.TaskUpdateRequest{Progress: new(int)})
	require.NoError(t, err)
	all, err = env.tasks.GetTasks(ctx, user.ID, &models.TaskListRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Draft release notes", all[0].Title)

	found, err := env.tasks.GetTasks(ctx, user.ID, &models.TaskListRequest{Search: "RELEASE"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, draft.ID, found[0].ID)

	found, err = env.tasks.GetTasks(ctx, user.ID, &models.TaskListRequest{Search: "MiLk"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Groceries", found[0].Title)

	found, err = env.tasks.GetTasks(ctx, user.ID, &models.TaskListRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Deploy", found[0].Title)

	found, err = env.tasks.GetTasks(ctx, user.ID, &models.TaskListRequest{Priority: "HIGH"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, draft.ID, found[0].ID)

	_, err = env.tasks.GetTasks(ctx, user.ID, &models.TaskListRequest{Priority: "LATER"})
	requireValidation(t, err, "priority")
}

func TestTaskService_DatabaseErrorsAreNotNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTaskService(db, NewTagNormalizer())

	mock.ExpectQuery(`SELECT \* FROM "tasks"`).WillReturnError(errors.New("connection reset"))
	_, err := svc.GetTask(context.Background(), "user-1", "task-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")

	mock.ExpectQuery(`SELECT \* FROM "tasks"`).WillReturnError(errors.New("connection reset"))
	_, err = svc.GetTasks(context.Background(), "user-1", &models.TaskListRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list tasks")

	assert.NoError(t, mock.ExpectationsWereMet())
}
