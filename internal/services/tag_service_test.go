package services

import (
	"context"
	"testing"

	"devdash-backend/internal/models"
	"devdash-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService_GetTagsWithCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, "a@example.com")
	other := testutil.CreateUser(t, env.db, "b@example.com")

	_, err := env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "1", Tags: []string{"go", "db"}})
	require.NoError(t, err)
	_, err = env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "2", Tags: []string{"go"}})
	require.NoError(t, err)
	_, err = env.notes.CreateNote(ctx, user.ID, &models.NoteCreateRequest{Title: "n", Tags: []string{"go", "ideas"}})
	require.NoError(t, err)
	_, err = env.tasks.CreateTask(ctx, other.ID, &models.TaskCreateRequest{Title: "x", Tags: []string{"go"}})
	require.NoError(t, err)

	tags, err := env.tagList.GetTags(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tags, 3)

	assert.Equal(t, "db", tags[0].Name)
	assert.Equal(t, 1, tags[0].TaskCount)
	assert.Equal(t, 0, tags[0].NoteCount)

	assert.Equal(t, "go", tags[1].Name)
	assert.Equal(t, 2, tags[1].TaskCount)
	assert.Equal(t, 1, tags[1].NoteCount)
	assert.Equal(t, models.DefaultTagColor, tags[1].Color)

	assert.Equal(t, "ideas", tags[2].Name)
	assert.Equal(t, 0, tags[2].TaskCount)
	assert.Equal(t, 1, tags[2].NoteCount)
}
