package services

import (
	"context"
	"strings"
	"testing"

	"devdash-backend/internal/models"
	"devdash-backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"pgregory.net/rapid"
)

func TestCleanTagNames(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"trims", []string{" go ", "db"}, []string{"go", "db"}},
		{"drops blanks", []string{"", "  ", "go"}, []string{"go"}},
		{"first occurrence wins", []string{"b", "a", "b ", "a"}, []string{"b", "a"}},
		{"case sensitive", []string{"Go", "go"}, []string{"Go", "go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTagNames(tt.in))
		})
	}
}

func TestCleanTagNames_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := rapid.SliceOf(rapid.SampledFrom([]string{"go", " go", "go ", "db", "", "  ", "Go", "sql"})).Draw(rt, "names")
		out := CleanTagNames(in)

		seen := map[string]bool{}
		for _, name := range out {
			if name == "" || name != strings.TrimSpace(name) {
				rt.Fatalf("name %q not cleaned", name)
			}
			if seen[name] {
				rt.Fatalf("duplicate %q in %v", name, out)
			}
			seen[name] = true
		}
		for _, name := range in {
			if trimmed := strings.TrimSpace(name); trimmed != "" && !seen[trimmed] {
				rt.Fatalf("%q missing from %v", trimmed, out)
			}
		}
	})
}

func TestTagNormalizer_ReusesTagsAcrossEntities(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, "a@example.com")

	task, err := env.tasks.CreateTask(ctx, user.ID, &models.TaskCreateRequest{Title: "t", Tags: []string{"go", "db"}})
	require.NoError(t, err)
	note, err := env.notes.CreateNote(ctx, user.ID, &models.NoteCreateRequest{Title: "n", Tags: []string{"go"}})
	require.NoError(t, err)

	var goTask, goNote string
	for _, tag := range task.Tags {
		if tag.Name == "go" {
			goTask = tag.ID
		}
	}
	goNote = note.Tags[0].ID
	assert.Equal(t, goTask, goNote)

	var count int64
	require.NoError(t, env.db.Model(&models.Tag{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestTagNormalizer_TagsAreScopedPerUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, env.db, "alice@example.com")
	bob := testutil.CreateUser(t, env.db, "bob@example.com")

	a, err := env.tasks.CreateTask(ctx, alice.ID, &models.TaskCreateRequest{Title: "a", Tags: []string{"go"}})
	require.NoError(t, err)
	b, err := env.tasks.CreateTask(ctx, bob.ID, &models.TaskCreateRequest{Title: "b", Tags: []string{"go"}})
	require.NoError(t, err)

	require.Len(t, a.Tags, 1)
	require.Len(t, b.Tags, 1)
	assert.NotEqual(t, a.Tags[0].ID, b.Tags[0].ID)
	assert.Equal(t, bob.ID, b.Tags[0].UserID)
}

func TestTagNormalizer_ResultMatchesCleanedNames(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	pool := []string{"go", " go", "db", "", "sql ", "Go"}

	rapid.Check(t, func(rt *rapid.T) {
		first := rapid.SliceOf(rapid.SampledFrom(pool)).Draw(rt, "first")
		second := rapid.SliceOf(rapid.SampledFrom(pool)).Draw(rt, "second")

		user := &models.User{Email: uuid.NewString() + "@example.com", PasswordHash: "x"}
		require.NoError(rt, env.db.Create(user).Error)
		task := &models.Task{UserID: user.ID, Title: "t", Priority: models.PriorityMedium}
		require.NoError(rt, env.db.Create(task).Error)

		for _, names := range [][]string{first, second} {
			err := env.db.Transaction(func(tx *gorm.DB) error {
				_, err := env.tags.Normalize(ctx, tx, user.ID, task, names)
				return err
			})
			require.NoError(rt, err)
		}

		var loaded models.Task
		require.NoError(rt, env.db.Preload("Tags").First(&loaded, "id = ?", task.ID).Error)
		assert.ElementsMatch(rt, CleanTagNames(second), tagNames(loaded.Tags))
	})
}
