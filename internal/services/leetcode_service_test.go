package services

import (
	"context"
	"testing"

	"devdash-backend/internal/models"
	"devdash-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProblem(t *testing.T, env *testEnv, userID, title string, difficulty models.Difficulty, tags ...string) *models.LeetcodeProblem {
	t.Helper()
	p, err := env.leetcode.CreateProblem(context.Background(), userID, &models.LeetcodeCreateRequest{
		Title:      title,
		Link:       "https://leetcode.com/problems/" + title + "/",
		Difficulty: difficulty,
		Tags:       tags,
	})
	require.NoError(t, err)
	return p
}

func TestLeetcodeService_Create(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, "a@example.com")

	p := newProblem(t, env, user.ID, "two-sum", models.DifficultyEasy)
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Tags)
	assert.False(t, p.LastVisited.IsZero())

	got, err := env.leetcode.GetProblem(context.Background(), user.ID, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestLeetcodeService_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, "a@example.com")

	_, err := env.leetcode.CreateProblem(ctx, user.ID, &models.LeetcodeCreateRequest{Link: "https://leetcode.com/problems/x/", Difficulty: "EASY"})
	requireValidation(t, err, "title")

	_, err = env.leetcode.CreateProblem(ctx, user.ID, &models.LeetcodeCreateRequest{Title: "x", Link: "not a url", Difficulty: "EASY"})
	requireValidation(t, err, "link")

	_, err = env.leetcode.CreateProblem(ctx, user.ID, &models.LeetcodeCreateRequest{Title: "x", Link: "https://leetcode.com/problems/x/", Difficulty: "INSANE"})
	requireValidation(t, err, "difficulty")
}

func TestLeetcodeService_VisitTracking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, "a@example.com")

	first := newProblem(t, env, user.ID, "first", models.DifficultyEasy)
	second := newProblem(t, env, user.ID, "second", models.DifficultyHard)

	list, err := env.leetcode.GetProblems(ctx, user.ID, &models.LeetcodeListRequest{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	// listing is not a visit
	list, err = env.leetcode.GetProblems(ctx, user.ID, &models.LeetcodeListRequest{})
	require.NoError(t, err)
	assert.True(t, first.LastVisited.Equal(list[1].LastVisited))

	visited, err := env.leetcode.GetProblem(ctx, user.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, visited.LastVisited.After(second.LastVisited))

	list, err = env.leetcode.GetProblems(ctx, user.ID, &models.LeetcodeListRequest{})
	require.NoError(t, err)
	assert.Equal(t, first.ID, list[0].ID)

	updated, err := env.leetcode.UpdateProblem(ctx, user.ID, second.ID, &models.LeetcodeUpdateRequest{Notes: strPtr("use a stack")})
	require.NoError(t, err)
	assert.Equal(t, "use a stack", updated.Notes)
	assert.True(t, updated.LastVisited.After(visited.LastVisited))
}

func TestLeetcodeService_ListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, "a@example.com")

	newProblem(t, env, user.ID, "clone-graph", models.DifficultyMedium, "Graph", "BFS")
	newProblem(t, env, user.ID, "climbing-stairs", models.DifficultyEasy, "DP")
	newProblem(t, env, user.ID, "two-sum", models.DifficultyEasy, "Array")

	found, err := env.leetcode.GetProblems(ctx, user.ID, &models.LeetcodeListRequest{Tags: "DP, Graph"})
	require.NoError(t, err)
	titles := []string{}
	for _, p := range found {
		titles = append(titles, p.Title)
	}
	assert.ElementsMatch(t, []string{"clone-graph", "climbing-stairs"}, titles)

	found, err = env.leetcode.GetProblems(ctx, user.ID, &models.LeetcodeListRequest{Difficulty: "EASY"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = env.leetcode.GetProblems(ctx, user.ID, &models.LeetcodeListRequest{Difficulty: "EASY", Tags: "Array"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "two-sum", found[0].Title)

	found, err = env.leetcode.GetProblems(ctx, user.ID, &models.LeetcodeListRequest{Search: "STAIRS"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	_, err = env.leetcode.GetProblems(ctx, user.ID, &models.LeetcodeListRequest{Difficulty: "INSANE"})
	requireValidation(t, err, "difficulty")
}

func TestLeetcodeService_UpdateTagsAndOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, env.db, "owner@example.com")
	other := testutil.CreateUser(t, env.db, "other@example.com")

	p := newProblem(t, env, owner.ID, "lru-cache", models.DifficultyMedium, "Design")

	updated, err := env.leetcode.UpdateProblem(ctx, owner.ID, p.ID, &models.LeetcodeUpdateRequest{Tags: &[]string{"Design", " Hash Table ", ""}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Design", "Hash Table"}, []string(updated.Tags))

	_, err = env.leetcode.GetProblem(ctx, other.ID, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = env.leetcode.UpdateProblem(ctx, other.ID, p.ID, &models.LeetcodeUpdateRequest{Notes: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, env.leetcode.DeleteProblem(ctx, other.ID, p.ID), ErrNotFound)

	require.NoError(t, env.leetcode.DeleteProblem(ctx, owner.ID, p.ID))
	_, err = env.leetcode.GetProblem(ctx, owner.ID, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
