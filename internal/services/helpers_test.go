package services

import (
	"testing"

	"devdash-backend/internal/models"
	"devdash-backend/internal/testutil"
	"devdash-backend/pkg/markdown"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db        *gorm.DB
	clock     *testutil.Clock
	tags      *TagNormalizer
	tasks     *TaskService
	notes     *NoteService
	folders   *FolderService
	tagList   *TagService
	leetcode  *LeetcodeService
	chats     *ChatgptService
	dashboard *DashboardService
	auth      *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := testutil.NewClock(testutil.Noon)
	db := testutil.NewDB(t, clock)
	tags := NewTagNormalizer()
	return &testEnv{
		db:        db,
		clock:     clock,
		tags:      tags,
		tasks:     NewTaskService(db, tags),
		notes:     NewNoteService(db, tags, markdown.NewRenderer(markdown.DefaultCodeStyle)),
		folders:   NewFolderService(db),
		tagList:   NewTagService(db),
		leetcode:  NewLeetcodeService(db),
		chats:     NewChatgptService(db),
		dashboard: NewDashboardService(db),
		auth:      NewAuthService(db),
	}
}

// newMockDB returns a gorm handle on the postgres dialector backed by sqlmock.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func requireValidation(t *testing.T, err error, field string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, field, verr.Field, verr.Message)
}
