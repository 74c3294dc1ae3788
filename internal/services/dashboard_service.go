package services

import (
	"context"
	"fmt"
	"time"

	"devdash-backend/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	dashboardTodaysTasks    = 5
	dashboardRecentNotes    = 5
	dashboardRecentLeetcode = 3
	dashboardPinnedChats    = 3
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Summarize builds the overview for userID. The reads run concurrently and
// any failure fails the whole view.
func (s *DashboardService) Summarize(ctx context.Context, userID string) (*models.DashboardView, error) {
	now := s.db.NowFunc()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	view := &models.DashboardView{
		TodaysTasks:    []models.Task{},
		RecentNotes:    []models.NoteSummary{},
		RecentLeetcode: []models.LeetcodeProblem{},
		PinnedChats:    []models.ChatgptChat{},
	}

	g, gctx := errgroup.WithContext(ctx)
	db := func() *gorm.DB { return s.db.WithContext(gctx) }

	g.Go(func() error {
		return wrap("count tasks", db().Model(&models.Task{}).
			Where("user_id = ?", userID).Count(&view.TotalTasks).Error)
	})
	g.Go(func() error {
		return wrap("count completed tasks", db().Model(&models.Task{}).
			Where("user_id = ? AND completed = ?", userID, true).Count(&view.CompletedTasks).Error)
	})
	g.Go(func() error {
		// undated tasks created today count as due today
		err := db().Preload("Tags").
			Where("user_id = ?", userID).
			Where("((due_date >= ? AND due_date < ?) OR (due_date IS NULL AND created_at >= ? AND created_at < ?))",
				dayStart, dayEnd, dayStart, dayEnd).
			Order("created_at DESC").
			Limit(dashboardTodaysTasks).
			Find(&view.TodaysTasks).Error
		for i := range view.TodaysTasks {
			ensureTaskTags(&view.TodaysTasks[i])
		}
		return wrap("today's tasks", err)
	})
	g.Go(func() error {
		return wrap("count notes", db().Model(&models.Note{}).
			Where("user_id = ?", userID).Count(&view.TotalNotes).Error)
	})
	g.Go(func() error {
		return wrap("recent notes", db().Model(&models.Note{}).
			Select("id, title, updated_at").
			Where("user_id = ?", userID).
			Order("updated_at DESC").
			Limit(dashboardRecentNotes).
			Scan(&view.RecentNotes).Error)
	})
	g.Go(func() error {
		return wrap("recent leetcode", db().
			Where("user_id = ?", userID).
			Order("last_visited DESC").
			Limit(dashboardRecentLeetcode).
			Find(&view.RecentLeetcode).Error)
	})
	g.Go(func() error {
		return wrap("pinned chats", db().
			Where("user_id = ? AND is_pinned = ?", userID, true).
			Order("updated_at DESC").
			Limit(dashboardPinnedChats).
			Find(&view.PinnedChats).Error)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

func wrap(op string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard %s: %w", op, err)
	}
	return nil
}
