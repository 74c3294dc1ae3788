package services

import (
	"context"
	"fmt"
	"strings"

	"devdash-backend/internal/models"

	"gorm.io/gorm"
)

type TaskService struct {
	db   *gorm.DB
	tags *TagNormalizer
}

func NewTaskService(db *gorm.DB, tags *TagNormalizer) *TaskService {
	return &TaskService{db: db, tags: tags}
}

func (s *TaskService) GetTasks(ctx context.Context, userID string, req *models.TaskListRequest) ([]models.Task, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if req.Search != "" {
		pattern := likePattern(req.Search)
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	if req.Completed != nil {
		query = query.Where("completed = ?", *req.Completed)
	}
	if req.Priority != "" {
		query = query.Where("priority = ?", req.Priority)
	}

	tasks := []models.Task{}
	if err := query.Preload("Tags").Order("updated_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	for i := range tasks {
		ensureTaskTags(&tasks[i])
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, id string) (*models.Task, error) {
	return s.load(ctx, s.db, userID, id)
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, req *models.TaskCreateRequest) (*models.Task, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Progress:    req.Progress,
	}
	if task.Title == "" {
		return nil, newValidationError("title", "title is required")
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	var created *models.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(task).Error; err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		if len(req.Tags) > 0 {
			if _, err := s.tags.Normalize(ctx, tx, userID, task, req.Tags); err != nil {
				return err
			}
		}
		var err error
		created, err = s.load(ctx, tx, userID, task.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTask applies the fields present in req. Tags are replaced only when
// the request carries a tags field.
func (s *TaskService) UpdateTask(ctx context.Context, userID, id string, req *models.TaskUpdateRequest) (*models.Task, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, newValidationError("title", "title must not be empty")
		}
		updates["title"] = title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Completed != nil {
		updates["completed"] = *req.Completed
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.DueDate.Set {
		updates["due_date"] = req.DueDate.Ptr()
	}
	if req.Progress != nil {
		updates["progress"] = *req.Progress
	}

	var updated *models.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := authorize[models.Task](ctx, tx, id, userID)
		if err != nil {
			return err
		}

		if len(updates) == 0 && req.Tags != nil {
			updates["updated_at"] = tx.NowFunc()
		}
		if len(updates) > 0 {
			if err := tx.Model(task).Updates(updates).Error; err != nil {
				return fmt.Errorf("update task %s: %w", id, err)
			}
		}
		if req.Tags != nil {
			if _, err := s.tags.Normalize(ctx, tx, userID, task, *req.Tags); err != nil {
				return err
			}
		}

		updated, err = s.load(ctx, tx, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := authorize[models.Task](ctx, tx, id, userID)
		if err != nil {
			return err
		}
		if err := tx.Model(task).Association("Tags").Clear(); err != nil {
			return fmt.Errorf("clear task tags: %w", err)
		}
		if err := tx.Delete(task).Error; err != nil {
			return fmt.Errorf("delete task %s: %w", id, err)
		}
		return nil
	})
}

func (s *TaskService) load(ctx context.Context, db *gorm.DB, userID, id string) (*models.Task, error) {
	task, err := authorize[models.Task](ctx, db, id, userID, "Tags")
	if err != nil {
		return nil, err
	}
	ensureTaskTags(task)
	return task, nil
}

func ensureTaskTags(task *models.Task) {
	if task.Tags == nil {
		task.Tags = []models.Tag{}
	}
}

// likePattern builds a case-insensitive substring pattern for LOWER(col) LIKE ?.
func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}
