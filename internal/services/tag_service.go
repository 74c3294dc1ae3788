package services

import (
	"context"
	"fmt"

	"devdash-backend/internal/models"

	"gorm.io/gorm"
)

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// GetTags lists the caller's tags by name with the number of tasks and notes using each.
func (s *TagService) GetTags(ctx context.Context, userID string) ([]models.TagWithCount, error) {
	tags := []models.TagWithCount{}
	err := s.db.WithContext(ctx).Table("tags").
		Select(`tags.id, tags.name, tags.color, tags.created_at,
			(SELECT COUNT(*) FROM task_tags WHERE task_tags.tag_id = tags.id) AS task_count,
			(SELECT COUNT(*) FROM note_tags WHERE note_tags.tag_id = tags.id) AS note_count`).
		Where("tags.user_id = ?", userID).
		Order("tags.name ASC").
		Scan(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
