package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// authorize loads entity id only when it belongs to userID. The id and owner
// are matched in a single query so a foreign id and a missing id both
// come back as ErrNotFound.
func authorize[T any](ctx context.Context, db *gorm.DB, id, userID string, preloads ...string) (*T, error) {
	var entity T
	query := db.WithContext(ctx)
	for _, rel := range preloads {
		query = query.Preload(rel)
	}
	err := query.Where("id = ? AND user_id = ?", id, userID).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %T %s: %w", entity, id, err)
	}
	return &entity, nil
}
