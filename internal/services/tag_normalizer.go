package services

import (
	"context"
	"fmt"
	"strings"

	"devdash-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagNormalizer resolves free-text tag names to the caller's Tag rows,
// creating missing ones, and replaces an entity's tag set with the result.
type TagNormalizer struct{}

func NewTagNormalizer() *TagNormalizer {
	return &TagNormalizer{}
}

// CleanTagNames trims names, drops blanks and keeps the first occurrence of duplicates.
func CleanTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, name)
	}
	return cleaned
}

// Resolve returns one Tag per cleaned name, in input order.
func (n *TagNormalizer) Resolve(ctx context.Context, tx *gorm.DB, userID string, names []string) ([]models.Tag, error) {
	cleaned := CleanTagNames(names)
	if len(cleaned) == 0 {
		return []models.Tag{}, nil
	}

	byName, err := n.lookup(ctx, tx, userID, cleaned)
	if err != nil {
		return nil, err
	}

	var missing []models.Tag
	for _, name := range cleaned {
		if _, ok := byName[name]; !ok {
			missing = append(missing, models.Tag{UserID: userID, Name: name, Color: models.DefaultTagColor})
		}
	}

	if len(missing) > 0 {
		// a concurrent save may have created some of these already
		err := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&missing).Error
		if err != nil {
			return nil, fmt.Errorf("create tags: %w", err)
		}
		if byName, err = n.lookup(ctx, tx, userID, cleaned); err != nil {
			return nil, err
		}
	}

	tags := make([]models.Tag, 0, len(cleaned))
	for _, name := range cleaned {
		tag, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("tag %q missing after create", name)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (n *TagNormalizer) lookup(ctx context.Context, tx *gorm.DB, userID string, names []string) (map[string]models.Tag, error) {
	var existing []models.Tag
	if err := tx.WithContext(ctx).Where("user_id = ? AND name IN ?", userID, names).Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("lookup tags: %w", err)
	}
	byName := make(map[string]models.Tag, len(existing))
	for _, tag := range existing {
		byName[tag.Name] = tag
	}
	return byName, nil
}

// Normalize replaces owner's Tags association with the resolved set in a
// single write. owner must be a loaded *models.Task or *models.Note and tx
// should be the caller's save transaction.
func (n *TagNormalizer) Normalize(ctx context.Context, tx *gorm.DB, userID string, owner interface{}, names []string) ([]models.Tag, error) {
	tags, err := n.Resolve(ctx, tx, userID, names)
	if err != nil {
		return nil, err
	}

	assoc := tx.WithContext(ctx).Model(owner).Association("Tags")
	if len(tags) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(tags)
	}
	if err != nil {
		return nil, fmt.Errorf("replace tags: %w", err)
	}
	return tags, nil
}
