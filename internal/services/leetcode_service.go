package services

import (
	"context"
	"fmt"
	"strings"

	"devdash-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LeetcodeService struct {
	db *gorm.DB
}

func NewLeetcodeService(db *gorm.DB) *LeetcodeService {
	return &LeetcodeService{db: db}
}

// GetProblems lists problems by most recent visit. The tags filter is a
// comma separated list and matches problems carrying any of them. Listing
// does not count as a visit.
func (s *LeetcodeService) GetProblems(ctx context.Context, userID string, req *models.LeetcodeListRequest) ([]models.LeetcodeProblem, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if req.Search != "" {
		pattern := likePattern(req.Search)
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(notes) LIKE ?)", pattern, pattern)
	}
	if req.Difficulty != "" {
		query = query.Where("difficulty = ?", req.Difficulty)
	}

	problems := []models.LeetcodeProblem{}
	if err := query.Order("last_visited DESC").Find(&problems).Error; err != nil {
		return nil, fmt.Errorf("list leetcode problems: %w", err)
	}

	wanted := splitTags(req.Tags)
	if len(wanted) == 0 {
		return problems, nil
	}
	filtered := make([]models.LeetcodeProblem, 0, len(problems))
	for _, p := range problems {
		if hasAnyTag(p.Tags, wanted) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetProblem returns one problem and records the visit.
func (s *LeetcodeService) GetProblem(ctx context.Context, userID, id string) (*models.LeetcodeProblem, error) {
	var problem *models.LeetcodeProblem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		problem, err = authorize[models.LeetcodeProblem](ctx, tx, id, userID)
		if err != nil {
			return err
		}
		now := tx.NowFunc()
		if err := tx.Model(problem).Update("last_visited", now).Error; err != nil {
			return fmt.Errorf("touch leetcode problem %s: %w", id, err)
		}
		problem.LastVisited = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return problem, nil
}

func (s *LeetcodeService) CreateProblem(ctx context.Context, userID string, req *models.LeetcodeCreateRequest) (*models.LeetcodeProblem, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	problem := &models.LeetcodeProblem{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Link:        strings.TrimSpace(req.Link),
		Difficulty:  req.Difficulty,
		Notes:       req.Notes,
		Tags:        cleanProblemTags(req.Tags),
		LastVisited: s.db.NowFunc(),
	}
	if problem.Title == "" {
		return nil, newValidationError("title", "title is required")
	}

	if err := s.db.WithContext(ctx).Create(problem).Error; err != nil {
		return nil, fmt.Errorf("create leetcode problem: %w", err)
	}
	return problem, nil
}

// UpdateProblem applies the fields present in req and records a visit.
func (s *LeetcodeService) UpdateProblem(ctx context.Context, userID, id string, req *models.LeetcodeUpdateRequest) (*models.LeetcodeProblem, error) {
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
	if req.Link != nil {
		updates["link"] = strings.TrimSpace(*req.Link)
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Tags != nil {
		updates["tags"] = cleanProblemTags(*req.Tags)
	}

	var updated *models.LeetcodeProblem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		problem, err := authorize[models.LeetcodeProblem](ctx, tx, id, userID)
		if err != nil {
			return err
		}
		updates["last_visited"] = tx.NowFunc()
		if err := tx.Model(problem).Updates(updates).Error; err != nil {
			return fmt.Errorf("update leetcode problem %s: %w", id, err)
		}
		updated, err = authorize[models.LeetcodeProblem](ctx, tx, id, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *LeetcodeService) DeleteProblem(ctx context.Context, userID, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		problem, err := authorize[models.LeetcodeProblem](ctx, tx, id, userID)
		if err != nil {
			return err
		}
		if err := tx.Delete(problem).Error; err != nil {
			return fmt.Errorf("delete leetcode problem %s: %w", id, err)
		}
		return nil
	})
}

func cleanProblemTags(tags []string) datatypes.JSONSlice[string] {
	out := datatypes.JSONSlice[string]{}
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func hasAnyTag(have []string, wanted []string) bool {
	for _, h := range have {
		for _, w := range wanted {
			if h == w {
				return true
			}
		}
	}
	return false
}
