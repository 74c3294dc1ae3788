package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"devdash-backend/internal/models"

	"gorm.io/gorm"
)

type ChatgptService struct {
	db *gorm.DB
}

func NewChatgptService(db *gorm.DB) *ChatgptService {
	return &ChatgptService{db: db}
}

// GetChats lists chats by last update.
func (s *ChatgptService) GetChats(ctx context.Context, userID string, req *models.ChatgptListRequest) ([]models.ChatgptChat, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if req.Search != "" {
		pattern := likePattern(req.Search)
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	if req.Pinned != "" {
		pinned, err := strconv.ParseBool(req.Pinned)
		if err != nil {
			return nil, newValidationError("pinned", "pinned must be true or false")
		}
		query = query.Where("is_pinned = ?", pinned)
	}

	chats := []models.ChatgptChat{}
	if err := query.Order("updated_at DESC").Find(&chats).Error; err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return chats, nil
}

func (s *ChatgptService) GetChat(ctx context.Context, userID, id string) (*models.ChatgptChat, error) {
	return authorize[models.ChatgptChat](ctx, s.db, id, userID)
}

func (s *ChatgptService) CreateChat(ctx context.Context, userID string, req *models.ChatgptCreateRequest) (*models.ChatgptChat, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	chat := &models.ChatgptChat{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Link:        strings.TrimSpace(req.Link),
		Description: req.Description,
		IsPinned:    req.IsPinned,
	}
	if chat.Title == "" {
		return nil, newValidationError("title", "title is required")
	}

	if err := s.db.WithContext(ctx).Create(chat).Error; err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return chat, nil
}

func (s *ChatgptService) UpdateChat(ctx context.Context, userID, id string, req *models.ChatgptUpdateRequest) (*models.ChatgptChat, error) {
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
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsPinned != nil {
		updates["is_pinned"] = *req.IsPinned
	}

	var updated *models.ChatgptChat
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		chat, err := authorize[models.ChatgptChat](ctx, tx, id, userID)
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(chat).Updates(updates).Error; err != nil {
				return fmt.Errorf("update chat %s: %w", id, err)
			}
		}
		updated, err = authorize[models.ChatgptChat](ctx, tx, id, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ChatgptService) DeleteChat(ctx context.Context, userID, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		chat, err := authorize[models.ChatgptChat](ctx, tx, id, userID)
		if err != nil {
			return err
		}
		if err := tx.Delete(chat).Error; err != nil {
			return fmt.Errorf("delete chat %s: %w", id, err)
		}
		return nil
	})
}
