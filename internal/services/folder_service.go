package services

import (
	"context"
	"fmt"
	"strings"

	"devdash-backend/internal/models"

	"gorm.io/gorm"
)

type FolderService struct {
	db *gorm.DB
}

func NewFolderService(db *gorm.DB) *FolderService {
	return &FolderService{db: db}
}

// GetFolders lists the caller's folders, newest first, with their note counts.
func (s *FolderService) GetFolders(ctx context.Context, userID string) ([]models.NotesFolder, error) {
	folders := []models.NotesFolder{}
	err := s.db.WithContext(ctx).Model(&models.NotesFolder{}).
		Select("notes_folders.*, (SELECT COUNT(*) FROM notes WHERE notes.folder_id = notes_folders.id) AS note_count").
		Where("notes_folders.user_id = ?", userID).
		Order("notes_folders.created_at DESC").
		Find(&folders).Error
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

func (s *FolderService) CreateFolder(ctx context.Context, userID string, req *models.FolderCreateRequest) (*models.NotesFolder, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	folder := &models.NotesFolder{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
		Color:  req.Color,
	}
	if folder.Name == "" {
		return nil, newValidationError("name", "name is required")
	}
	if folder.Color == "" {
		folder.Color = models.DefaultFolderColor
	}

	if err := s.db.WithContext(ctx).Create(folder).Error; err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	return folder, nil
}
