package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"devdash-backend/internal/models"
	"devdash-backend/pkg/markdown"

	"gorm.io/gorm"
)

type NoteService struct {
	db       *gorm.DB
	tags     *TagNormalizer
	renderer *markdown.Renderer
}

func NewNoteService(db *gorm.DB, tags *TagNormalizer, renderer *markdown.Renderer) *NoteService {
	return &NoteService{db: db, tags: tags, renderer: renderer}
}

func (s *NoteService) GetNotes(ctx context.Context, userID string, req *models.NoteListRequest) ([]models.Note, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if req.Search != "" {
		pattern := likePattern(req.Search)
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(content) LIKE ?)", pattern, pattern)
	}
	if req.FolderID != "" {
		query = query.Where("folder_id = ?", req.FolderID)
	}

	notes := []models.Note{}
	err := query.Preload("Folder").Preload("Tags").Order("updated_at DESC").Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	for i := range notes {
		ensureNoteTags(&notes[i])
	}
	return notes, nil
}

// GetNote returns one note. With renderHTML the markdown content is also
// rendered into ContentHTML.
func (s *NoteService) GetNote(ctx context.Context, userID, id string, renderHTML bool) (*models.Note, error) {
	note, err := s.load(ctx, s.db, userID, id)
	if err != nil {
		return nil, err
	}
	if renderHTML {
		html, err := s.renderer.Render(note.Content)
		if err != nil {
			return nil, fmt.Errorf("render note %s: %w", id, err)
		}
		note.ContentHTML = html
	}
	return note, nil
}

func (s *NoteService) CreateNote(ctx context.Context, userID string, req *models.NoteCreateRequest) (*models.Note, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	note := &models.Note{
		UserID:  userID,
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
	}
	if note.Title == "" {
		return nil, newValidationError("title", "title is required")
	}
	if req.FolderID != nil && *req.FolderID != "" {
		folderID := *req.FolderID
		note.FolderID = &folderID
	}

	var created *models.Note
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if note.FolderID != nil {
			if err := s.checkFolder(ctx, tx, userID, *note.FolderID); err != nil {
				return err
			}
		}
		if err := tx.Omit("Folder", "Tags").Create(note).Error; err != nil {
			return fmt.Errorf("create note: %w", err)
		}
		if len(req.Tags) > 0 {
			if _, err := s.tags.Normalize(ctx, tx, userID, note, req.Tags); err != nil {
				return err
			}
		}
		var err error
		created, err = s.load(ctx, tx, userID, note.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateNote applies the scalar fields present in req and always replaces
// the tag set, so a missing tags field clears it.
func (s *NoteService) UpdateNote(ctx context.Context, userID, id string, req *models.NoteUpdateRequest) (*models.Note, error) {
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
	if req.Content != nil {
		updates["content"] = *req.Content
	}

	var updated *models.Note
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		note, err := authorize[models.Note](ctx, tx, id, userID)
		if err != nil {
			return err
		}

		if req.FolderID.Set {
			if !req.FolderID.Valid || req.FolderID.Value == "" {
				updates["folder_id"] = nil
			} else {
				if err := s.checkFolder(ctx, tx, userID, req.FolderID.Value); err != nil {
					return err
				}
				updates["folder_id"] = req.FolderID.Value
			}
		}
		if len(updates) == 0 {
			updates["updated_at"] = tx.NowFunc()
		}
		if err := tx.Model(note).Omit("Folder", "Tags").Updates(updates).Error; err != nil {
			return fmt.Errorf("update note %s: %w", id, err)
		}
		if _, err := s.tags.Normalize(ctx, tx, userID, note, req.Tags); err != nil {
			return err
		}

		updated, err = s.load(ctx, tx, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, userID, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		note, err := authorize[models.Note](ctx, tx, id, userID)
		if err != nil {
			return err
		}
		if err := tx.Model(note).Association("Tags").Clear(); err != nil {
			return fmt.Errorf("clear note tags: %w", err)
		}
		if err := tx.Delete(note).Error; err != nil {
			return fmt.Errorf("delete note %s: %w", id, err)
		}
		return nil
	})
}

// checkFolder rejects folder ids the caller does not own.
func (s *NoteService) checkFolder(ctx context.Context, tx *gorm.DB, userID, folderID string) error {
	_, err := authorize[models.NotesFolder](ctx, tx, folderID, userID)
	if errors.Is(err, ErrNotFound) {
		return newValidationError("folderId", "folder %s does not exist", folderID)
	}
	return err
}

func (s *NoteService) load(ctx context.Context, db *gorm.DB, userID, id string) (*models.Note, error) {
	note, err := authorize[models.Note](ctx, db, id, userID, "Folder", "Tags")
	if err != nil {
		return nil, err
	}
	ensureNoteTags(note)
	return note, nil
}

func ensureNoteTags(note *models.Note) {
	if note.Tags == nil {
		note.Tags = []models.Tag{}
	}
}
