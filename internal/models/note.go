package models

import "time"

type Note struct {
	Base
	UserID    string    `json:"userId" gorm:"type:varchar(36);not null;index"`
	FolderID  *string   `json:"folderId" gorm:"type:varchar(36);index"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"index"`

	Folder *NotesFolder `json:"folder" gorm:"foreignKey:FolderID;constraint:OnDelete:SET NULL"`
	Tags   []Tag        `json:"tags" gorm:"many2many:note_tags;"`

	ContentHTML string `json:"contentHtml,omitempty" gorm:"-"`
}

type NoteCreateRequest struct {
	Title    string   `json:"title" validate:"required,max=255"`
	Content  string   `json:"content"`
	FolderID *string  `json:"folderId"`
	Tags     []string `json:"tags" validate:"dive,max=50"`
}

// NoteUpdateRequest replaces the tag set on every update; other fields are partial.
type NoteUpdateRequest struct {
	Title    *string          `json:"title" validate:"omitempty,min=1,max=255"`
	Content  *string          `json:"content"`
	FolderID Optional[string] `json:"folderId"`
	Tags     []string         `json:"tags" validate:"dive,max=50"`
}

type NoteListRequest struct {
	Search   string `form:"search"`
	FolderID string `form:"folderId"`
}

// NoteSummary is the dashboard projection of a note.
type NoteSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updatedAt"`
}
