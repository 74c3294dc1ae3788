package models

const DefaultFolderColor = "#10B981"

type NotesFolder struct {
	Base
	UserID string `json:"userId" gorm:"type:varchar(36);not null;index"`
	Name   string `json:"name" gorm:"size:100;not null"`
	Color  string `json:"color" gorm:"size:7;default:#10B981"`

	NoteCount int `json:"noteCount" gorm:"->;-:migration"`
}

type FolderCreateRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}
