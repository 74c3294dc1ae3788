package models

import "time"

const DefaultTagColor = "#6B7280"

// Tag is shared by tasks and notes; (user_id, name) is unique.
type Tag struct {
	Base
	UserID string `json:"userId" gorm:"type:varchar(36);not null;uniqueIndex:idx_tags_user_name"`
	Name   string `json:"name" gorm:"size:50;not null;uniqueIndex:idx_tags_user_name"`
	Color  string `json:"color" gorm:"size:7;default:#6B7280"`
}

// TagWithCount is the tag list projection with usage counts.
type TagWithCount struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	TaskCount int       `json:"taskCount"`
	NoteCount int       `json:"noteCount"`
}
