package models

import "time"

type ChatgptChat struct {
	Base
	UserID      string    `json:"userId" gorm:"type:varchar(36);not null;index"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Link        string    `json:"link" gorm:"size:500;not null"`
	Description string    `json:"description" gorm:"type:text"`
	IsPinned    bool      `json:"isPinned" gorm:"not null;default:false;index"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"index"`
}

func (ChatgptChat) TableName() string {
	return "chatgpt_chats"
}

type ChatgptCreateRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Link        string `json:"link" validate:"required,url,max=500"`
	Description string `json:"description"`
	IsPinned    bool   `json:"isPinned"`
}

type ChatgptUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Link        *string `json:"link" validate:"omitempty,url,max=500"`
	Description *string `json:"description"`
	IsPinned    *bool   `json:"isPinned"`
}

type ChatgptListRequest struct {
	Search string `form:"search"`
	Pinned string `form:"pinned"`
}
