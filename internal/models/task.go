package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

type Task struct {
	Base
	UserID      string     `json:"userId" gorm:"type:varchar(36);not null;index"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Completed   bool       `json:"completed" gorm:"not null;default:false"`
	Priority    Priority   `json:"priority" gorm:"size:10;not null;default:MEDIUM"`
	DueDate     *time.Time `json:"dueDate" gorm:"index"`
	Progress    int        `json:"progress" gorm:"not null;default:0"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"index"`

	Tags []Tag `json:"tags" gorm:"many2many:task_tags;"`
}

type TaskCreateRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	DueDate     *time.Time `json:"dueDate"`
	Progress    int        `json:"progress" validate:"min=0,max=100"`
	Tags        []string   `json:"tags" validate:"dive,max=50"`
}

// TaskUpdateRequest carries only the fields present in the body.
type TaskUpdateRequest struct {
	Title       *string             `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string             `json:"description"`
	Completed   *bool               `json:"completed"`
	Priority    *Priority           `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	DueDate     Optional[time.Time] `json:"dueDate"`
	Progress    *int                `json:"progress" validate:"omitempty,min=0,max=100"`
	Tags        *[]string           `json:"tags" validate:"omitempty,dive,max=50"`
}

type TaskListRequest struct {
	Search    string `form:"search"`
	Completed *bool  `form:"completed"`
	Priority  string `form:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}
