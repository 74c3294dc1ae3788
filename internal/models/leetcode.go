package models

import (
	"time"

	"gorm.io/datatypes"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// LeetcodeProblem keeps its tags as a plain string list, separate from Tag records.
type LeetcodeProblem struct {
	Base
	UserID      string                      `json:"userId" gorm:"type:varchar(36);not null;index"`
	Title       string                      `json:"title" gorm:"size:255;not null"`
	Link        string                      `json:"link" gorm:"size:500;not null"`
	Difficulty  Difficulty                  `json:"difficulty" gorm:"size:10;not null"`
	Notes       string                      `json:"notes" gorm:"type:text"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	LastVisited time.Time                   `json:"lastVisited" gorm:"index"`
}

func (LeetcodeProblem) TableName() string {
	return "leetcode_problems"
}

type LeetcodeCreateRequest struct {
	Title      string     `json:"title" validate:"required,max=255"`
	Link       string     `json:"link" validate:"required,url,max=500"`
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
	Notes      string     `json:"notes"`
	Tags       []string   `json:"tags"`
}

type LeetcodeUpdateRequest struct {
	Title      *string     `json:"title" validate:"omitempty,min=1,max=255"`
	Link       *string     `json:"link" validate:"omitempty,url,max=500"`
	Difficulty *Difficulty `json:"difficulty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
	Notes      *string     `json:"notes"`
	Tags       *[]string   `json:"tags"`
}

type LeetcodeListRequest struct {
	Search     string `form:"search"`
	Difficulty string `form:"difficulty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
	Tags       string `form:"tags"`
}

type LeetcodeExtractRequest struct {
	URL string `json:"url"`
}

// ProblemMetadata is the best-effort result of scraping a problem page.
type ProblemMetadata struct {
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
	Tags       []string   `json:"tags"`
	URL        string     `json:"url"`
	Fallback   bool       `json:"fallback,omitempty"`
}
