package models

import (
	"gorm.io/gorm"
)

// Interview represents one mock interview session. Score stays nil until the
// session is completed; after completion it holds the rounded mean of all
// answered question scores.
type Interview struct {
	gorm.Model
	UserID       uint   `gorm:"not null;index" json:"userId"`
	Role         string `gorm:"not null" json:"role"`
	Difficulty   string `gorm:"not null" json:"difficulty"`
	QuestionType string `gorm:"not null" json:"questionType"`
	Score        *int   `json:"score"`
	Completed    bool   `gorm:"not null;default:false" json:"completed"`
}
