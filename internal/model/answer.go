package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is one stored choice of a multiple-choice question.
type Answer struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuestionID  uint           `json:"question_id" gorm:"not null;index"`
	AnswerText  string         `json:"answer_text" gorm:"type:text;not null"`
	OrderNumber int            `json:"order_number" gorm:"not null"`
	IsCorrect   bool           `json:"is_correct" gorm:"not null;default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
