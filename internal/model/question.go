package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionTypeEssay          QuestionType = "ESSAY"
)

type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index"`
	Content     string         `json:"content" gorm:"type:text;not null"`
	Type        QuestionType   `json:"type" gorm:"type:varchar(32);not null"`
	Points      float64        `json:"points" gorm:"not null;default:1"`
	OrderNumber int            `json:"order_number" gorm:"not null"`
	Answers     []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Question) IsMultipleChoice() bool { return q.Type == QuestionTypeMultipleChoice }

func (q *Question) IsEssay() bool { return q.Type == QuestionTypeEssay }
