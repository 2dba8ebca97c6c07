package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	CourseID          uint           `json:"course_id" gorm:"not null;index"`
	Title             string         `json:"title" gorm:"not null"`
	Description       string         `json:"description,omitempty" gorm:"type:text"`
	Published         bool           `json:"published" gorm:"not null;default:false"`
	PassingPercentage float64        `json:"passing_percentage" gorm:"not null;default:50"`
	Questions         []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
