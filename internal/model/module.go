package model

import (
	"time"

	"gorm.io/gorm"
)

// Module is owned by course administration; this service only reads it.
type Module struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CourseID    uint           `json:"course_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	OrderNumber int            `json:"order_number" gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
