package model

import "time"

type ModuleProgress struct {
	ID               uint `gorm:"primarykey" json:"id"`
	UserID           uint `json:"user_id" gorm:"not null;uniqueIndex:idx_module_progress_user_module"`
	ModuleID         uint `json:"module_id" gorm:"not null;uniqueIndex:idx_module_progress_user_module;index"`
	ContentCompleted bool `json:"content_completed" gorm:"not null;default:false"`
	VideoCompleted   bool `json:"video_completed" gorm:"not null;default:false"`
	TestCompleted    bool `json:"test_completed" gorm:"not null;default:false"`
	// Maintained by the database, never written by the application.
	ModuleCompleted bool      `json:"module_completed" gorm:"->;type:boolean GENERATED ALWAYS AS (content_completed AND video_completed AND test_completed) STORED"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Progress flag column names accepted by the tracker.
const (
	ProgressColumnContent = "content_completed"
	ProgressColumnVideo   = "video_completed"
	ProgressColumnTest    = "test_completed"
)
