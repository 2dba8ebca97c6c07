package model

import "time"

type AttemptStatus string

const (
	AttemptStatusInProgress AttemptStatus = "IN_PROGRESS"
	AttemptStatusGraded     AttemptStatus = "GRADED"
)

// QuizAttempt is a learner's single graded submission for a quiz.
// The (user_id, quiz_id) unique index is what keeps it single under concurrent submits.
type QuizAttempt struct {
	ID          uint              `gorm:"primarykey" json:"id"`
	UserID      uint              `json:"user_id" gorm:"not null;uniqueIndex:idx_quiz_attempt_user_quiz"`
	QuizID      uint              `json:"quiz_id" gorm:"not null;uniqueIndex:idx_quiz_attempt_user_quiz;index"`
	Quiz        Quiz              `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Score       int               `json:"score" gorm:"not null;default:0"`
	Status      AttemptStatus     `json:"status" gorm:"type:varchar(16);not null;default:'IN_PROGRESS'"`
	AttemptedAt time.Time         `json:"attempted_at" gorm:"not null"`
	Answers     []SubmittedAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
