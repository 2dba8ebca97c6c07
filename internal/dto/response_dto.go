package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// QuestionResultDTO is one line of the per-question breakdown.
type QuestionResultDTO struct {
	QuestionID       uint    `json:"question_id"`
	QuestionContent  string  `json:"question_content"`
	QuestionType     string  `json:"question_type"`
	Points           float64 `json:"points"`
	EarnedPoints     float64 `json:"earned_points"`
	SelectedAnswerID *uint   `json:"selected_answer_id,omitempty"`
	SubmittedValue   string  `json:"submitted_value"`
	LinkAnswer       *string `json:"link_answer,omitempty"`
	FileName         *string `json:"file_name,omitempty"`
	IsCorrect        *bool   `json:"is_correct"`
	PendingReview    bool    `json:"pending_review"`
}

// QuizResultDTO is the grading result of an attempt.
type QuizResultDTO struct {
	AttemptID           uint                `json:"attempt_id"`
	QuizID              uint                `json:"quiz_id"`
	QuizTitle           string              `json:"quiz_title,omitempty"`
	UserID              uint                `json:"user_id"`
	AttemptedAt         time.Time           `json:"attempted_at"`
	EarnedPoints        float64             `json:"earned_points"`
	TotalPoints         float64             `json:"total_points"`
	Percentage          float64             `json:"percentage"`
	Passed              bool                `json:"passed"`
	PendingManualReview int                 `json:"pending_manual_review"`
	Questions           []QuestionResultDTO `json:"questions"`
}

type SubmissionStatusDTO struct {
	QuizID       uint  `json:"quiz_id"`
	HasSubmitted bool  `json:"has_submitted"`
	AttemptCount int64 `json:"attempt_count"`
}

type ModuleProgressDTO struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"user_id"`
	ModuleID         uint      `json:"module_id"`
	ContentCompleted bool      `json:"content_completed"`
	VideoCompleted   bool      `json:"video_completed"`
	TestCompleted    bool      `json:"test_completed"`
	ModuleCompleted  bool      `json:"module_completed"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TestUnlockDTO struct {
	Unlocked bool `json:"unlocked"`
}

type ModuleCompletionDTO struct {
	ModuleID  uint `json:"module_id"`
	Completed bool `json:"completed"`
}

// EssayReviewDTO is an advisory suggestion; nothing about the attempt changes.
type EssayReviewDTO struct {
	SubmittedAnswerID uint    `json:"submitted_answer_id"`
	QuestionID        uint    `json:"question_id"`
	MaxPoints         float64 `json:"max_points"`
	SuggestedPoints   float64 `json:"suggested_points"`
	Feedback          string  `json:"feedback"`
}
