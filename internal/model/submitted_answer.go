package model

import "time"

// SubmittedAnswer is one resolved answer of an attempt. IsCorrect is NULL while the
// answer waits for manual grading.
type SubmittedAnswer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	AttemptID  uint      `json:"attempt_id" gorm:"not null;index"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerID   *uint     `json:"answer_id,omitempty" gorm:"index"`
	Answer     *Answer   `json:"answer,omitempty" gorm:"foreignKey:AnswerID"`
	AnswerText *string   `json:"answer_text,omitempty" gorm:"type:text"`
	IsCorrect  *bool     `json:"is_correct"`
	LinkAnswer *string   `json:"link_answer,omitempty" gorm:"type:text"`
	FileName   *string   `json:"file_name,omitempty"`
	FilePath   *string   `json:"file_path,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *SubmittedAnswer) PendingReview() bool { return a.IsCorrect == nil }
