package dto

import "time"

// AnswerOptionDTO is a choice as learners see it: no correctness flag.
type AnswerOptionDTO struct {
	ID          uint   `json:"id"`
	AnswerText  string `json:"answer_text"`
	OrderNumber int    `json:"order_number"`
}

// AnswerDetailDTO is a choice as authors see it.
type AnswerDetailDTO struct {
	ID          uint   `json:"id"`
	AnswerText  string `json:"answer_text"`
	OrderNumber int    `json:"order_number"`
	IsCorrect   bool   `json:"is_correct"`
}

type QuestionViewDTO struct {
	ID          uint              `json:"id"`
	Content     string            `json:"content"`
	Type        string            `json:"type"`
	Points      float64           `json:"points"`
	OrderNumber int               `json:"order_number"`
	Answers     []AnswerOptionDTO `json:"answers,omitempty"`
}

// QuizViewDTO is what a learner receives before taking a quiz.
type QuizViewDTO struct {
	ID                uint              `json:"id"`
	CourseID          uint              `json:"course_id"`
	Title             string            `json:"title"`
	Description       string            `json:"description,omitempty"`
	PassingPercentage float64           `json:"passing_percentage"`
	Questions         []QuestionViewDTO `json:"questions"`
}

type QuestionDetailDTO struct {
	ID          uint              `json:"id"`
	Content     string            `json:"content"`
	Type        string            `json:"type"`
	Points      float64           `json:"points"`
	OrderNumber int               `json:"order_number"`
	Answers     []AnswerDetailDTO `json:"answers,omitempty"`
}

// QuizDetailDTO is returned to admins after authoring operations.
type QuizDetailDTO struct {
	ID                uint                `json:"id"`
	CourseID          uint                `json:"course_id"`
	Title             string              `json:"title"`
	Description       string              `json:"description,omitempty"`
	Published         bool                `json:"published"`
	PassingPercentage float64             `json:"passing_percentage"`
	Questions         []QuestionDetailDTO `json:"questions"`
	CreatedAt         time.Time           `json:"created_at"`
}
