package dto

// AnswerCreateDTO is a choice of a multiple-choice question.
type AnswerCreateDTO struct {
	AnswerText  string `json:"answer_text" validate:"required"`
	OrderNumber int    `json:"order_number" validate:"required,min=1"`
	IsCorrect   bool   `json:"is_correct"`
}

// QuestionCreateDTO is used within QuizCreateDTO.
type QuestionCreateDTO struct {
	Content     string            `json:"content" validate:"required"`
	Type        string            `json:"type" validate:"required,oneof=MULTIPLE_CHOICE ESSAY"`
	Points      float64           `json:"points" validate:"required,gt=0"`
	OrderNumber int               `json:"order_number" validate:"required,min=1"`
	Answers     []AnswerCreateDTO `json:"answers" validate:"omitempty,dive"`
}

// QuizCreateDTO is for admins creating a quiz with all its questions and answers.
type QuizCreateDTO struct {
	CourseID          uint                `json:"course_id" validate:"required"`
	Title             string              `json:"title" validate:"required,max=255"`
	Description       string              `json:"description,omitempty"`
	Published         bool                `json:"published"`
	PassingPercentage *float64            `json:"passing_percentage" validate:"omitempty,gte=0,lte=100"`
	Questions         []QuestionCreateDTO `json:"questions" validate:"required,min=1,dive"`
}
