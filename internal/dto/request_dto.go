package dto

// AnswerSubmissionDTO is one submitted answer. Fields may be combined; the resolver
// decides which one wins.
type AnswerSubmissionDTO struct {
	QuestionID    uint    `json:"question_id" binding:"required"`
	AnswerID      *uint   `json:"answer_id"`
	SelectedIndex *int    `json:"selected_index"`
	AnswerText    *string `json:"answer_text"`
	LinkAnswer    *string `json:"link_answer"`
	FileName      *string `json:"file_name"`
	FilePath      *string `json:"file_path"`
}

// ExamSubmissionDTO is the body of POST /exam/submit.
type ExamSubmissionDTO struct {
	QuizID  uint                  `json:"quiz_id" binding:"required"`
	Answers []AnswerSubmissionDTO `json:"answers" binding:"required,min=1,dive"`
}

// ProgressUpdateDTO is the body of the module-progress update routes.
type ProgressUpdateDTO struct {
	Completed *bool `json:"completed" binding:"required"`
}

// PublishQuizDTO toggles learner visibility of a quiz.
type PublishQuizDTO struct {
	Published *bool `json:"published" binding:"required"`
}
