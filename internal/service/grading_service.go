package service

import (
	"math"

	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/model"
)

// GradingService computes quiz results from stored answers. It has no side effects,
// so replaying it over the same answers always yields the same result.
type GradingService interface {
	Grade(quiz model.Quiz, attempt model.QuizAttempt, answers []model.SubmittedAnswer) dto.QuizResultDTO
}

type gradingService struct{}

func NewGradingService() GradingService {
	return &gradingService{}
}

func (s *gradingService) Grade(quiz model.Quiz, attempt model.QuizAttempt, answers []model.SubmittedAnswer) dto.QuizResultDTO {
	result := dto.QuizResultDTO{
		AttemptID:   attempt.ID,
		QuizID:      attempt.QuizID,
		QuizTitle:   quiz.Title,
		UserID:      attempt.UserID,
		AttemptedAt: attempt.AttemptedAt,
		Questions:   make([]dto.QuestionResultDTO, 0, len(answers)),
	}

	for i := range answers {
		ans := &answers[i]
		points := ans.Question.Points
		line := dto.QuestionResultDTO{
			QuestionID:       ans.QuestionID,
			QuestionContent:  ans.Question.Content,
			QuestionType:     string(ans.Question.Type),
			Points:           points,
			SelectedAnswerID: ans.AnswerID,
			SubmittedValue:   submittedValue(ans),
			LinkAnswer:       ans.LinkAnswer,
			FileName:         ans.FileName,
			IsCorrect:        ans.IsCorrect,
			PendingReview:    ans.PendingReview(),
		}

		result.TotalPoints += points
		switch {
		case ans.IsCorrect == nil:
			result.PendingManualReview++
		case *ans.IsCorrect:
			result.EarnedPoints += points
			line.EarnedPoints = points
		}
		result.Questions = append(result.Questions, line)
	}

	result.Percentage = percentage(result.EarnedPoints, result.TotalPoints)
	result.Passed = result.TotalPoints > 0 && result.Percentage >= quiz.PassingPercentage
	return result
}

// RoundedScore is the integer score stored on an attempt.
func RoundedScore(earnedPoints float64) int {
	return int(math.Round(earnedPoints))
}

func percentage(earned, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(earned/total*100*100) / 100
}

// submittedValue summarises what the learner sent for the breakdown.
func submittedValue(ans *model.SubmittedAnswer) string {
	switch {
	case ans.Answer != nil:
		return ans.Answer.AnswerText
	case ans.AnswerText != nil && *ans.AnswerText != "":
		return *ans.AnswerText
	case ans.LinkAnswer != nil:
		return *ans.LinkAnswer
	case ans.FileName != nil:
		return *ans.FileName
	default:
		return ""
	}
}
