package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/model"
	"github.com/lshigami/Coursegate/internal/repository"
	"github.com/rs/zerolog/log"
)

const defaultPassingPercentage = 50.0

// QuizValidationError lists every problem found in a quiz definition.
type QuizValidationError struct {
	Problems []string
}

func (e *QuizValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidQuiz.Error(), strings.Join(e.Problems, "; "))
}

func (e *QuizValidationError) Unwrap() error { return ErrInvalidQuiz }

type AdminQuizService interface {
	CreateQuiz(ctx context.Context, req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error)
	SetPublished(ctx context.Context, quizID uint, published bool) error
}

type adminQuizService struct {
	quizRepo repository.QuizRepository
	validate *validator.Validate
}

func NewAdminQuizService(quizRepo repository.QuizRepository) AdminQuizService {
	return &adminQuizService{
		quizRepo: quizRepo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *adminQuizService) CreateQuiz(ctx context.Context, req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error) {
	if problems := s.validateQuiz(req); len(problems) > 0 {
		log.Warn().Str("title", req.Title).Strs("problems", problems).Msg("CreateQuiz: Rejected quiz definition")
		return nil, &QuizValidationError{Problems: problems}
	}

	passing := defaultPassingPercentage
	if req.PassingPercentage != nil {
		passing = *req.PassingPercentage
	}
	quiz := model.Quiz{
		CourseID:          req.CourseID,
		Title:             req.Title,
		Description:       req.Description,
		Published:         req.Published,
		PassingPercentage: passing,
	}
	for _, qDto := range req.Questions {
		question := model.Question{
			Content:     qDto.Content,
			Type:        model.QuestionType(qDto.Type),
			Points:      qDto.Points,
			OrderNumber: qDto.OrderNumber,
		}
		for _, aDto := range qDto.Answers {
			question.Answers = append(question.Answers, model.Answer{
				AnswerText:  aDto.AnswerText,
				OrderNumber: aDto.OrderNumber,
				IsCorrect:   aDto.IsCorrect,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.quizRepo.Create(ctx, &quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateQuiz: Failed to create quiz in database")
		return nil, fmt.Errorf("%w: creating quiz: %v", ErrTransientStore, err)
	}

	created, err := s.quizRepo.FindByIDWithQuestions(ctx, quiz.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("CreateQuiz: Failed to reload created quiz, answering from the in-memory copy")
		created = &quiz
	}

	var resp dto.QuizDetailDTO
	if err := copier.Copy(&resp, created); err != nil {
		log.Error().Err(err).Msg("CreateQuiz: Failed to copy Quiz model to QuizDetailDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	log.Info().Uint("quizID", quiz.ID).Int("questions", len(quiz.Questions)).Msg("CreateQuiz: Quiz created")
	return &resp, nil
}

func (s *adminQuizService) SetPublished(ctx context.Context, quizID uint, published bool) error {
	if err := s.quizRepo.SetPublished(ctx, quizID, published); err != nil {
		if repository.IsNotFound(err) {
			return fmt.Errorf("%w: quiz %d", ErrNotFound, quizID)
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("SetPublished: Failed to update quiz")
		return fmt.Errorf("%w: publishing quiz %d: %v", ErrTransientStore, quizID, err)
	}
	log.Info().Uint("quizID", quizID).Bool("published", published).Msg("SetPublished: Quiz updated")
	return nil
}

// validateQuiz runs the tag rules first, then the rules that span several fields.
func (s *adminQuizService) validateQuiz(req dto.QuizCreateDTO) []string {
	var problems []string
	if err := s.validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return []string{err.Error()}
		}
		for _, fe := range ve {
			problems = append(problems, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
		}
		return problems
	}

	questionOrders := make(map[int]bool, len(req.Questions))
	for i, q := range req.Questions {
		if questionOrders[q.OrderNumber] {
			problems = append(problems, fmt.Sprintf("questions[%d]: duplicate order_number %d", i, q.OrderNumber))
		}
		questionOrders[q.OrderNumber] = true

		switch model.QuestionType(q.Type) {
		case model.QuestionTypeEssay:
			if len(q.Answers) > 0 {
				problems = append(problems, fmt.Sprintf("questions[%d]: essay questions take no answers", i))
			}
		case model.QuestionTypeMultipleChoice:
			answerOrders := make(map[int]bool, len(q.Answers))
			correct := 0
			for j, a := range q.Answers {
				if answerOrders[a.OrderNumber] {
					problems = append(problems, fmt.Sprintf("questions[%d].answers[%d]: duplicate order_number %d", i, j, a.OrderNumber))
				}
				answerOrders[a.OrderNumber] = true
				if a.IsCorrect {
					correct++
				}
			}
			if correct != 1 {
				problems = append(problems, fmt.Sprintf("questions[%d]: needs exactly one correct answer, has %d", i, correct))
			}
		}
	}
	return problems
}
