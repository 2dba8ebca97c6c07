package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserQuizService interface {
	GetQuiz(ctx context.Context, quizID uint) (*dto.QuizViewDTO, error)
}

type userQuizService struct {
	quizRepo repository.QuizRepository
}

func NewUserQuizService(quizRepo repository.QuizRepository) UserQuizService {
	return &userQuizService{quizRepo: quizRepo}
}

// GetQuiz returns a published quiz without its answer key. Unpublished quizzes read as missing.
func (s *userQuizService) GetQuiz(ctx context.Context, quizID uint) (*dto.QuizViewDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(ctx, quizID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: quiz %d", ErrNotFound, quizID)
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuiz: Failed to get quiz from repository")
		return nil, fmt.Errorf("%w: loading quiz %d: %v", ErrTransientStore, quizID, err)
	}
	if !quiz.Published {
		return nil, fmt.Errorf("%w: quiz %d", ErrNotFound, quizID)
	}

	var resp dto.QuizViewDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("GetQuiz: Failed to copy Quiz model to QuizViewDTO")
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}
