package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/model"
	"github.com/lshigami/Coursegate/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamSubmissionService defines the quiz submission workflow and its read side.
type ExamSubmissionService interface {
	SubmitExam(ctx context.Context, learnerID uint, req dto.ExamSubmissionDTO) (*dto.QuizResultDTO, error)
	HasSubmitted(ctx context.Context, learnerID, quizID uint) dto.SubmissionStatusDTO
	GetResult(ctx context.Context, learnerID, quizID uint) (*dto.QuizResultDTO, error)
}

type examSubmissionService struct {
	quizRepo            repository.QuizRepository
	questionRepo        repository.QuestionRepository
	answerRepo          repository.AnswerRepository
	attemptRepo         repository.QuizAttemptRepository
	submittedAnswerRepo repository.SubmittedAnswerRepository
	resolver            AnswerResolver
	grader              GradingService
	db                  *gorm.DB // Used for the submission transaction
}

// NewExamSubmissionService creates a new instance of ExamSubmissionService.
func NewExamSubmissionService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	attemptRepo repository.QuizAttemptRepository,
	submittedAnswerRepo repository.SubmittedAnswerRepository,
	resolver AnswerResolver,
	grader GradingService,
	db *gorm.DB,
) ExamSubmissionService {
	return &examSubmissionService{
		quizRepo:            quizRepo,
		questionRepo:        questionRepo,
		answerRepo:          answerRepo,
		attemptRepo:         attemptRepo,
		submittedAnswerRepo: submittedAnswerRepo,
		resolver:            resolver,
		grader:              grader,
		db:                  db,
	}
}

// SubmitExam records and grades a learner's single attempt at a quiz.
// Attempt creation, every answer insert and the score update commit together or not at all.
func (s *examSubmissionService) SubmitExam(ctx context.Context, learnerID uint, req dto.ExamSubmissionDTO) (*dto.QuizResultDTO, error) {
	if err := checkDistinctQuestions(req.Answers); err != nil {
		log.Warn().Err(err).Uint("learnerID", learnerID).Uint("quizID", req.QuizID).Msg("SubmitExam: Rejected malformed submission")
		return nil, err
	}

	quiz, err := s.quizRepo.FindByID(ctx, req.QuizID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: quiz %d does not exist", ErrReferenceNotFound, req.QuizID)
		}
		log.Error().Err(err).Uint("quizID", req.QuizID).Msg("SubmitExam: Failed to load quiz")
		return nil, fmt.Errorf("%w: loading quiz %d: %v", ErrTransientStore, req.QuizID, err)
	}

	// Cheap early rejection; the unique index below is what actually guarantees a single attempt.
	if _, err := s.attemptRepo.FindByUserAndQuiz(ctx, learnerID, quiz.ID); err == nil {
		log.Info().Uint("learnerID", learnerID).Uint("quizID", quiz.ID).Msg("SubmitExam: Rejected duplicate submission")
		return nil, ErrAlreadySubmitted
	} else if !repository.IsNotFound(err) {
		log.Error().Err(err).Uint("learnerID", learnerID).Uint("quizID", quiz.ID).Msg("SubmitExam: Duplicate check failed")
		return nil, fmt.Errorf("%w: checking previous attempts: %v", ErrTransientStore, err)
	}

	var result dto.QuizResultDTO
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempts := s.attemptRepo.WithTx(tx)
		questions := s.questionRepo.WithTx(tx)
		answers := s.answerRepo.WithTx(tx)
		submitted := s.submittedAnswerRepo.WithTx(tx)

		attempt := model.QuizAttempt{
			UserID:      learnerID,
			QuizID:      quiz.ID,
			Score:       0,
			Status:      model.AttemptStatusInProgress,
			AttemptedAt: time.Now(),
		}
		if err := attempts.Create(ctx, &attempt); err != nil {
			if repository.IsDuplicateKey(err) {
				return ErrAlreadySubmitted
			}
			return fmt.Errorf("failed to create quiz attempt record: %w", err)
		}

		resolved := make([]model.SubmittedAnswer, 0, len(req.Answers))
		for _, payload := range req.Answers {
			question, err := questions.FindByID(ctx, payload.QuestionID)
			if err != nil {
				if repository.IsNotFound(err) {
					return fmt.Errorf("%w: question %d does not exist", ErrReferenceNotFound, payload.QuestionID)
				}
				return fmt.Errorf("failed to load question %d: %w", payload.QuestionID, err)
			}
			if question.QuizID != quiz.ID {
				return fmt.Errorf("%w: question %d is not part of quiz %d", ErrReferenceNotFound, question.ID, quiz.ID)
			}

			answer, err := s.resolver.Resolve(ctx, question, payload, answers)
			if err != nil {
				return err
			}
			answer.AttemptID = attempt.ID
			if err := submitted.Create(ctx, answer); err != nil {
				return fmt.Errorf("failed to save answer for question %d: %w", question.ID, err)
			}
			resolved = append(resolved, *answer)
		}

		result = s.grader.Grade(*quiz, attempt, resolved)

		if err := attempts.UpdateScore(ctx, attempt.ID, RoundedScore(result.EarnedPoints), model.AttemptStatusGraded); err != nil {
			return fmt.Errorf("failed to update attempt score: %w", err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadySubmitted):
			log.Info().Uint("learnerID", learnerID).Uint("quizID", quiz.ID).Msg("SubmitExam: Concurrent duplicate submission rejected")
			return nil, ErrAlreadySubmitted
		case errors.Is(err, ErrReferenceNotFound):
			log.Warn().Err(err).Uint("learnerID", learnerID).Uint("quizID", quiz.ID).Msg("SubmitExam: Submission references unknown records")
			return nil, err
		default:
			log.Error().Err(err).Uint("learnerID", learnerID).Uint("quizID", quiz.ID).Msg("SubmitExam: Transaction failed, nothing was saved")
			return nil, fmt.Errorf("%w: %v", ErrTransientStore, err)
		}
	}

	log.Info().
		Uint("learnerID", learnerID).
		Uint("quizID", quiz.ID).
		Uint("attemptID", result.AttemptID).
		Float64("earnedPoints", result.EarnedPoints).
		Float64("totalPoints", result.TotalPoints).
		Int("pendingReview", result.PendingManualReview).
		Msg("SubmitExam: Attempt graded")
	return &result, nil
}

// checkDistinctQuestions rejects a submission that answers the same question more than once.
func checkDistinctQuestions(answers []dto.AnswerSubmissionDTO) error {
	seen := make(map[uint]struct{}, len(answers))
	for _, a := range answers {
		if _, dup := seen[a.QuestionID]; dup {
			return fmt.Errorf("%w: question %d answered more than once", ErrInvalidSubmission, a.QuestionID)
		}
		seen[a.QuestionID] = struct{}{}
	}
	return nil
}

// HasSubmitted reports whether the learner already has an attempt. Store errors read as "not submitted".
func (s *examSubmissionService) HasSubmitted(ctx context.Context, learnerID, quizID uint) dto.SubmissionStatusDTO {
	status := dto.SubmissionStatusDTO{QuizID: quizID}
	count, err := s.attemptRepo.CountByUserAndQuiz(ctx, learnerID, quizID)
	if err != nil {
		log.Error().Err(err).Uint("learnerID", learnerID).Uint("quizID", quizID).Msg("HasSubmitted: Failed to count attempts, reporting not submitted")
		return status
	}
	status.AttemptCount = count
	status.HasSubmitted = count > 0
	return status
}

// GetResult replays grading over the stored answers of the learner's attempt.
func (s *examSubmissionService) GetResult(ctx context.Context, learnerID, quizID uint) (*dto.QuizResultDTO, error) {
	attempt, err := s.attemptRepo.FindByUserAndQuizWithDetails(ctx, learnerID, quizID)
	if err != nil {
		if !repository.IsNotFound(err) {
			log.Error().Err(err).Uint("learnerID", learnerID).Uint("quizID", quizID).Msg("GetResult: Failed to load attempt, reporting not submitted")
		}
		return nil, fmt.Errorf("%w: no attempt for quiz %d", ErrNotFound, quizID)
	}

	result := s.grader.Grade(attempt.Quiz, *attempt, attempt.Answers)
	return &result, nil
}
