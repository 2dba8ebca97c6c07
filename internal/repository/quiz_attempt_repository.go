package repository

import (
	"context"

	"github.com/lshigami/Coursegate/internal/model"
	"gorm.io/gorm"
)

type QuizAttemptRepository interface {
	WithTx(tx *gorm.DB) QuizAttemptRepository
	Create(ctx context.Context, attempt *model.QuizAttempt) error
	UpdateScore(ctx context.Context, attemptID uint, score int, status model.AttemptStatus) error
	FindByUserAndQuiz(ctx context.Context, userID, quizID uint) (*model.QuizAttempt, error)
	FindByUserAndQuizWithDetails(ctx context.Context, userID, quizID uint) (*model.QuizAttempt, error)
	CountByUserAndQuiz(ctx context.Context, userID, quizID uint) (int64, error)
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) WithTx(tx *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: tx}
}

func (r *quizAttemptRepository) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	// Answers are inserted one by one by the submission workflow, never through this association.
	return r.db.WithContext(ctx).Omit("Answers", "Quiz").Create(attempt).Error
}

func (r *quizAttemptRepository) UpdateScore(ctx context.Context, attemptID uint, score int, status model.AttemptStatus) error {
	res := r.db.WithContext(ctx).Model(&model.QuizAttempt{}).
		Where("id = ?", attemptID).
		Updates(map[string]interface{}{"score": score, "status": status})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *quizAttemptRepository) FindByUserAndQuiz(ctx context.Context, userID, quizID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.WithContext(ctx).Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *quizAttemptRepository) FindByUserAndQuizWithDetails(ctx context.Context, userID, quizID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.WithContext(ctx).
		Preload("Quiz").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("submitted_answers.id ASC")
		}).
		Preload("Answers.Question").
		Preload("Answers.Answer").
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *quizAttemptRepository) CountByUserAndQuiz(ctx context.Context, userID, quizID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Count(&count).Error
	return count, err
}
