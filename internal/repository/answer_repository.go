package repository

import (
	"context"

	"github.com/lshigami/Coursegate/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	FindByID(ctx context.Context, id uint) (*model.Answer, error)
	// FindByQuestionID returns the question's answers in storage order; callers sort.
	FindByQuestionID(ctx context.Context, questionID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

func (r *answerRepository) FindByID(ctx context.Context, id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.WithContext(ctx).First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindByQuestionID(ctx context.Context, questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.WithContext(ctx).Where("question_id = ?", questionID).Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
