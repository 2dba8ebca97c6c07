package repository

import (
	"context"

	"github.com/lshigami/Coursegate/internal/model"
	"gorm.io/gorm"
)

type SubmittedAnswerRepository interface {
	WithTx(tx *gorm.DB) SubmittedAnswerRepository
	Create(ctx context.Context, answer *model.SubmittedAnswer) error
	FindByIDWithQuestion(ctx context.Context, id uint) (*model.SubmittedAnswer, error)
}

type submittedAnswerRepository struct {
	db *gorm.DB
}

func NewSubmittedAnswerRepository(db *gorm.DB) SubmittedAnswerRepository {
	return &submittedAnswerRepository{db: db}
}

func (r *submittedAnswerRepository) WithTx(tx *gorm.DB) SubmittedAnswerRepository {
	return &submittedAnswerRepository{db: tx}
}

func (r *submittedAnswerRepository) Create(ctx context.Context, answer *model.SubmittedAnswer) error {
	// Question and Answer are preloaded definitions; they must not be upserted.
	return r.db.WithContext(ctx).Omit("Question", "Answer").Create(answer).Error
}

func (r *submittedAnswerRepository) FindByIDWithQuestion(ctx context.Context, id uint) (*model.SubmittedAnswer, error) {
	var answer model.SubmittedAnswer
	if err := r.db.WithContext(ctx).Preload("Question").First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}
