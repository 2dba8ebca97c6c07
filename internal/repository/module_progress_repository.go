package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/Coursegate/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ModuleProgressRepository interface {
	// SetFlag creates the (user, module) row if missing and sets exactly one flag column, atomically.
	SetFlag(ctx context.Context, userID, moduleID uint, column string, completed bool) error
	FindByUserAndModule(ctx context.Context, userID, moduleID uint) (*model.ModuleProgress, error)
	FindByCourseAndUser(ctx context.Context, userID, courseID uint) ([]model.ModuleProgress, error)
}

type moduleProgressRepository struct {
	db *gorm.DB
}

func NewModuleProgressRepository(db *gorm.DB) ModuleProgressRepository {
	return &moduleProgressRepository{db: db}
}

func (r *moduleProgressRepository) SetFlag(ctx context.Context, userID, moduleID uint, column string, completed bool) error {
	progress := model.ModuleProgress{UserID: userID, ModuleID: moduleID}
	switch column {
	case model.ProgressColumnContent:
		progress.ContentCompleted = completed
	case model.ProgressColumnVideo:
		progress.VideoCompleted = completed
	case model.ProgressColumnTest:
		progress.TestCompleted = completed
	default:
		return fmt.Errorf("unknown progress column %q", column)
	}
	now := time.Now()
	progress.CreatedAt = now
	progress.UpdatedAt = now

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "module_id"}},
		DoUpdates: clause.AssignmentColumns([]string{column, "updated_at"}),
	}).Create(&progress).Error
}

func (r *moduleProgressRepository) FindByUserAndModule(ctx context.Context, userID, moduleID uint) (*model.ModuleProgress, error) {
	var progress model.ModuleProgress
	err := r.db.WithContext(ctx).Where("user_id = ? AND module_id = ?", userID, moduleID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *moduleProgressRepository) FindByCourseAndUser(ctx context.Context, userID, courseID uint) ([]model.ModuleProgress, error) {
	var progresses []model.ModuleProgress
	err := r.db.WithContext(ctx).
		Joins("JOIN modules ON modules.id = module_progresses.module_id AND modules.deleted_at IS NULL").
		Where("module_progresses.user_id = ? AND modules.course_id = ?", userID, courseID).
		Order("modules.order_number ASC, module_progresses.id ASC").
		Find(&progresses).Error
	return progresses, err
}
