package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/model"
	"github.com/lshigami/Coursegate/internal/repository"
	"github.com/rs/zerolog/log"
)

type ModuleProgressService interface {
	UpdateContentProgress(ctx context.Context, learnerID, moduleID uint, completed bool) error
	UpdateVideoProgress(ctx context.Context, learnerID, moduleID uint, completed bool) error
	UpdateTestProgress(ctx context.Context, learnerID, moduleID uint, completed bool) error
	IsTestUnlocked(ctx context.Context, learnerID, moduleID uint) bool
	IsModuleCompleted(ctx context.Context, learnerID, moduleID uint) (bool, error)
	GetUserProgressInCourse(ctx context.Context, learnerID, courseID uint) ([]dto.ModuleProgressDTO, error)
}

type moduleProgressService struct {
	progressRepo repository.ModuleProgressRepository
}

func NewModuleProgressService(progressRepo repository.ModuleProgressRepository) ModuleProgressService {
	return &moduleProgressService{progressRepo: progressRepo}
}

func (s *moduleProgressService) UpdateContentProgress(ctx context.Context, learnerID, moduleID uint, completed bool) error {
	return s.setFlag(ctx, learnerID, moduleID, model.ProgressColumnContent, completed)
}

func (s *moduleProgressService) UpdateVideoProgress(ctx context.Context, learnerID, moduleID uint, completed bool) error {
	return s.setFlag(ctx, learnerID, moduleID, model.ProgressColumnVideo, completed)
}

func (s *moduleProgressService) UpdateTestProgress(ctx context.Context, learnerID, moduleID uint, completed bool) error {
	return s.setFlag(ctx, learnerID, moduleID, model.ProgressColumnTest, completed)
}

func (s *moduleProgressService) setFlag(ctx context.Context, learnerID, moduleID uint, column string, completed bool) error {
	if err := s.progressRepo.SetFlag(ctx, learnerID, moduleID, column, completed); err != nil {
		log.Error().Err(err).
			Uint("learnerID", learnerID).
			Uint("moduleID", moduleID).
			Str("column", column).
			Msg("UpdateProgress: Failed to upsert module progress")
		return fmt.Errorf("%w: updating %s: %v", ErrTransientStore, column, err)
	}
	log.Debug().Uint("learnerID", learnerID).Uint("moduleID", moduleID).Str("column", column).Bool("completed", completed).Msg("UpdateProgress: Saved")
	return nil
}

// IsTestUnlocked always unlocks the module test.
// TODO: gate on content and video completion once course owners can configure the unlock rule.
func (s *moduleProgressService) IsTestUnlocked(ctx context.Context, learnerID, moduleID uint) bool {
	return true
}

// IsModuleCompleted reads the database-computed aggregate; a learner with no row has not completed the module.
func (s *moduleProgressService) IsModuleCompleted(ctx context.Context, learnerID, moduleID uint) (bool, error) {
	progress, err := s.progressRepo.FindByUserAndModule(ctx, learnerID, moduleID)
	if err != nil {
		if repository.IsNotFound(err) {
			return false, nil
		}
		log.Error().Err(err).Uint("learnerID", learnerID).Uint("moduleID", moduleID).Msg("IsModuleCompleted: Failed to read progress")
		return false, fmt.Errorf("%w: reading module progress: %v", ErrTransientStore, err)
	}
	return progress.ModuleCompleted, nil
}

func (s *moduleProgressService) GetUserProgressInCourse(ctx context.Context, learnerID, courseID uint) ([]dto.ModuleProgressDTO, error) {
	progresses, err := s.progressRepo.FindByCourseAndUser(ctx, learnerID, courseID)
	if err != nil {
		log.Error().Err(err).Uint("learnerID", learnerID).Uint("courseID", courseID).Msg("GetUserProgressInCourse: Failed to list progress")
		return nil, fmt.Errorf("%w: listing course progress: %v", ErrTransientStore, err)
	}

	resp := make([]dto.ModuleProgressDTO, 0, len(progresses))
	if err := copier.Copy(&resp, &progresses); err != nil {
		log.Error().Err(err).Msg("GetUserProgressInCourse: Failed to copy ModuleProgress models to DTOs")
		return nil, fmt.Errorf("error preparing progress response: %w", err)
	}
	return resp, nil
}
