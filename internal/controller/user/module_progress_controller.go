package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Coursegate/internal/controller"
	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/service"
)

type ModuleProgressController struct {
	progressService service.ModuleProgressService
}

func NewModuleProgressController(progressService service.ModuleProgressService) *ModuleProgressController {
	return &ModuleProgressController{progressService: progressService}
}

type progressUpdater func(ctx context.Context, learnerID, moduleID uint, completed bool) error

// UpdateContent godoc
// @Summary Mark module content as (not) completed
// @Tags Module Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param module_id path int true "Module ID"
// @Param body body dto.ProgressUpdateDTO true "Completion flag"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /module-progress/content/{module_id} [post]
func (c *ModuleProgressController) UpdateContent(ctx *gin.Context) {
	c.update(ctx, "UpdateContent", "Content progress updated", c.progressService.UpdateContentProgress)
}

// UpdateVideo godoc
// @Summary Mark module video as (not) completed
// @Tags Module Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param module_id path int true "Module ID"
// @Param body body dto.ProgressUpdateDTO true "Completion flag"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /module-progress/video/{module_id} [post]
func (c *ModuleProgressController) UpdateVideo(ctx *gin.Context) {
	c.update(ctx, "UpdateVideo", "Video progress updated", c.progressService.UpdateVideoProgress)
}

// UpdateTest godoc
// @Summary Mark module test as (not) completed
// @Tags Module Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param module_id path int true "Module ID"
// @Param body body dto.ProgressUpdateDTO true "Completion flag"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /module-progress/test/{module_id} [post]
func (c *ModuleProgressController) UpdateTest(ctx *gin.Context) {
	c.update(ctx, "UpdateTest", "Test progress updated", c.progressService.UpdateTestProgress)
}

func (c *ModuleProgressController) update(ctx *gin.Context, op, okMessage string, apply progressUpdater) {
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}
	moduleID, ok := controller.ParseIDParam(ctx, "module_id")
	if !ok {
		return
	}
	var req dto.ProgressUpdateDTO
	if !controller.BindJSON(ctx, op, &req) {
		return
	}
	if err := apply(ctx.Request.Context(), learnerID, moduleID, *req.Completed); err != nil {
		controller.RespondError(ctx, op, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: okMessage})
}

// TestUnlock godoc
// @Summary Whether the module test is unlocked for the caller
// @Tags Module Progress
// @Produce json
// @Security BearerAuth
// @Param module_id path int true "Module ID"
// @Success 200 {object} dto.TestUnlockDTO
// @Router /module-progress/test-unlock/{module_id} [get]
func (c *ModuleProgressController) TestUnlock(ctx *gin.Context) {
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}
	moduleID, ok := controller.ParseIDParam(ctx, "module_id")
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.TestUnlockDTO{Unlocked: c.progressService.IsTestUnlocked(ctx.Request.Context(), learnerID, moduleID)})
}

// Completed godoc
// @Summary Whether the caller completed the module
// @Tags Module Progress
// @Produce json
// @Security BearerAuth
// @Param module_id path int true "Module ID"
// @Success 200 {object} dto.ModuleCompletionDTO
// @Failure 503 {object} dto.ErrorResponse
// @Router /module-progress/completed/{module_id} [get]
func (c *ModuleProgressController) Completed(ctx *gin.Context) {
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}
	moduleID, ok := controller.ParseIDParam(ctx, "module_id")
	if !ok {
		return
	}
	done, err := c.progressService.IsModuleCompleted(ctx.Request.Context(), learnerID, moduleID)
	if err != nil {
		controller.RespondError(ctx, "Completed", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ModuleCompletionDTO{ModuleID: moduleID, Completed: done})
}

// CourseProgress godoc
// @Summary List the caller's progress for every module of a course
// @Tags Module Progress
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.ModuleProgressDTO
// @Failure 503 {object} dto.ErrorResponse
// @Router /module-progress/course/{course_id} [get]
func (c *ModuleProgressController) CourseProgress(ctx *gin.Context) {
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}
	courseID, ok := controller.ParseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	progress, err := c.progressService.GetUserProgressInCourse(ctx.Request.Context(), learnerID, courseID)
	if err != nil {
		controller.RespondError(ctx, "CourseProgress", err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}
