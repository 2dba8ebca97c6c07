package instructor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Coursegate/internal/controller"
	"github.com/lshigami/Coursegate/internal/service"
)

type EssayReviewController struct {
	reviewService service.EssayReviewService
}

func NewEssayReviewController(reviewService service.EssayReviewService) *EssayReviewController {
	return &EssayReviewController{reviewService: reviewService}
}

// SuggestFeedback godoc
// @Summary (Instructor) AI feedback suggestion for an essay answer
// @Description Advisory only. The attempt and its score are not changed.
// @Tags Instructor - Essay Review
// @Produce json
// @Security BearerAuth
// @Param answer_id path int true "Submitted answer ID"
// @Success 200 {object} dto.EssayReviewDTO
// @Failure 404 {object} dto.ErrorResponse "No essay answer with this id"
// @Failure 503 {object} dto.ErrorResponse "Review assistant unavailable"
// @Router /instructor/submitted-answers/{answer_id}/ai-review [get]
func (c *EssayReviewController) SuggestFeedback(ctx *gin.Context) {
	answerID, ok := controller.ParseIDParam(ctx, "answer_id")
	if !ok {
		return
	}
	review, err := c.reviewService.SuggestEssayFeedback(ctx.Request.Context(), answerID)
	if err != nil {
		controller.RespondError(ctx, "SuggestFeedback", err)
		return
	}
	ctx.JSON(http.StatusOK, review)
}
