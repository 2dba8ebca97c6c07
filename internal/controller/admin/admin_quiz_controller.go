package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Coursegate/internal/controller"
	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuizController struct {
	adminQuizService service.AdminQuizService
}

func NewAdminQuizController(adminQuizService service.AdminQuizService) *AdminQuizController {
	return &AdminQuizController{adminQuizService: adminQuizService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz with its questions and answers
// @Description Multiple-choice questions need exactly one correct answer and unique answer order numbers. Essay questions take no answers.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_data body dto.QuizCreateDTO true "Quiz definition"
// @Success 201 {object} dto.QuizDetailDTO "Quiz created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz definition"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if !controller.BindJSON(ctx, "Admin CreateQuiz", &req) {
		return
	}

	quiz, err := c.adminQuizService.CreateQuiz(ctx.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).Str("title", req.Title).Msg("Admin CreateQuiz: Service error")
		controller.RespondError(ctx, "Admin CreateQuiz", err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// PublishQuiz godoc
// @Summary (Admin) Publish or unpublish a quiz
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param body body dto.PublishQuizDTO true "Visibility flag"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id}/publish [patch]
func (c *AdminQuizController) PublishQuiz(ctx *gin.Context) {
	quizID, ok := controller.ParseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.PublishQuizDTO
	if !controller.BindJSON(ctx, "Admin PublishQuiz", &req) {
		return
	}
	if err := c.adminQuizService.SetPublished(ctx.Request.Context(), quizID, *req.Published); err != nil {
		controller.RespondError(ctx, "Admin PublishQuiz", err)
		return
	}
	msg := "Quiz unpublished"
	if *req.Published {
		msg = "Quiz published"
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: msg})
}
