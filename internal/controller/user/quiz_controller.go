package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Coursegate/internal/controller"
	"github.com/lshigami/Coursegate/internal/service"
)

type QuizController struct {
	quizService service.UserQuizService
}

func NewQuizController(quizService service.UserQuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// GetQuiz godoc
// @Summary Get a published quiz
// @Description Questions and answer options in display order, without correctness flags.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizViewDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found or not published"
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, ok := controller.ParseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	quiz, err := c.quizService.GetQuiz(ctx.Request.Context(), quizID)
	if err != nil {
		controller.RespondError(ctx, "GetQuiz", err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}
