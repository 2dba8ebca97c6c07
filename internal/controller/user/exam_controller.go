package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Coursegate/internal/controller"
	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	submissionService service.ExamSubmissionService
}

func NewExamController(submissionService service.ExamSubmissionService) *ExamController {
	return &ExamController{submissionService: submissionService}
}

// SubmitExam godoc
// @Summary Submit answers for a quiz
// @Description Records and grades the caller's single attempt. Essay answers stay pending manual review.
// @Tags Exam
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.ExamSubmissionDTO true "Quiz id and answers"
// @Success 200 {object} dto.QuizResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body, repeated question, or unknown quiz, question or answer"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Quiz already submitted"
// @Failure 503 {object} dto.ErrorResponse "Temporary storage problem, retry"
// @Router /exam/submit [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}
	var req dto.ExamSubmissionDTO
	if !controller.BindJSON(ctx, "SubmitExam", &req) {
		return
	}

	result, err := c.submissionService.SubmitExam(ctx.Request.Context(), learnerID, req)
	if err != nil {
		log.Warn().Err(err).Uint("learnerID", learnerID).Uint("quizID", req.QuizID).Msg("SubmitExam: Service error")
		controller.RespondError(ctx, "SubmitExam", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CheckSubmission godoc
// @Summary Check whether the caller already submitted a quiz
// @Tags Exam
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.SubmissionStatusDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /exam/check-submission/{quiz_id} [get]
func (c *ExamController) CheckSubmission(ctx *gin.Context) {
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}
	quizID, ok := controller.ParseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.submissionService.HasSubmitted(ctx.Request.Context(), learnerID, quizID))
}

// GetResult godoc
// @Summary Get the graded result of the caller's attempt
// @Tags Exam
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResultDTO
// @Failure 404 {object} dto.ErrorResponse "No attempt for this quiz"
// @Router /exam/result/{quiz_id} [get]
func (c *ExamController) GetResult(ctx *gin.Context) {
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}
	quizID, ok := controller.ParseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	result, err := c.submissionService.GetResult(ctx.Request.Context(), learnerID, quizID)
	if err != nil {
		controller.RespondError(ctx, "GetResult", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
