package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/middleware"
	"github.com/lshigami/Coursegate/internal/service"
	"github.com/rs/zerolog/log"
)

// ParseIDParam reads a positive numeric path parameter. On failure it has already answered 400.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format", Details: []string{raw}})
		return 0, false
	}
	return uint(id), true
}

// LearnerID reads the authenticated learner. On failure it has already answered 401.
func LearnerID(ctx *gin.Context) (uint, bool) {
	id, err := middleware.LearnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return 0, false
	}
	return id, true
}

// BindJSON binds the request body. On failure it has already answered 400.
func BindJSON(ctx *gin.Context, op string, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Msgf("%s: Failed to bind JSON", op)
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return false
	}
	return true
}

// RespondError maps service errors to HTTP answers.
func RespondError(ctx *gin.Context, op string, err error) {
	var invalid *service.QuizValidationError
	switch {
	case errors.As(err, &invalid):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz definition", Details: invalid.Problems})
	case errors.Is(err, service.ErrAlreadySubmitted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "You have already submitted this quiz"})
	case errors.Is(err, service.ErrReferenceNotFound):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Submission references records that do not exist", Details: []string{err.Error()}})
	case errors.Is(err, service.ErrInvalidSubmission):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission", Details: []string{err.Error()}})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Not found", Details: []string{err.Error()}})
	case errors.Is(err, service.ErrTransientStore):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Temporary storage problem, please retry"})
	case errors.Is(err, service.ErrReviewUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Essay review is unavailable", Details: []string{err.Error()}})
	default:
		log.Error().Err(err).Msgf("%s: Unexpected service error", op)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
