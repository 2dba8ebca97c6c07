package user

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/middleware"
	"github.com/lshigami/Coursegate/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "controller-test"

type stubSubmissionService struct {
	gotLearner uint
	gotReq     dto.ExamSubmissionDTO
	err        error
}

func (s *stubSubmissionService) SubmitExam(_ context.Context, learnerID uint, req dto.ExamSubmissionDTO) (*dto.QuizResultDTO, error) {
	s.gotLearner, s.gotReq = learnerID, req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.QuizResultDTO{QuizID: req.QuizID, UserID: learnerID, EarnedPoints: 2, TotalPoints: 5, Percentage: 40}, nil
}

func (s *stubSubmissionService) HasSubmitted(_ context.Context, learnerID, quizID uint) dto.SubmissionStatusDTO {
	return dto.SubmissionStatusDTO{QuizID: quizID, HasSubmitted: learnerID == 42, AttemptCount: 1}
}

func (s *stubSubmissionService) GetResult(_ context.Context, _, quizID uint) (*dto.QuizResultDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.QuizResultDTO{QuizID: quizID}, nil
}

func newExamRouter(svc service.ExamSubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewExamController(svc)
	exam := r.Group("/exam", middleware.Authenticate(secret))
	exam.POST("/submit", ctrl.SubmitExam)
	exam.GET("/check-submission/:quiz_id", ctrl.CheckSubmission)
	exam.GET("/result/:quiz_id", ctrl.GetResult)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any, learnerID uint) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	token, err := middleware.IssueToken(secret, learnerID, middleware.RoleStudent, time.Hour)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitExamUsesTokenLearner(t *testing.T) {
	svc := &stubSubmissionService{}
	r := newExamRouter(svc)

	body := map[string]any{
		"quiz_id": 3,
		"user_id": 999,
		"answers": []map[string]any{{"question_id": 1, "selected_index": 0}},
	}
	w := doRequest(t, r, http.MethodPost, "/exam/submit", body, 42)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, uint(42), svc.gotLearner)
	assert.Equal(t, uint(3), svc.gotReq.QuizID)
	require.Len(t, svc.gotReq.Answers, 1)
	assert.Equal(t, 0, *svc.gotReq.Answers[0].SelectedIndex)

	var result dto.QuizResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 40.0, result.Percentage)
}

func TestSubmitExamErrorMapping(t *testing.T) {
	body := map[string]any{"quiz_id": 3, "answers": []map[string]any{{"question_id": 1}}}
	cases := []struct {
		err  error
		code int
	}{
		{service.ErrAlreadySubmitted, http.StatusConflict},
		{fmt.Errorf("%w: question 9", service.ErrReferenceNotFound), http.StatusBadRequest},
		{fmt.Errorf("%w: question 1 answered more than once", service.ErrInvalidSubmission), http.StatusBadRequest},
		{fmt.Errorf("%w: db down", service.ErrTransientStore), http.StatusServiceUnavailable},
		{fmt.Errorf("surprise"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := doRequest(t, newExamRouter(&stubSubmissionService{err: tc.err}), http.MethodPost, "/exam/submit", body, 42)
		assert.Equal(t, tc.code, w.Code, tc.err.Error())

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Message)
	}
}

func TestSubmitExamRejectsBadBody(t *testing.T) {
	r := newExamRouter(&stubSubmissionService{})

	for name, body := range map[string]any{
		"no answers":       map[string]any{"quiz_id": 3, "answers": []any{}},
		"no quiz":          map[string]any{"answers": []map[string]any{{"question_id": 1}}},
		"answer without q": map[string]any{"quiz_id": 3, "answers": []map[string]any{{"answer_id": 1}}},
	} {
		assert.Equal(t, http.StatusBadRequest, doRequest(t, r, http.MethodPost, "/exam/submit", body, 42).Code, name)
	}
}

func TestCheckSubmissionAndResult(t *testing.T) {
	r := newExamRouter(&stubSubmissionService{})

	w := doRequest(t, r, http.MethodGet, "/exam/check-submission/5", nil, 42)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"quiz_id":5,"has_submitted":true,"attempt_count":1}`, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, doRequest(t, r, http.MethodGet, "/exam/check-submission/abc", nil, 42).Code)

	missing := newExamRouter(&stubSubmissionService{err: fmt.Errorf("%w: no attempt", service.ErrNotFound)})
	assert.Equal(t, http.StatusNotFound, doRequest(t, missing, http.MethodGet, "/exam/result/5", nil, 42).Code)
	assert.Equal(t, http.StatusOK, doRequest(t, r, http.MethodGet, "/exam/result/5", nil, 42).Code)
}
