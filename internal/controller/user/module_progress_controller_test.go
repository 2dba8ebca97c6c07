package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type progressCall struct {
	kind      string
	learnerID uint
	moduleID  uint
	completed bool
}

type stubProgressService struct {
	calls []progressCall
}

func (s *stubProgressService) record(kind string, learnerID, moduleID uint, completed bool) error {
	s.calls = append(s.calls, progressCall{kind, learnerID, moduleID, completed})
	return nil
}

func (s *stubProgressService) UpdateContentProgress(_ context.Context, l, m uint, c bool) error {
	return s.record("content", l, m, c)
}

func (s *stubProgressService) UpdateVideoProgress(_ context.Context, l, m uint, c bool) error {
	return s.record("video", l, m, c)
}

func (s *stubProgressService) UpdateTestProgress(_ context.Context, l, m uint, c bool) error {
	return s.record("test", l, m, c)
}

func (s *stubProgressService) IsTestUnlocked(context.Context, uint, uint) bool { return true }

func (s *stubProgressService) IsModuleCompleted(_ context.Context, _, moduleID uint) (bool, error) {
	return moduleID == 1, nil
}

func (s *stubProgressService) GetUserProgressInCourse(_ context.Context, learnerID, _ uint) ([]dto.ModuleProgressDTO, error) {
	return []dto.ModuleProgressDTO{{UserID: learnerID, ModuleID: 1, ModuleCompleted: true}}, nil
}

func newProgressRouter(svc *stubProgressService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewModuleProgressController(svc)
	g := r.Group("/module-progress", middleware.Authenticate(secret))
	g.POST("/content/:module_id", ctrl.UpdateContent)
	g.POST("/video/:module_id", ctrl.UpdateVideo)
	g.POST("/test/:module_id", ctrl.UpdateTest)
	g.GET("/test-unlock/:module_id", ctrl.TestUnlock)
	g.GET("/completed/:module_id", ctrl.Completed)
	g.GET("/course/:course_id", ctrl.CourseProgress)
	return r
}

func TestProgressUpdatesRouteToTheirFlag(t *testing.T) {
	svc := &stubProgressService{}
	r := newProgressRouter(svc)

	for _, kind := range []string{"content", "video", "test"} {
		w := doRequest(t, r, http.MethodPost, "/module-progress/"+kind+"/8", map[string]any{"completed": true}, 42)
		require.Equal(t, http.StatusOK, w.Code, kind)
	}
	assert.Equal(t, []progressCall{
		{"content", 42, 8, true},
		{"video", 42, 8, true},
		{"test", 42, 8, true},
	}, svc.calls)

	w := doRequest(t, r, http.MethodPost, "/module-progress/video/8", map[string]any{}, 42)
	assert.Equal(t, http.StatusBadRequest, w.Code, "completed is required")

	w = doRequest(t, r, http.MethodPost, "/module-progress/video/8", map[string]any{"completed": false}, 42)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, svc.calls[len(svc.calls)-1].completed)
}

func TestProgressQueries(t *testing.T) {
	r := newProgressRouter(&stubProgressService{})

	w := doRequest(t, r, http.MethodGet, "/module-progress/test-unlock/3", nil, 42)
	assert.JSONEq(t, `{"unlocked":true}`, w.Body.String())

	w = doRequest(t, r, http.MethodGet, "/module-progress/completed/1", nil, 42)
	assert.JSONEq(t, `{"module_id":1,"completed":true}`, w.Body.String())

	w = doRequest(t, r, http.MethodGet, "/module-progress/course/2", nil, 42)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}
