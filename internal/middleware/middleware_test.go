package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newRouter(secret string, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", Authenticate(secret), RequireRoles(roles...), func(c *gin.Context) {
		id, err := LearnerID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "role": Role(c)})
	})
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	token, err := IssueToken(testSecret, 42, RoleStudent, time.Hour)
	require.NoError(t, err)

	w := get(newRouter(testSecret, RoleStudent), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42,"role":"student"}`, w.Body.String())
}

func TestAuthenticateRejects(t *testing.T) {
	expired, err := IssueToken(testSecret, 42, RoleStudent, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := IssueToken("other-secret", 42, RoleStudent, time.Hour)
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Role: RoleStudent}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	r := newRouter(testSecret, RoleStudent)
	for name, token := range map[string]string{
		"missing":    "",
		"expired":    expired,
		"wrong key":  wrongKey,
		"no subject": noSubject,
		"garbage":    "not-a-jwt",
	} {
		assert.Equal(t, http.StatusUnauthorized, get(r, token).Code, name)
	}
}

func TestAuthenticateWithoutSecretRejectsEverything(t *testing.T) {
	token, err := IssueToken(testSecret, 1, RoleAdmin, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(newRouter("", RoleAdmin), token).Code)
}

func TestRequireRoles(t *testing.T) {
	token, err := IssueToken(testSecret, 7, RoleStudent, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(newRouter(testSecret, RoleAdmin), token).Code)

	admin, err := IssueToken(testSecret, 7, RoleAdmin, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(newRouter(testSecret, RoleInstructor, RoleAdmin), admin).Code)
}

func TestRequestID(t *testing.T) {
	r := newRouter(testSecret, RoleStudent)

	w := get(r, "")
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, "bogus id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "bogus id", w.Header().Get(RequestIDHeader))

	assert.Equal(t, "abc", RequestIDFromKeys(map[string]any{requestIDKey: "abc"}))
	assert.Empty(t, RequestIDFromKeys(nil))
}
