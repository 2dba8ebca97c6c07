package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"

	learnerIDKey = "learner_id"
	roleKey      = "role"
)

// Claims are issued by the identity service. Subject holds the numeric user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for userID. Used by tooling and tests; production tokens come from the identity service.
func IssueToken(secret string, userID uint, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Authenticate verifies the bearer token and stores the learner id and role on the context.
func Authenticate(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}
		if len(key) == 0 {
			abortUnauthorized(c, "Authentication is not configured")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(t *jwt.Token) (interface{}, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			log.Warn().Err(err).Str("path", c.FullPath()).Msg("Authenticate: Rejected token")
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		learnerID, err := strconv.ParseUint(claims.Subject, 10, 32)
		if err != nil || learnerID == 0 {
			abortUnauthorized(c, "Invalid token payload")
			return
		}

		c.Set(learnerIDKey, uint(learnerID))
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles lets the request through only when the token role is one of roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		if !allowed[Role(c)] {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient role for this operation"})
			return
		}
		c.Next()
	}
}

var errNoLearner = errors.New("no authenticated learner on request")

// LearnerID returns the id set by Authenticate.
func LearnerID(c *gin.Context) (uint, error) {
	v, ok := c.Get(learnerIDKey)
	if !ok {
		return 0, errNoLearner
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errNoLearner
	}
	return id, nil
}

func Role(c *gin.Context) string {
	return c.GetString(roleKey)
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: msg})
}
