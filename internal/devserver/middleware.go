package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/dmitrijs2005/studentdiary/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	userKey         = "user"
)

func abort(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"message": msg})
}

// requestLogger tags every request with an id (the caller's, or a fresh
// one) and logs it once the handler is done.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", id,
		)
	}
}

// authenticate resolves the bearer token to a user. Missing, invalid and
// expired tokens are all 401.
func (s *Server) authenticate(c *gin.Context) {
	h := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok || token == "" {
		abort(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	claims, err := ParseToken(token, []byte(s.cfg.SecretKey))
	if err != nil {
		abort(c, http.StatusUnauthorized, "Token is not valid")
		return
	}
	u, ok := s.store.User(claims.UserID)
	if !ok {
		abort(c, http.StatusUnauthorized, "Token is not valid")
		return
	}
	c.Set(userKey, u)
	c.Next()
}

// allow rejects users whose role is not listed with 403.
func allow(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		for _, r := range roles {
			if u.Role == r {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, "Access denied: "+string(u.Role)+" role cannot perform this action")
	}
}

func currentUser(c *gin.Context) *User {
	return c.MustGet(userKey).(*User)
}
