package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	frontendKeyHeader = "X-Frontend-Key"
	userIDKey         = "userID"
)

// requestLogger logs one line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

// requireFrontendKey rejects requests without a current frontend key. It is
// a no-op when no key generator is configured.
func (s *Server) requireFrontendKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.keys == nil {
			c.Next()
			return
		}
		if !s.keys.Verify(c.GetHeader(frontendKeyHeader), s.now()) {
			s.respondError(c, newError(http.StatusUnauthorized, "invalid_frontend_key",
				errors.New("missing or expired frontend key")))
			return
		}
		c.Next()
	}
}

// parseUserID validates the :id path segment and stores it on the context.
func (s *Server) parseUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			s.respondError(c, badRequest("invalid_user_id", "invalid user id %q", c.Param("id")))
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(userIDKey).(uuid.UUID)
}
