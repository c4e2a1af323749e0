package server

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "_sid"
	contextUserIDKey  = "user_id"
)

// AuthRequired resolves the session cookie to a user and stores the user id
// in the request context. Requests without a valid session are rejected.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookieName)
		if err != nil || strings.TrimSpace(sid) == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		user, err := s.authsvc.Authenticate(c.Request.Context(), sid)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserIDKey, user.ID)
		c.Next()
	}
}

// currentUserID returns the authenticated user's id set by AuthRequired.
func currentUserID(c *gin.Context) (snowflake.ID, bool) {
	v, ok := c.Get(contextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(snowflake.ID)
	return id, ok
}

func mustUserID(c *gin.Context) (snowflake.ID, bool) {
	id, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return 0, false
	}
	return id, true
}
