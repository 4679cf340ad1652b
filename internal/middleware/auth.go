package middleware

import (
	"strings"

	"analytics-srv/pkg/response"
	"analytics-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Auth verifies the access token from the Authorization header or, failing
// that, the session cookie, and stores the caller's scope on the context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(c.GetHeader("Authorization"))
		tokenString = strings.TrimPrefix(tokenString, bearerPrefix)

		if tokenString == "" && m.cookieName != "" {
			if cookie, err := c.Cookie(m.cookieName); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
