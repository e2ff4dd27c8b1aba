package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/token"
)

const currentUserKey = "currentUser"

// Every authentication failure uses this one message so callers cannot
// tell a bad token from a deleted user.
const msgInvalidCredentials = "Could not validate credentials"

// Auth verifies the bearer token and resolves it to an active user.
// Stateless: every request re-verifies independently.
func Auth(tokens *token.Manager, users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract token from "Authorization: Bearer <token>"
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, msgInvalidCredentials)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, msgInvalidCredentials)
			c.Abort()
			return
		}

		// 2. Verify signature + expiry together; resolve the subject.
		username, err := tokens.Verify(parts[1])
		if err != nil {
			response.Unauthorized(c, msgInvalidCredentials)
			c.Abort()
			return
		}

		// 3. The user must still exist and not be soft-deleted.
		u, err := users.FindByUsername(c.Request.Context(), username)
		if err != nil {
			response.Unauthorized(c, msgInvalidCredentials)
			c.Abort()
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Auth, if any.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}
