package middleware

import (
	"github.com/gin-gonic/gin"

	"autoledger/internal/auth"
)

// Identify resolves the caller's identity and stores it in the request
// context. It never aborts: handlers decide whether anonymous callers get a
// 401 or a public response.
func Identify(resolver auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := resolver.Resolve(c.Request)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
		if id.Authenticated {
			c.Set("userID", id.UserID)
		}
		c.Next()
	}
}
