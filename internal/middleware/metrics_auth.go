package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MetricsKeyAuth guards the metrics endpoint with the X-API-Key header. An
// empty apiKey leaves the endpoint open.
func MetricsKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"success": false, "message": "Invalid or missing API key"})
			return
		}
		c.Next()
	}
}
