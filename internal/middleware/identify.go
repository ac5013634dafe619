package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller's identity on per-user routes.
const UserIDHeader = "X-User-ID"

// Identify requires the X-User-ID header and places its value in the
// gin context under "userID".
func Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + UserIDHeader + " header",
			})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}
