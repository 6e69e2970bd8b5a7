package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKeyHeader carries the shared admin secret on admin requests.
const AdminKeyHeader = "X-Admin-Key"

// AdminKey gates admin routes behind the configured shared secret. A
// missing header compares as the empty string and is unauthorized like
// any other mismatch.
func AdminKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(AdminKeyHeader) != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
