package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the context key handlers read the caller identity from.
const userIDKey = "user_id"

// defaultUserID serves unauthenticated single-user deployments.
const defaultUserID = "default"

// UserID resolves the caller from the X-User-ID header. Authentication
// is handled upstream; this service only scopes data per user.
func UserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = defaultUserID
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUser returns the resolved user id for a request.
func CurrentUser(c *gin.Context) string {
	if id := c.GetString(userIDKey); id != "" {
		return id
	}
	return defaultUserID
}
