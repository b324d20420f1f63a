// README: Auth middleware (stub, wired into no route).
package middleware

import "github.com/gin-gonic/gin"

// The client retains the opaque user id from login and resends it in request
// bodies; no route currently enforces a token. Kept as a mounting point if a
// verifiable session ever gets added.

func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}
