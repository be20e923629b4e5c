package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/auth"
)

// AuthMiddleware validates the bearer token in the Authorization header
// against the access gate.
func AuthMiddleware(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		// Fallback for WebSocket/browser where custom headers cannot be set
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		claims, err := gate.Authorize(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or missing authorization token",
			})
			c.Abort()
			return
		}

		// Store principal info in context for use in handlers
		c.Set("user_id", claims.UserID)
		c.Set("login", claims.Login)

		c.Next()
	}
}
