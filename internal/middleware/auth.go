package middleware

import (
	"net/http"
	"strings"

	"ecotrack-be/internal/jwt"

	"github.com/gin-gonic/gin"
)

// Context keys under which the verified identity is stored for handlers
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// AuthMiddleware gates protected routes on a bearer token. A missing
// Authorization header is 401; a token that fails signature or expiry
// checks is 403. On success the identity from the token is stored in
// the request context; handlers must take the owning user from there,
// never from the request body.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Token missing",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Invalid token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
