package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"secure_vault/internal/model"
	"secure_vault/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthIdentityKey is the gin context key holding the verified model.Identity
const AuthIdentityKey = "authIdentity"

// JWTAuthMiddleware gates protected routes behind a valid bearer token.
// Missing, expired and forged tokens all answer 401; the distinct reason is
// kept in the response message and the server log.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			log.Printf("Token validation failed for %s: %v", c.Request.URL.Path, err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(AuthIdentityKey, model.Identity{
			UserID:       claims.UserID,
			Email:        claims.Email,
			PhoneNumber:  claims.PhoneNumber,
			AuthProvider: claims.AuthProvider,
		})

		c.Next()
	}
}
