package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"canteen-api/config"
	"canteen-api/models"
	"canteen-api/utils"

	"github.com/gin-gonic/gin"
)

// Auth validates a "Bearer <token>" header and stores the embedded user
// id on the context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "No token provided"})
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid authorization header format"})
			return
		}

		userID, err := utils.VerifyToken(tokenParts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// AdminKey gates privileged routes on the X-Admin-Key shared secret.
// The comparison is constant-time; an unset server key rejects everything.
func AdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.AppConfig.AdminKey
		provided := c.GetHeader("X-Admin-Key")

		if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{Error: "Admin access required"})
			return
		}

		c.Next()
	}
}
