package middlewares

import (
	"log"
	"net/http"
	"strings"

	"civicreport-be/models"
	authUtils "civicreport-be/utils"

	"github.com/gin-gonic/gin"
)

const AuthCookieName = "auth_token"

// AuthMiddleware accepts a Bearer token or the auth_token cookie and stores
// user_id and role on the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No authorization token provided"})
			c.Abort()
			return
		}

		if jwtSecret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "JWT secret not configured"})
			c.Abort()
			return
		}

		claims, err := authUtils.ParseToken(jwtSecret, tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid authorization token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// OptionalAuth sets user_id and role when a valid token is present and never
// rejects the request.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" && jwtSecret != "" {
			if claims, err := authUtils.ParseToken(jwtSecret, tokenString); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("role", claims.Role)
			}
		}
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		current, _ := role.(models.Role)
		for _, allowed := range roles {
			if current == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Insufficient permissions"})
		c.Abort()
	}
}

func bearerToken(c *gin.Context) string {
	if authHeader := c.Request.Header.Get("Authorization"); authHeader != "" {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}
