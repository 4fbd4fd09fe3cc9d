package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rinde17/stocky/internal/auth"
)

const (
	// UserIDKey is the gin context key for the authenticated user id
	UserIDKey = "user_id"
	// LoginPath is where unauthenticated requests get redirected
	LoginPath = "/login"
)

// AuthMiddleware guards the /app routes. The session token comes from the
// session cookie or an Authorization Bearer header; anything unauthenticated
// is redirected to the login entry point, like the original web flow.
func AuthMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			logger.Debug("Missing session token",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			logger.Debug("Invalid session token",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			logger.Warn("Session token with malformed subject", zap.Error(err))
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
