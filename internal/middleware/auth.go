package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/profile-catalog/internal/config"
	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
)

const (
	ContextActor = "actor"
	ContextRole  = "role"

	RoleAdmin = "admin"
)

// AdminAuth admits requests carrying a valid HS256 bearer token issued
// for the admin role.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		actor, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if actor == "" || role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, httperr.HTTPError{
				Code:    "forbidden",
				Message: "Admin role required.",
			})
			return
		}

		c.Set(ContextActor, actor)
		c.Set(ContextRole, role)

		c.Next()
	}
}

// Actor is the authenticated username, empty outside admin routes.
func Actor(c *gin.Context) string {
	return c.GetString(ContextActor)
}

func abortUnauthorized(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{
		Code:    code,
		Message: "Authentication required.",
	})
}
