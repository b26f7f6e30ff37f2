package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/shakibwebx/GadegtsHub-Server/apperror"
	"github.com/shakibwebx/GadegtsHub-Server/models"
)

// UserFinder resolves the token's email claim to a stored user.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Auth validates the bearer token, loads the user and enforces the role
// guard. With no roles given, any authenticated user passes.
func Auth(secret string, users UserFinder, roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "You are not authorized!")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Invalid token claims")
			return
		}
		email, _ := claims["email"].(string)

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil || user == nil {
			abortUnauthorized(c, "This user is not found!")
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if user.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				abortUnauthorized(c, "You are not authorized!")
				return
			}
		}

		c.Set("user", user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	err := apperror.Unauthorized(message)
	c.AbortWithStatusJSON(err.Status, gin.H{"success": false, "message": err.Message})
}
