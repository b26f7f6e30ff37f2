package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/shakibwebx/GadegtsHub-Server/apperror"
)

// ErrorHandler renders service errors the handlers attach via c.Error as
// structured JSON responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.StatusOf(err)
		c.JSON(status, gin.H{
			"success":    false,
			"statusCode": status,
			"message":    err.Error(),
		})
	}
}
