package utils

import "github.com/gin-gonic/gin"

// RespondError writes the uniform failure shape. Unexpected errors should be
// logged by the caller; the client only ever sees the message string.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// RespondMessage writes a bare success acknowledgement.
func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": true,
		"message": message,
	})
}
