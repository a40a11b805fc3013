package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured success envelope. The facade mirrors the
// marketplace backend's {success, data, error} shape so UI code can share
// one response decoder for both surfaces.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
		"error":   nil,
	})
}

// JSONError sends a structured error envelope
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
		"data":    nil,
		"error":   err.Error(),
	})
}
