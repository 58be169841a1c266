package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes the standard response envelope around data.
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError writes the envelope with success=false and a message.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
