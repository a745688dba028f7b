package utils

import (
	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint answers with: either a payload
// under data, or an error code/message pair. Keeping one shape means clients
// branch on success alone.
type APIResponse[T any] struct {
	Success   bool   `json:"success"`
	Data      T      `json:"data,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
	ErrorMsg  string `json:"error_msg,omitempty"`
}

// RespondSuccess writes a success envelope carrying data.
func RespondSuccess[T any](c *gin.Context, statusCode int, data T) {
	c.JSON(statusCode, APIResponse[T]{
		Success: true,
		Data:    data,
	})
}

// RespondError writes an error envelope and aborts the handler chain so no
// later middleware or handler runs for the request.
func RespondError(c *gin.Context, status int, errorCode, errorMsg string) {
	c.AbortWithStatusJSON(status, APIResponse[any]{
		Success:   false,
		ErrorCode: errorCode,
		ErrorMsg:  errorMsg,
	})
}
