package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the unified success envelope.
type Response struct {
	Code    int         `json:"code"`    // 0 means success
	Message string      `json:"message"` // human-readable status
	Data    interface{} `json:"data"`
}

// ErrorResponse is the unified error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Success writes a success envelope
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error envelope
func Error(c *gin.Context, code int, message string, detail string) {
	statusCode := http.StatusInternalServerError
	if code >= 400 && code < 600 {
		statusCode = code
	}

	c.JSON(statusCode, ErrorResponse{
		Code:    code,
		Message: message,
		Detail:  detail,
	})
}
