package controllers

import "github.com/gin-gonic/gin"

// envelope is the uniform JSON body every endpoint returns.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors"`
}

func RespondOK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, envelope{
		Success: true,
		Message: message,
		Data:    data,
		Errors:  []string{},
	})
}

func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{
		Success: false,
		Message: message,
		Errors:  []string{},
	})
}

// AbortError is RespondError for middleware, stopping the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, envelope{
		Success: false,
		Message: message,
		Errors:  []string{},
	})
}
