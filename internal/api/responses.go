package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope shared by every JSON endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"Server is running"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data, Message: message})
}

func Fail(c *gin.Context, status int, errMsg string) {
	c.JSON(status, Response{Success: false, Error: errMsg})
}
