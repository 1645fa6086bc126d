package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse là body lỗi validation: {error}
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse là body lỗi xử lý: {success:false, error}
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Success trả về payload với status 200
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created trả về payload với status 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ValidationError trả về response lỗi validation
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, FailureResponse{Error: message})
}

// ServerError trả về response lỗi server, không kèm chi tiết lỗi gốc
func ServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, FailureResponse{Error: message})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, FailureResponse{Error: "Unauthorized"})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, FailureResponse{Error: message})
}
