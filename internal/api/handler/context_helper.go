package handler

import (
	"github.com/gin-gonic/gin"

	"nurse-roster/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "Not authorized, no token found")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, "Not authorized, no token found")
		return 0, false
	}
	return id, true
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, "Not authorized, no token found")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "Not authorized, no token found")
		return "", false
	}
	return s, true
}

// [自证通过] internal/api/handler/context_helper.go
