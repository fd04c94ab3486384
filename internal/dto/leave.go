package dto

// ── 请假模块 DTO ──

// CreateLeaveRequest 提交请假申请请求
type CreateLeaveRequest struct {
	ShiftID uint   `json:"shiftId" binding:"required"`
	Reason  string `json:"reason"  binding:"required"`
}

// LeaveRequestResponse 请假申请条目（护士长审批列表）
type LeaveRequestResponse struct {
	ID             uint   `json:"id"`
	Reason         string `json:"reason"`
	Status         string `json:"status"`
	ApprovedBy     *uint  `json:"approvedBy"`
	NurseName      string `json:"nurseName"`
	NurseEmail     string `json:"nurseEmail"`
	ShiftID        uint   `json:"shiftId"`
	ShiftDate      string `json:"shiftDate"`
	ShiftStartTime string `json:"shiftStartTime"`
	ShiftEndTime   string `json:"shiftEndTime"`
	ShiftWard      string `json:"shiftWard"`
}

// [自证通过] internal/dto/leave.go
