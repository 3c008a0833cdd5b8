package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Chandana0048/campus-event-management/backend/internal/model"
)

// AttendanceRepository 签到数据访问接口
type AttendanceRepository interface {
	Create(ctx context.Context, att *model.Attendance) error
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}
