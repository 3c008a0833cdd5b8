package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Chandana0048/campus-event-management/backend/internal/model"
)

// RegistrationRepository 报名数据访问接口
type RegistrationRepository interface {
	Create(ctx context.Context, reg *model.Registration) error
	GetByEventAndStudent(ctx context.Context, eventID, studentID uint) (*model.Registration, error)
}

type registrationRepo struct {
	db *gorm.DB
}

// NewRegistrationRepo 创建 RegistrationRepository 实例
func NewRegistrationRepo(db *gorm.DB) RegistrationRepository {
	return &registrationRepo{db: db}
}

// Create 插入报名记录；(event_id, student_id) 重复时返回存储层唯一约束错误
func (r *registrationRepo) Create(ctx context.Context, reg *model.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepo) GetByEventAndStudent(ctx context.Context, eventID, studentID uint) (*model.Registration, error) {
	var reg model.Registration
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND student_id = ?", eventID, studentID).
		First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}
