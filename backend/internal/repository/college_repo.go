package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Chandana0048/campus-event-management/backend/internal/model"
)

// CollegeRepository 学院数据访问接口
type CollegeRepository interface {
	Create(ctx context.Context, college *model.College) error
	GetByID(ctx context.Context, id uint) (*model.College, error)
}

type collegeRepo struct {
	db *gorm.DB
}

// NewCollegeRepo 创建 CollegeRepository 实例
func NewCollegeRepo(db *gorm.DB) CollegeRepository {
	return &collegeRepo{db: db}
}

func (r *collegeRepo) Create(ctx context.Context, college *model.College) error {
	return r.db.WithContext(ctx).Create(college).Error
}

// GetByID 记录不存在时返回 (nil, nil)
func (r *collegeRepo) GetByID(ctx context.Context, id uint) (*model.College, error) {
	var college model.College
	err := r.db.WithContext(ctx).First(&college, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &college, nil
}
