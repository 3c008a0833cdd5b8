package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Chandana0048/campus-event-management/backend/internal/model"
)

// FeedbackRepository 评价数据访问接口
type FeedbackRepository interface {
	Create(ctx context.Context, fb *model.Feedback) error
}

type feedbackRepo struct {
	db *gorm.DB
}

// NewFeedbackRepo 创建 FeedbackRepository 实例
func NewFeedbackRepo(db *gorm.DB) FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, fb *model.Feedback) error {
	return r.db.WithContext(ctx).Create(fb).Error
}
