package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Chandana0048/campus-event-management/backend/internal/dto"
	"github.com/Chandana0048/campus-event-management/backend/internal/model"
	"github.com/Chandana0048/campus-event-management/backend/internal/repository"
)

// CollegeService 学院业务接口
type CollegeService interface {
	Create(ctx context.Context, req *dto.CreateCollegeRequest) (*dto.CollegeResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CollegeResponse, error)
}

type collegeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCollegeService 创建 CollegeService 实例
func NewCollegeService(repo *repository.Repository, logger *zap.Logger) CollegeService {
	return &collegeService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *collegeService) Create(ctx context.Context, req *dto.CreateCollegeRequest) (*dto.CollegeResponse, error) {
	college := &model.College{
		Name:     req.Name,
		Location: req.Location,
	}

	if err := s.repo.College.Create(ctx, college); err != nil {
		s.logger.Error("创建学院失败", zap.Error(err))
		return nil, err
	}

	return toCollegeResponse(college), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *collegeService) GetByID(ctx context.Context, id uint) (*dto.CollegeResponse, error) {
	college, err := s.repo.College.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查询学院失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if college == nil {
		return nil, classify(ErrCollegeNotFound, ErrNotFound)
	}

	return toCollegeResponse(college), nil
}

// ────────────────────── 内部方法 ──────────────────────

func toCollegeResponse(c *model.College) *dto.CollegeResponse {
	return &dto.CollegeResponse{
		ID:        c.ID,
		Name:      c.Name,
		Location:  c.Location,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
