package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Chandana0048/campus-event-management/backend/config"
	"github.com/Chandana0048/campus-event-management/backend/internal/dto"
	"github.com/Chandana0048/campus-event-management/backend/internal/model"
	"github.com/Chandana0048/campus-event-management/backend/internal/repository"
	pkgerrors "github.com/Chandana0048/campus-event-management/backend/pkg/errors"
)

// StudentService 学生业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.StudentResponse, error)
}

type studentService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 创建学生
// 邮箱先做一次查重，并发写入下由唯一约束兜底；学号仅依赖唯一约束
func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	student := &model.Student{
		Name:          req.Name,
		Email:         req.Email,
		StudentNumber: req.StudentID,
		CollegeID:     req.CollegeID,
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if s.cfg.Feature.EnforceReferences && req.CollegeID != nil {
			college, err := tx.College.GetByID(ctx, *req.CollegeID)
			if err != nil {
				return err
			}
			if college == nil {
				return classify(ErrCollegeNotFound, ErrReferenceNotFound)
			}
		}

		existing, err := tx.Student.GetByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return classify(ErrStudentEmailExists, ErrConstraintViolation)
		}

		return tx.Student.Create(ctx, student)
	})
	if err != nil {
		return nil, s.mapWriteError(err, req)
	}

	return toStudentResponse(student), nil
}

func (s *studentService) mapWriteError(err error, req *dto.CreateStudentRequest) error {
	switch {
	case isBusinessError(err):
		return err
	case pkgerrors.IsUniqueViolation(err, repository.StudentEmailKey):
		return classify(ErrStudentEmailExists, ErrConstraintViolation)
	case pkgerrors.IsUniqueViolation(err, repository.StudentNumberKey):
		return classify(ErrStudentNumberExists, ErrConstraintViolation)
	case pkgerrors.IsAnyUniqueViolation(err):
		return ErrConstraintViolation
	case pkgerrors.IsForeignKeyViolation(err):
		return classify(ErrCollegeNotFound, ErrReferenceNotFound)
	}
	s.logger.Error("创建学生失败", zap.String("email", req.Email), zap.Error(err))
	return err
}

// ────────────────────── GetByID ──────────────────────

func (s *studentService) GetByID(ctx context.Context, id uint) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查询学生失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if student == nil {
		return nil, classify(ErrStudentNotFound, ErrNotFound)
	}

	return toStudentResponse(student), nil
}

// ────────────────────── 内部方法 ──────────────────────

func toStudentResponse(st *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:        st.ID,
		Name:      st.Name,
		Email:     st.Email,
		StudentID: st.StudentNumber,
		CollegeID: st.CollegeID,
		CreatedAt: st.CreatedAt.Format(time.RFC3339),
	}
}
