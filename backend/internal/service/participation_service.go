package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Chandana0048/campus-event-management/backend/config"
	"github.com/Chandana0048/campus-event-management/backend/internal/dto"
	"github.com/Chandana0048/campus-event-management/backend/internal/model"
	"github.com/Chandana0048/campus-event-management/backend/internal/repository"
	pkgerrors "github.com/Chandana0048/campus-event-management/backend/pkg/errors"
	"github.com/Chandana0048/campus-event-management/backend/pkg/metrics"
)

const (
	minRating        = 1
	maxRating        = 5
	maxCommentLength = 500
)

// Recorder 业务指标采集（由 pkg/metrics 实现）
type Recorder interface {
	IncRegistration(outcome string)
	ObserveRating(rating int)
}

type noopRecorder struct{}

func (noopRecorder) IncRegistration(string) {}
func (noopRecorder) ObserveRating(int)      {}

// ParticipationService 报名、签到、评价业务接口
type ParticipationService interface {
	// Register 报名；同一学生对同一活动至多一条报名记录
	Register(ctx context.Context, eventID uint, req *dto.RegistrationRequest) (*dto.RegistrationResponse, error)
	// MarkAttendance 签到；不做重复校验
	MarkAttendance(ctx context.Context, eventID uint, req *dto.AttendanceRequest) (*dto.AttendanceResponse, error)
	// SubmitFeedback 提交评价；评分 1-5
	SubmitFeedback(ctx context.Context, eventID uint, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
}

type participationService struct {
	cfg      *config.Config
	repo     *repository.Repository
	recorder Recorder
	logger   *zap.Logger
}

// NewParticipationService 创建 ParticipationService 实例
func NewParticipationService(cfg *config.Config, repo *repository.Repository, recorder Recorder, logger *zap.Logger) ParticipationService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &participationService{cfg: cfg, repo: repo, recorder: recorder, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Register
// ════════════════════════════════════════════════════════════
//
// 事务内：校验关联 → 查询已有报名 → 插入
// 并发请求同时通过查询时，由唯一约束 uq_registrations_event_student 拦截后到者

func (s *participationService) Register(ctx context.Context, eventID uint, req *dto.RegistrationRequest) (*dto.RegistrationResponse, error) {
	reg := &model.Registration{
		EventID:   eventID,
		StudentID: req.StudentID,
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := s.checkReferences(ctx, tx, eventID, req.StudentID); err != nil {
			return err
		}

		existing, err := tx.Registration.GetByEventAndStudent(ctx, eventID, req.StudentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicateRegistration
		}

		return tx.Registration.Create(ctx, reg)
	})
	if err != nil {
		if pkgerrors.IsUniqueViolation(err, repository.RegistrationPairKey) {
			err = ErrDuplicateRegistration
		}
		switch {
		case errors.Is(err, ErrDuplicateRegistration):
			s.recorder.IncRegistration(metrics.RegistrationDuplicate)
		case isBusinessError(err):
			s.recorder.IncRegistration(metrics.RegistrationRejected)
		}
		return nil, s.mapWriteError(err, "报名失败", eventID, req.StudentID)
	}

	s.recorder.IncRegistration(metrics.RegistrationCreated)
	return &dto.RegistrationResponse{
		ID:           reg.ID,
		EventID:      reg.EventID,
		StudentID:    reg.StudentID,
		RegisteredAt: reg.RegisteredAt.Format(time.RFC3339),
	}, nil
}

// ════════════════════════════════════════════════════════════
// MarkAttendance
// ════════════════════════════════════════════════════════════

func (s *participationService) MarkAttendance(ctx context.Context, eventID uint, req *dto.AttendanceRequest) (*dto.AttendanceResponse, error) {
	att := &model.Attendance{
		EventID:   eventID,
		StudentID: req.StudentID,
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := s.checkReferences(ctx, tx, eventID, req.StudentID); err != nil {
			return err
		}
		return tx.Attendance.Create(ctx, att)
	})
	if err != nil {
		return nil, s.mapWriteError(err, "签到失败", eventID, req.StudentID)
	}

	return &dto.AttendanceResponse{
		ID:         att.ID,
		EventID:    att.EventID,
		StudentID:  att.StudentID,
		AttendedAt: att.AttendedAt.Format(time.RFC3339),
	}, nil
}

// ════════════════════════════════════════════════════════════
// SubmitFeedback
// ════════════════════════════════════════════════════════════

func (s *participationService) SubmitFeedback(ctx context.Context, eventID uint, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	// 评分与评价长度在访问存储前校验
	if req.Rating < minRating || req.Rating > maxRating {
		return nil, ErrInvalidRating
	}
	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > maxCommentLength {
		return nil, classify(ErrCommentTooLong, ErrInvalidArgument)
	}

	fb := &model.Feedback{
		EventID:   eventID,
		StudentID: req.StudentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := s.checkReferences(ctx, tx, eventID, req.StudentID); err != nil {
			return err
		}
		return tx.Feedback.Create(ctx, fb)
	})
	if err != nil {
		if pkgerrors.IsCheckViolation(err) {
			return nil, ErrInvalidRating
		}
		return nil, s.mapWriteError(err, "提交评价失败", eventID, req.StudentID)
	}

	s.recorder.ObserveRating(fb.Rating)
	return &dto.FeedbackResponse{
		ID:          fb.ID,
		EventID:     fb.EventID,
		StudentID:   fb.StudentID,
		Rating:      fb.Rating,
		Comment:     fb.Comment,
		SubmittedAt: fb.SubmittedAt.Format(time.RFC3339),
	}, nil
}

// ────────────────────── 内部方法 ──────────────────────

// checkReferences 校验活动与学生存在（feature.enforce_references 关闭时跳过）
func (s *participationService) checkReferences(ctx context.Context, tx *repository.Repository, eventID, studentID uint) error {
	if !s.cfg.Feature.EnforceReferences {
		return nil
	}

	event, err := tx.Event.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return classify(ErrEventNotFound, ErrReferenceNotFound)
	}

	student, err := tx.Student.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if student == nil {
		return classify(ErrStudentNotFound, ErrReferenceNotFound)
	}
	return nil
}

func (s *participationService) mapWriteError(err error, msg string, eventID, studentID uint) error {
	if isBusinessError(err) {
		return err
	}
	if pkgerrors.IsForeignKeyViolation(err) {
		return ErrReferenceNotFound
	}
	s.logger.Error(msg,
		zap.Uint("event_id", eventID),
		zap.Uint("student_id", studentID),
		zap.Error(err),
	)
	return err
}
