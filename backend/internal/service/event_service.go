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

// EventService 活动业务接口
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.EventResponse, error)
	List(ctx context.Context, req *dto.EventListRequest) ([]dto.EventListItem, error)
}

type eventService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService 创建 EventService 实例
func NewEventService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	event := &model.Event{
		Title:           req.Title,
		Description:     req.Description,
		EventType:       req.EventType,
		Date:            req.Date,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		CollegeID:       req.CollegeID,
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
		return tx.Event.Create(ctx, event)
	})
	if err != nil {
		if isBusinessError(err) {
			return nil, err
		}
		if pkgerrors.IsForeignKeyViolation(err) {
			return nil, classify(ErrCollegeNotFound, ErrReferenceNotFound)
		}
		s.logger.Error("创建活动失败", zap.String("title", req.Title), zap.Error(err))
		return nil, err
	}

	return toEventResponse(event), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *eventService) GetByID(ctx context.Context, id uint) (*dto.EventResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查询活动失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if event == nil {
		return nil, classify(ErrEventNotFound, ErrNotFound)
	}

	return toEventResponse(event), nil
}

// ────────────────────── List ──────────────────────

// List 按日期倒序返回活动及其报名、签到、评分统计
func (s *eventService) List(ctx context.Context, req *dto.EventListRequest) ([]dto.EventListItem, error) {
	events, err := s.repo.Event.ListWithStats(ctx, repository.EventFilter{
		CollegeID: req.CollegeID,
		EventType: req.EventType,
	})
	if err != nil {
		s.logger.Error("列出活动失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EventListItem, 0, len(events))
	for i := range events {
		result = append(result, dto.EventListItem{
			EventResponse:     *toEventResponse(&events[i].Event),
			RegistrationCount: events[i].RegistrationCount,
			AttendanceCount:   events[i].AttendanceCount,
			AvgRating:         events[i].AvgRating,
		})
	}
	return result, nil
}

// ────────────────────── 内部方法 ──────────────────────

func toEventResponse(e *model.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		EventType:       e.EventType,
		Date:            e.Date.Format(time.RFC3339),
		Location:        e.Location,
		MaxParticipants: e.MaxParticipants,
		CollegeID:       e.CollegeID,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}
