package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Chandana0048/campus-event-management/backend/internal/model"
)

// EventFilter 活动列表过滤条件，零值表示不过滤
type EventFilter struct {
	CollegeID *uint
	EventType string
}

// EventRepository 活动数据访问接口
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id uint) (*model.Event, error)
	ListWithStats(ctx context.Context, filter EventFilter) ([]model.EventWithStats, error)
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo 创建 EventRepository 实例
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListWithStats 按日期倒序列出活动，并附带报名数、签到数与平均评分
func (r *eventRepo) ListWithStats(ctx context.Context, filter EventFilter) ([]model.EventWithStats, error) {
	var events []model.EventWithStats

	db := r.db.WithContext(ctx).
		Table("events e").
		Select(`e.*,
			COALESCE(r.cnt, 0) AS registration_count,
			COALESCE(a.cnt, 0) AS attendance_count,
			f.avg_rating AS avg_rating`).
		Joins("LEFT JOIN (?) r ON r.event_id = e.id", r.countByEvent("registrations")).
		Joins("LEFT JOIN (?) a ON a.event_id = e.id", r.countByEvent("attendance")).
		Joins("LEFT JOIN (?) f ON f.event_id = e.id", avgRatingBy(r.db, "event_id", "avg_rating"))

	if filter.CollegeID != nil {
		db = db.Where("e.college_id = ?", *filter.CollegeID)
	}
	if filter.EventType != "" {
		db = db.Where("e.event_type = ?", filter.EventType)
	}

	err := db.Order("e.date DESC").Scan(&events).Error
	return events, err
}

func (r *eventRepo) countByEvent(table string) *gorm.DB {
	return countBy(r.db, table, "event_id")
}

// ── 派生表 ──
// 每个聚合在独立子查询中先 GROUP BY 再与主表关联，避免多表 JOIN 造成行数相乘

// countBy SELECT <key>, COUNT(*) AS cnt FROM <table> GROUP BY <key>
func countBy(db *gorm.DB, table, key string) *gorm.DB {
	return db.Table(table).
		Select(key + ", COUNT(*) AS cnt").
		Group(key)
}

// avgRatingBy SELECT <key>, AVG(rating) AS <alias> FROM feedback GROUP BY <key>
func avgRatingBy(db *gorm.DB, key, alias string) *gorm.DB {
	return db.Table("feedback").
		Select(key + ", CAST(AVG(rating) AS DOUBLE PRECISION) AS " + alias).
		Group(key)
}
