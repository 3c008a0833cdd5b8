package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Chandana0048/campus-event-management/backend/internal/model"
)

// ReportRepository 报表查询接口（只读，每次调用实时聚合）
// 排序字段相同的行之间顺序不保证
type ReportRepository interface {
	EventPopularity(ctx context.Context) ([]model.EventPopularityRow, error)
	StudentParticipation(ctx context.Context) ([]model.StudentParticipationRow, error)
	TopActiveStudents(ctx context.Context, limit int) ([]model.TopActiveStudentRow, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo 创建 ReportRepository 实例
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

// ────── Event Popularity ──────

func (r *reportRepo) EventPopularity(ctx context.Context) ([]model.EventPopularityRow, error) {
	var rows []model.EventPopularityRow
	err := r.db.WithContext(ctx).
		Table("events e").
		Select(`e.id AS event_id, e.title, e.event_type,
			COALESCE(r.cnt, 0) AS registration_count,
			COALESCE(a.cnt, 0) AS attendance_count,
			f.avg_rating AS avg_rating`).
		Joins("LEFT JOIN (?) r ON r.event_id = e.id", countBy(r.db, "registrations", "event_id")).
		Joins("LEFT JOIN (?) a ON a.event_id = e.id", countBy(r.db, "attendance", "event_id")).
		Joins("LEFT JOIN (?) f ON f.event_id = e.id", avgRatingBy(r.db, "event_id", "avg_rating")).
		Order("registration_count DESC").
		Scan(&rows).Error
	return rows, err
}

// ────── Student Participation ──────

func (r *reportRepo) StudentParticipation(ctx context.Context) ([]model.StudentParticipationRow, error) {
	var rows []model.StudentParticipationRow
	err := r.db.WithContext(ctx).
		Table("students s").
		Select(`s.id AS student_id, s.name, s.email,
			COALESCE(a.cnt, 0) AS events_attended,
			COALESCE(r.cnt, 0) AS total_registrations`).
		Joins("LEFT JOIN (?) a ON a.student_id = s.id", countBy(r.db, "attendance", "student_id")).
		Joins("LEFT JOIN (?) r ON r.student_id = s.id", countBy(r.db, "registrations", "student_id")).
		Order("events_attended DESC").
		Scan(&rows).Error
	return rows, err
}

// ────── Top Active Students ──────

// TopActiveStudents limit 由调用方校验，这里不做截断修正
func (r *reportRepo) TopActiveStudents(ctx context.Context, limit int) ([]model.TopActiveStudentRow, error) {
	var rows []model.TopActiveStudentRow
	err := r.db.WithContext(ctx).
		Table("students s").
		Select(`s.id AS student_id, s.name, s.email,
			COALESCE(a.cnt, 0) AS events_attended,
			f.avg_rating_given AS avg_rating_given`).
		Joins("LEFT JOIN (?) a ON a.student_id = s.id", countBy(r.db, "attendance", "student_id")).
		Joins("LEFT JOIN (?) f ON f.student_id = s.id", avgRatingBy(r.db, "student_id", "avg_rating_given")).
		Order("events_attended DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
