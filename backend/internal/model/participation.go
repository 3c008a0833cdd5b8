package model

import "time"

// Registration 活动报名表 — 对应 registrations
// (event_id, student_id) 唯一，由存储层约束 uq_registrations_event_student 保证
type Registration struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"                        json:"id"`
	EventID      uint      `gorm:"not null;uniqueIndex:uq_registrations_event_student" json:"event_id"`
	StudentID    uint      `gorm:"not null;uniqueIndex:uq_registrations_event_student;index" json:"student_id"`
	RegisteredAt time.Time `gorm:"not null;autoCreateTime"                         json:"registered_at"`
}

// TableName 指定表名
func (Registration) TableName() string { return "registrations" }

// Attendance 签到表 — 对应 attendance
// 同一学生可对同一活动多次签到，不设唯一约束
type Attendance struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID    uint      `gorm:"not null;index"           json:"event_id"`
	StudentID  uint      `gorm:"not null;index"           json:"student_id"`
	AttendedAt time.Time `gorm:"not null;autoCreateTime"  json:"attended_at"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendance" }

// Feedback 活动评价表 — 对应 feedback
type Feedback struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"                                  json:"id"`
	EventID     uint      `gorm:"not null;index"                                            json:"event_id"`
	StudentID   uint      `gorm:"not null;index"                                            json:"student_id"`
	Rating      int       `gorm:"not null;check:chk_feedback_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment     *string   `gorm:"type:varchar(500)"                                         json:"comment"`
	SubmittedAt time.Time `gorm:"not null;autoCreateTime"                                   json:"submitted_at"`
}

// TableName 指定表名
func (Feedback) TableName() string { return "feedback" }
