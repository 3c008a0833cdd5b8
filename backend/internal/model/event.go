package model

import "time"

// Event 活动表 — 对应 events
// MaxParticipants 仅作展示，报名时不做容量校验
type Event struct {
	BaseModel
	Title           string    `gorm:"type:varchar(200);not null"        json:"title"`
	Description     *string   `gorm:"type:varchar(1000)"                json:"description"`
	EventType       string    `gorm:"type:varchar(100);not null;index"  json:"event_type"`
	Date            time.Time `gorm:"not null;index"                    json:"date"`
	Location        string    `gorm:"type:varchar(200);not null"        json:"location"`
	MaxParticipants *int      `                                         json:"max_participants"`
	CollegeID       *uint     `gorm:"index"                             json:"college_id"`
}

// TableName 指定表名
func (Event) TableName() string { return "events" }

// EventWithStats 活动列表查询结果（附带报名/签到/评分统计）
type EventWithStats struct {
	Event
	RegistrationCount int64    `json:"registration_count"`
	AttendanceCount   int64    `json:"attendance_count"`
	AvgRating         *float64 `json:"avg_rating"`
}
