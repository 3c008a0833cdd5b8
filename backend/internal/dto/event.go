package dto

import "time"

// ── 活动模块 DTO ──

// CreateEventRequest 创建活动请求
// max_participants 仅作展示，报名时不校验容量
type CreateEventRequest struct {
	Title           string    `json:"title"            binding:"required,max=200"`
	Description     *string   `json:"description"      binding:"omitempty,max=1000"`
	EventType       string    `json:"event_type"       binding:"required,max=100"`
	Date            time.Time `json:"date"             binding:"required"`
	Location        string    `json:"location"         binding:"required,max=200"`
	MaxParticipants *int      `json:"max_participants" binding:"omitempty,min=1"`
	CollegeID       *uint     `json:"college_id"`
}

// EventListRequest 活动列表查询参数
type EventListRequest struct {
	CollegeID *uint  `form:"college_id"`
	EventType string `form:"event_type" binding:"omitempty,max=100"`
}

// EventResponse 活动信息响应
type EventResponse struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	EventType       string  `json:"event_type"`
	Date            string  `json:"date"`
	Location        string  `json:"location"`
	MaxParticipants *int    `json:"max_participants"`
	CollegeID       *uint   `json:"college_id"`
	CreatedAt       string  `json:"created_at"`
}

// EventListItem 活动列表项（附带统计）
type EventListItem struct {
	EventResponse
	RegistrationCount int64    `json:"registration_count"`
	AttendanceCount   int64    `json:"attendance_count"`
	AvgRating         *float64 `json:"avg_rating"`
}
