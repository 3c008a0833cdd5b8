package dto

// ── 报表模块 DTO ──

// TopActiveStudentsRequest 活跃学生排行查询参数
// Limit 为空时由 Handler 填充默认值
type TopActiveStudentsRequest struct {
	Limit *int `form:"limit"`
}

// EventPopularityItem 活动热度报表行
type EventPopularityItem struct {
	EventID           uint     `json:"event_id"`
	Title             string   `json:"title"`
	EventType         string   `json:"event_type"`
	RegistrationCount int64    `json:"registration_count"`
	AttendanceCount   int64    `json:"attendance_count"`
	AvgRating         *float64 `json:"avg_rating"`
}

// StudentParticipationItem 学生参与度报表行
type StudentParticipationItem struct {
	StudentID          uint   `json:"student_id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	EventsAttended     int64  `json:"events_attended"`
	TotalRegistrations int64  `json:"total_registrations"`
}

// TopActiveStudentItem 活跃学生排行行
type TopActiveStudentItem struct {
	StudentID      uint     `json:"student_id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	EventsAttended int64    `json:"events_attended"`
	AvgRatingGiven *float64 `json:"avg_rating_given"`
}
