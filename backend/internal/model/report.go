package model

// ── 报表查询结果（只读，实时计算，不落库） ──

// EventPopularityRow 活动热度报表行
type EventPopularityRow struct {
	EventID           uint
	Title             string
	EventType         string
	RegistrationCount int64
	AttendanceCount   int64
	AvgRating         *float64
}

// StudentParticipationRow 学生参与度报表行
type StudentParticipationRow struct {
	StudentID          uint
	Name               string
	Email              string
	EventsAttended     int64
	TotalRegistrations int64
}

// TopActiveStudentRow 活跃学生排行报表行
type TopActiveStudentRow struct {
	StudentID      uint
	Name           string
	Email          string
	EventsAttended int64
	AvgRatingGiven *float64
}

// AllModels 返回全部持久化模型（AutoMigrate 使用，顺序即建表顺序）
func AllModels() []interface{} {
	return []interface{}{
		&College{},
		&Student{},
		&Event{},
		&Registration{},
		&Attendance{},
		&Feedback{},
	}
}
