package dto

// ── 报名 / 签到 / 评价 DTO ──

// RegistrationRequest 报名请求，活动 ID 取自路径
type RegistrationRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
}

// AttendanceRequest 签到请求
type AttendanceRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
}

// FeedbackRequest 评价请求
// rating 的 1-5 范围由业务层校验，以便返回专用错误码
type FeedbackRequest struct {
	StudentID uint    `json:"student_id" binding:"required"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
}

// RegistrationResponse 报名记录响应
type RegistrationResponse struct {
	ID           uint   `json:"id"`
	EventID      uint   `json:"event_id"`
	StudentID    uint   `json:"student_id"`
	RegisteredAt string `json:"registered_at"`
}

// AttendanceResponse 签到记录响应
type AttendanceResponse struct {
	ID         uint   `json:"id"`
	EventID    uint   `json:"event_id"`
	StudentID  uint   `json:"student_id"`
	AttendedAt string `json:"attended_at"`
}

// FeedbackResponse 评价记录响应
type FeedbackResponse struct {
	ID          uint    `json:"id"`
	EventID     uint    `json:"event_id"`
	StudentID   uint    `json:"student_id"`
	Rating      int     `json:"rating"`
	Comment     *string `json:"comment"`
	SubmittedAt string  `json:"submitted_at"`
}
