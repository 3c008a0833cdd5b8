package dto

// ── 学生模块 DTO ──

// CreateStudentRequest 创建学生请求
// student_id 为学号（业务编号），与数据库自增主键 id 区分
type CreateStudentRequest struct {
	Name      string `json:"name"       binding:"required,max=200"`
	Email     string `json:"email"      binding:"required,email,max=200"`
	StudentID string `json:"student_id" binding:"required,max=50"`
	CollegeID *uint  `json:"college_id"`
}

// StudentResponse 学生信息响应
type StudentResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"student_id"`
	CollegeID *uint  `json:"college_id"`
	CreatedAt string `json:"created_at"`
}
