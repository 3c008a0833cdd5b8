package dto

// ── 学院模块 DTO ──

// CreateCollegeRequest 创建学院请求
type CreateCollegeRequest struct {
	Name     string `json:"name"     binding:"required,max=200"`
	Location string `json:"location" binding:"required,max=200"`
}

// CollegeResponse 学院信息响应
type CollegeResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	CreatedAt string `json:"created_at"`
}
