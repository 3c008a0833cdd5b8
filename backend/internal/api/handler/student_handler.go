package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Chandana0048/campus-event-management/backend/internal/dto"
	"github.com/Chandana0048/campus-event-management/backend/internal/service"
	"github.com/Chandana0048/campus-event-management/backend/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// CreateStudent 创建学生
// POST /api/v1/students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.Created(c, student)
}

// GetStudent 获取学生详情
// GET /api/v1/students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := MustGetIDParam(c, "id", "学生")
	if !ok {
		return
	}

	student, err := h.studentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// handleStudentError 统一处理学生模块业务错误
func (h *StudentHandler) handleStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 21001, "学生不存在")
	case errors.Is(err, service.ErrStudentEmailExists):
		response.Conflict(c, 21002, "该邮箱已被使用")
	case errors.Is(err, service.ErrStudentNumberExists):
		response.Conflict(c, 21003, "该学号已被使用")
	case errors.Is(err, service.ErrConstraintViolation):
		response.Conflict(c, 21004, "学生信息与已有记录冲突")
	case errors.Is(err, service.ErrCollegeNotFound):
		response.NotFound(c, 20001, "学院不存在")
	default:
		response.InternalError(c)
	}
}
