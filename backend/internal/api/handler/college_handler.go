package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Chandana0048/campus-event-management/backend/internal/dto"
	"github.com/Chandana0048/campus-event-management/backend/internal/service"
	"github.com/Chandana0048/campus-event-management/backend/pkg/response"
)

// CollegeHandler 学院模块 HTTP 处理器
type CollegeHandler struct {
	collegeSvc service.CollegeService
}

// NewCollegeHandler 创建 CollegeHandler
func NewCollegeHandler(collegeSvc service.CollegeService) *CollegeHandler {
	return &CollegeHandler{collegeSvc: collegeSvc}
}

// CreateCollege 创建学院
// POST /api/v1/colleges
func (h *CollegeHandler) CreateCollege(c *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	college, err := h.collegeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCollegeError(c, err)
		return
	}

	response.Created(c, college)
}

// GetCollege 获取学院详情
// GET /api/v1/colleges/:id
func (h *CollegeHandler) GetCollege(c *gin.Context) {
	id, ok := MustGetIDParam(c, "id", "学院")
	if !ok {
		return
	}

	college, err := h.collegeSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCollegeError(c, err)
		return
	}

	response.OK(c, college)
}

// handleCollegeError 统一处理学院模块业务错误
func (h *CollegeHandler) handleCollegeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCollegeNotFound):
		response.NotFound(c, 20001, "学院不存在")
	default:
		response.InternalError(c)
	}
}
