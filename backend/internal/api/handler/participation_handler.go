package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Chandana0048/campus-event-management/backend/internal/dto"
	"github.com/Chandana0048/campus-event-management/backend/internal/service"
	"github.com/Chandana0048/campus-event-management/backend/pkg/response"
)

// ParticipationHandler 报名、签到、评价 HTTP 处理器
type ParticipationHandler struct {
	participationSvc service.ParticipationService
}

// NewParticipationHandler 创建 ParticipationHandler
func NewParticipationHandler(participationSvc service.ParticipationService) *ParticipationHandler {
	return &ParticipationHandler{participationSvc: participationSvc}
}

// Register 学生报名活动
// POST /api/v1/events/:id/register
func (h *ParticipationHandler) Register(c *gin.Context) {
	eventID, ok := MustGetIDParam(c, "id", "活动")
	if !ok {
		return
	}

	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	reg, err := h.participationSvc.Register(c.Request.Context(), eventID, &req)
	if err != nil {
		h.handleParticipationError(c, err)
		return
	}

	response.Created(c, reg)
}

// MarkAttendance 活动签到
// POST /api/v1/events/:id/attendance
func (h *ParticipationHandler) MarkAttendance(c *gin.Context) {
	eventID, ok := MustGetIDParam(c, "id", "活动")
	if !ok {
		return
	}

	var req dto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	att, err := h.participationSvc.MarkAttendance(c.Request.Context(), eventID, &req)
	if err != nil {
		h.handleParticipationError(c, err)
		return
	}

	response.Created(c, att)
}

// SubmitFeedback 提交活动评价
// POST /api/v1/events/:id/feedback
func (h *ParticipationHandler) SubmitFeedback(c *gin.Context) {
	eventID, ok := MustGetIDParam(c, "id", "活动")
	if !ok {
		return
	}

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	fb, err := h.participationSvc.SubmitFeedback(c.Request.Context(), eventID, &req)
	if err != nil {
		h.handleParticipationError(c, err)
		return
	}

	response.Created(c, fb)
}

// handleParticipationError 统一处理报名/签到/评价业务错误
func (h *ParticipationHandler) handleParticipationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateRegistration):
		response.Conflict(c, 23001, "该学生已报名此活动")
	case errors.Is(err, service.ErrInvalidRating):
		response.BadRequest(c, 23002, "评分必须在 1-5 之间")
	case errors.Is(err, service.ErrCommentTooLong):
		response.BadRequest(c, 23003, "评价内容不能超过 500 字")
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 22001, "活动不存在")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 21001, "学生不存在")
	case errors.Is(err, service.ErrReferenceNotFound):
		response.NotFound(c, 23004, "关联的活动或学生不存在")
	default:
		response.InternalError(c)
	}
}
