package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Chandana0048/campus-event-management/backend/internal/dto"
	"github.com/Chandana0048/campus-event-management/backend/internal/service"
	"github.com/Chandana0048/campus-event-management/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler 报表模块 HTTP 处理器
type ReportHandler struct {
	reportSvc    service.ReportService
	defaultLimit int
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService, defaultLimit int) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, defaultLimit: defaultLimit}
}

// EventPopularity 活动热度报表
// GET /api/v1/reports/event-popularity
func (h *ReportHandler) EventPopularity(c *gin.Context) {
	items, err := h.reportSvc.EventPopularity(c.Request.Context())
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// StudentParticipation 学生参与度报表
// GET /api/v1/reports/student-participation
func (h *ReportHandler) StudentParticipation(c *gin.Context) {
	items, err := h.reportSvc.StudentParticipation(c.Request.Context())
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// TopActiveStudents 活跃学生排行
// GET /api/v1/reports/top-active-students?limit=10
func (h *ReportHandler) TopActiveStudents(c *gin.Context) {
	limit, ok := h.bindLimit(c)
	if !ok {
		return
	}

	items, err := h.reportSvc.TopActiveStudents(c.Request.Context(), limit)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// Export 导出三张报表为 Excel
// GET /api/v1/reports/export?limit=10
func (h *ReportHandler) Export(c *gin.Context) {
	limit, ok := h.bindLimit(c)
	if !ok {
		return
	}

	buf, filename, err := h.reportSvc.Export(c.Request.Context(), limit)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// bindLimit 未传 limit 时取默认值；范围由 Service 层校验
func (h *ReportHandler) bindLimit(c *gin.Context) (int, bool) {
	var req dto.TopActiveStudentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "limit 必须为整数")
		return 0, false
	}
	if req.Limit == nil {
		return h.defaultLimit, true
	}
	return *req.Limit, true
}

func (h *ReportHandler) handleReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		response.BadRequest(c, 24001, "limit 超出允许范围")
	default:
		response.InternalError(c)
	}
}
