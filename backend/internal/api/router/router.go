package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Chandana0048/campus-event-management/backend/config"
	"github.com/Chandana0048/campus-event-management/backend/internal/api/handler"
	"github.com/Chandana0048/campus-event-management/backend/internal/api/middleware"
	"github.com/Chandana0048/campus-event-management/backend/pkg/metrics"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时写接口限流使用进程内令牌桶
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	m *metrics.Metrics,
	limiter middleware.WindowLimiter,
	db *gorm.DB,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Request.Context())
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── 指标 ──
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// 写接口限流
	write := func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled {
		write = middleware.RateLimit(limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window, logger)
	}

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 学院模块
		colleges := v1.Group("/colleges")
		{
			colleges.POST("", write, h.College.CreateCollege)
			colleges.GET("/:id", h.College.GetCollege)
		}

		// 学生模块
		students := v1.Group("/students")
		{
			students.POST("", write, h.Student.CreateStudent)
			students.GET("/:id", h.Student.GetStudent)
		}

		// 活动模块（含报名、签到、评价）
		events := v1.Group("/events")
		{
			events.GET("", h.Event.ListEvents)
			events.POST("", write, h.Event.CreateEvent)
			events.GET("/:id", h.Event.GetEvent)
			events.POST("/:id/register", write, h.Participation.Register)
			events.POST("/:id/attendance", write, h.Participation.MarkAttendance)
			events.POST("/:id/feedback", write, h.Participation.SubmitFeedback)
		}

		// 报表模块
		reports := v1.Group("/reports")
		{
			reports.GET("/event-popularity", h.Report.EventPopularity)
			reports.GET("/student-participation", h.Report.StudentParticipation)
			reports.GET("/top-active-students", h.Report.TopActiveStudents)
			reports.GET("/export", h.Report.Export)
		}
	}

	return r
}
