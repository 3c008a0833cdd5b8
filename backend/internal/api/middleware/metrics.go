package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chandana0048/campus-event-management/backend/pkg/metrics"
)

// Metrics HTTP 请求指标中间件
// path 取路由模板（如 /api/v1/events/:id），未匹配路由统一记为 unmatched
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
