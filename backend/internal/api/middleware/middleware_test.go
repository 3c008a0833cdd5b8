package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Chandana0048/campus-event-management/backend/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubWindowLimiter struct {
	allowed bool
	err     error
	calls   int
}

func (s *stubWindowLimiter) CheckRateLimit(_ context.Context, _ string, _ int, _ time.Duration) (bool, error) {
	s.calls++
	return s.allowed, s.err
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.POST("/events/:id/register", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func doPost(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/register", strings.NewReader(body))
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_LocalFallback(t *testing.T) {
	r := newEngine(RateLimit(nil, 2, time.Minute, zap.NewNop()))

	assert.Equal(t, http.StatusCreated, doPost(r, "").Code)
	assert.Equal(t, http.StatusCreated, doPost(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doPost(r, "").Code)
}

func TestRateLimit_RedisDecision(t *testing.T) {
	store := &stubWindowLimiter{allowed: false}
	r := newEngine(RateLimit(store, 100, time.Minute, zap.NewNop()))

	assert.Equal(t, http.StatusTooManyRequests, doPost(r, "").Code)
	assert.Equal(t, 1, store.calls)
}

func TestRateLimit_RedisErrorDegrades(t *testing.T) {
	store := &stubWindowLimiter{err: errors.New("connection refused")}
	r := newEngine(RateLimit(store, 1, time.Minute, zap.NewNop()))

	assert.Equal(t, http.StatusCreated, doPost(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doPost(r, "").Code, "降级后仍按本地令牌桶限流")
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := doPost(r, "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/register", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/events/1/register", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", 65))
	r.ServeHTTP(w, req)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36, "过长的外部 ID 应被替换为 UUID")
}

func TestBodyLimit(t *testing.T) {
	r := newEngine(BodyLimit(8))

	assert.Equal(t, http.StatusCreated, doPost(r, "{}").Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, doPost(r, `{"student_id": 12345}`).Code)
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS([]string{"http://localhost:5173/"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/events/1/register", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/events/1/register", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	w := doPost(newEngine(SecurityHeaders()), "")
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	m := metrics.New()
	r := newEngine(Metrics(m))
	doPost(r, "")

	families, err := m.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() != "campus_http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "path" && lp.GetValue() == "/events/:id/register" {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "应按路由模板记录 path 标签")
}
