package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/middleware"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/service"
	appErrors "github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/errors"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/response"
)

// AnalyticsHandler exposes course-wide metric endpoints.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs the analytics handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Course godoc
// @Summary Course-wide analytics
// @Tags Analytics
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/analytics [get]
func (h *AnalyticsHandler) Course(c *gin.Context) {
	if h.analytics == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	analytics, cacheHit, err := h.analytics.CourseAnalytics(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = make(map[string]interface{})
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, analytics, nil, meta)
}

// System returns instrumentation metrics snapshots.
func (h *AnalyticsHandler) System(c *gin.Context) {
	if h.analytics == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	metrics := h.analytics.SystemMetrics()
	middleware.SetCacheHit(c, false)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = make(map[string]interface{})
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, metrics, nil, meta)
}
