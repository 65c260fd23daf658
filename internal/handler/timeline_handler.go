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

// TimelineHandler exposes the per-student performance timeline.
type TimelineHandler struct {
	timeline *service.TimelineService
}

// NewTimelineHandler constructs the timeline handler.
func NewTimelineHandler(timeline *service.TimelineService) *TimelineHandler {
	return &TimelineHandler{timeline: timeline}
}

// Student godoc
// @Summary Chronological performance timeline for one student
// @Tags Timeline
// @Produce json
// @Param courseId path string true "Course ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/students/{studentId}/timeline [get]
func (h *TimelineHandler) Student(c *gin.Context) {
	if h.timeline == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	timeline, cacheHit, err := h.timeline.PerformanceTimeline(c.Request.Context(), c.Param("studentId"), c.Param("courseId"))
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
	response.JSON(c, http.StatusOK, timeline, nil, meta)
}
