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

// ProgressHandler exposes per-student and course-wide progress endpoints.
type ProgressHandler struct {
	progress *service.ProgressService
}

// NewProgressHandler constructs the progress handler.
func NewProgressHandler(progress *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// Student godoc
// @Summary Student progress within a course
// @Tags Progress
// @Produce json
// @Param courseId path string true "Course ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/students/{studentId}/progress [get]
func (h *ProgressHandler) Student(c *gin.Context) {
	if h.progress == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	progress, cacheHit, err := h.progress.StudentProgress(c.Request.Context(), c.Param("studentId"), c.Param("courseId"))
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
	response.JSON(c, http.StatusOK, progress, nil, meta)
}

// Course godoc
// @Summary Progress snapshots for every enrolled student
// @Tags Progress
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/progress [get]
func (h *ProgressHandler) Course(c *gin.Context) {
	if h.progress == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	snapshots, cacheHit, err := h.progress.CourseProgress(c.Request.Context(), c.Param("courseId"))
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
	response.JSON(c, http.StatusOK, snapshots, nil, meta)
}
