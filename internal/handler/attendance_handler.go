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

// AttendanceHandler exposes attendance summary endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs the attendance handler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// Student godoc
// @Summary Attendance statistics for one student
// @Tags Attendance
// @Produce json
// @Param courseId path string true "Course ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/students/{studentId}/attendance [get]
func (h *AttendanceHandler) Student(c *gin.Context) {
	if h.attendance == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	stats, cacheHit, err := h.attendance.StudentStats(c.Request.Context(), c.Param("studentId"), c.Param("courseId"))
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
	response.JSON(c, http.StatusOK, stats, nil, meta)
}

// Course godoc
// @Summary Per-student attendance summary for a course
// @Tags Attendance
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/attendance [get]
func (h *AttendanceHandler) Course(c *gin.Context) {
	if h.attendance == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	summary, cacheHit, err := h.attendance.CourseSummary(c.Request.Context(), c.Param("courseId"))
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
	response.JSON(c, http.StatusOK, summary, nil, meta)
}
