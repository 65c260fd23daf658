package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/dto"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/service"
	appErrors "github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/errors"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/response"
)

// GradingHandler exposes the grading write endpoint.
type GradingHandler struct {
	grading *service.GradingService
}

// NewGradingHandler constructs the grading handler.
func NewGradingHandler(grading *service.GradingService) *GradingHandler {
	return &GradingHandler{grading: grading}
}

// Grade godoc
// @Summary Grade a submission
// @Tags Grading
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param assignmentId path string true "Assignment ID"
// @Param payload body dto.GradeSubmissionRequest true "Grading payload"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/assignments/{assignmentId}/grade [post]
func (h *GradingHandler) Grade(c *gin.Context) {
	if h.grading == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.GradeSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grading payload"))
		return
	}
	result, err := h.grading.Grade(c.Request.Context(), c.Param("courseId"), c.Param("assignmentId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
