package dto

// GradeSubmissionRequest captures POST /courses/:courseId/assignments/:assignmentId/grade payload.
// Grade is the instructor-assigned raw score; the late-penalty adjustment is
// computed and stored server-side.
type GradeSubmissionRequest struct {
	StudentID string  `json:"studentId" binding:"required" validate:"required"`
	Grade     float64 `json:"grade" binding:"gte=0" validate:"gte=0"`
}

// GradeSubmissionResponse reports the stored grading outcome.
type GradeSubmissionResponse struct {
	StudentID     string  `json:"studentId"`
	AssignmentID  string  `json:"assignmentId"`
	Grade         float64 `json:"grade"`
	AdjustedGrade float64 `json:"adjustedGrade"`
	Status        string  `json:"status"`
	GradedAt      string  `json:"gradedAt"`
}
