package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/export"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/storage"
)

type courseAnalyticsProvider interface {
	CourseAnalytics(ctx context.Context, courseID string) (*models.CourseAnalytics, bool, error)
}

type courseProgressProvider interface {
	CourseProgress(ctx context.Context, courseID string) ([]models.StudentProgress, bool, error)
}

type courseAttendanceProvider interface {
	CourseSummary(ctx context.Context, courseID string) (*models.CourseAttendanceSummary, bool, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	RelativePath string
	Token        string
	URL          string
	Format       models.ReportFormat
	ExpiresAt    time.Time
}

// ExportService builds report datasets from the aggregated metrics and
// persists rendered files.
type ExportService struct {
	analytics  courseAnalyticsProvider
	progress   courseProgressProvider
	attendance courseAttendanceProvider
	storage    fileStorage
	csv        csvRenderer
	pdf        pdfRenderer
	signer     *storage.SignedURLSigner
	logger     *zap.Logger
	cfg        ExportConfig
}

// NewExportService constructs an ExportService.
func NewExportService(analytics courseAnalyticsProvider, progress courseProgressProvider, attendance courseAttendanceProvider, store fileStorage, signer *storage.SignedURLSigner, cfg ExportConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		analytics:  analytics,
		progress:   progress,
		attendance: attendance,
		storage:    store,
		csv:        csv,
		pdf:        pdf,
		signer:     signer,
		logger:     logger,
		cfg:        cfg,
	}
}

// Generate builds the dataset according to the job definition and stores the
// rendered export.
func (s *ExportService) Generate(ctx context.Context, job *models.ReportJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}
	dataset, title, err := s.buildDataset(ctx, job)
	if err != nil {
		return nil, err
	}

	var payload []byte
	switch job.Params.Format {
	case models.ReportFormatCSV:
		payload, err = s.csv.Render(dataset)
	case models.ReportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
	default:
		err = fmt.Errorf("unsupported format %s", job.Params.Format)
	}
	if err != nil {
		return nil, err
	}

	filename := s.buildFilename(job)
	relPath, err := s.storage.Save(filename, payload)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.signer.Generate(job.ID, relPath)
	if err != nil {
		return nil, err
	}
	signedURL := strings.TrimRight(s.cfg.APIPrefix, "/")
	if signedURL == "" {
		signedURL = "/api/v1"
	}
	signedURL = fmt.Sprintf("%s/export/%s", signedURL, token)

	return &ExportResult{
		RelativePath: relPath,
		Token:        token,
		URL:          signedURL,
		Format:       job.Params.Format,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseToken validates download token metadata.
func (s *ExportService) ParseToken(token string, allowExpired bool) (jobID, relPath string, expiresAt time.Time, err error) {
	return s.signer.Parse(token, allowExpired)
}

// Open returns a handle to the stored file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Delete removes a stored export file.
func (s *ExportService) Delete(relPath string) error {
	return s.storage.Delete(relPath)
}

// Cleanup removes files older than ttl (defaults to configured ResultTTL when ttl <= 0).
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) buildFilename(job *models.ReportJob) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	coursePart := sanitizeFilename(job.Params.CourseID)
	return fmt.Sprintf("%s_%s_%s.%s", strings.ToLower(string(job.Type)), coursePart, timestamp, job.Params.Format)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}

func (s *ExportService) buildDataset(ctx context.Context, job *models.ReportJob) (export.Dataset, string, error) {
	switch job.Type {
	case models.ReportTypeCourseAnalytics:
		return s.buildAnalyticsDataset(ctx, job.Params)
	case models.ReportTypeCourseProgress:
		return s.buildProgressDataset(ctx, job.Params)
	case models.ReportTypeAttendance:
		return s.buildAttendanceDataset(ctx, job.Params)
	default:
		return export.Dataset{}, "", fmt.Errorf("unsupported report type %s", job.Type)
	}
}

func (s *ExportService) buildAnalyticsDataset(ctx context.Context, params models.ReportJobParams) (export.Dataset, string, error) {
	analytics, _, err := s.analytics.CourseAnalytics(ctx, params.CourseID)
	if err != nil {
		return export.Dataset{}, "", err
	}
	rows := []map[string]string{
		{"Metric": "Total Enrolled", "Value": fmt.Sprintf("%d", analytics.TotalEnrolled)},
		{"Metric": "Active Students", "Value": fmt.Sprintf("%d", analytics.ActiveStudents)},
		{"Metric": "Average Completion Rate", "Value": fmt.Sprintf("%.2f", analytics.AverageCompletionRate)},
		{"Metric": "Average Assignment Score", "Value": fmt.Sprintf("%.2f", analytics.AverageAssignmentScore)},
		{"Metric": "Average Attendance Rate", "Value": fmt.Sprintf("%.2f", analytics.AverageAttendanceRate)},
		{"Metric": "Avg Time Per Student (hours)", "Value": fmt.Sprintf("%.2f", analytics.AvgTimePerStudentHours)},
		{"Metric": "Grades A", "Value": fmt.Sprintf("%d", analytics.GradeDistribution.A)},
		{"Metric": "Grades B", "Value": fmt.Sprintf("%d", analytics.GradeDistribution.B)},
		{"Metric": "Grades C", "Value": fmt.Sprintf("%d", analytics.GradeDistribution.C)},
		{"Metric": "Grades D", "Value": fmt.Sprintf("%d", analytics.GradeDistribution.D)},
		{"Metric": "Grades F", "Value": fmt.Sprintf("%d", analytics.GradeDistribution.F)},
		{"Metric": "Most Active Module", "Value": deref(analytics.MostActiveModuleID)},
		{"Metric": "Least Active Module", "Value": deref(analytics.LeastActiveModuleID)},
	}
	dataset := export.Dataset{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
	title := fmt.Sprintf("Course Analytics %s", params.CourseID)
	return dataset, title, nil
}

func (s *ExportService) buildProgressDataset(ctx context.Context, params models.ReportJobParams) (export.Dataset, string, error) {
	snapshots, _, err := s.progress.CourseProgress(ctx, params.CourseID)
	if err != nil {
		return export.Dataset{}, "", err
	}
	rows := make([]map[string]string, 0, len(snapshots))
	for _, snap := range snapshots {
		rows = append(rows, map[string]string{
			"Student ID":        snap.StudentID,
			"Status":            string(snap.CompletionStatus),
			"Modules Completed": fmt.Sprintf("%d/%d", snap.ModulesCompleted, snap.TotalModules),
			"Assignments":       fmt.Sprintf("%d/%d", snap.AssignmentsCompleted, snap.TotalAssignments),
			"Average Score":     fmt.Sprintf("%.2f", snap.AverageAssignmentScore),
			"Attendance (%)":    fmt.Sprintf("%.2f", snap.AttendancePercentage),
			"Progress (%)":      fmt.Sprintf("%.2f", snap.OverallProgressPercentage),
		})
	}
	dataset := export.Dataset{
		Headers: []string{"Student ID", "Status", "Modules Completed", "Assignments", "Average Score", "Attendance (%)", "Progress (%)"},
		Rows:    rows,
	}
	title := fmt.Sprintf("Course Progress %s", params.CourseID)
	return dataset, title, nil
}

func (s *ExportService) buildAttendanceDataset(ctx context.Context, params models.ReportJobParams) (export.Dataset, string, error) {
	summary, _, err := s.attendance.CourseSummary(ctx, params.CourseID)
	if err != nil {
		return export.Dataset{}, "", err
	}
	rows := make([]map[string]string, 0, len(summary.Students))
	for _, line := range summary.Students {
		rows = append(rows, map[string]string{
			"Student ID":     line.StudentID,
			"Present":        fmt.Sprintf("%d", line.Present),
			"Absent":         fmt.Sprintf("%d", line.Absent),
			"Late":           fmt.Sprintf("%d", line.Late),
			"Excused":        fmt.Sprintf("%d", line.Excused),
			"Sessions":       fmt.Sprintf("%d", line.TotalSessions),
			"Attendance (%)": fmt.Sprintf("%.2f", line.AttendancePercentage),
		})
	}
	dataset := export.Dataset{
		Headers: []string{"Student ID", "Present", "Absent", "Late", "Excused", "Sessions", "Attendance (%)"},
		Rows:    rows,
	}
	title := fmt.Sprintf("Attendance Report %s", params.CourseID)
	return dataset, title, nil
}

func deref(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
