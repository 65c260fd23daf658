package engine

import (
	"time"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// enrollmentTrendDays is the fixed trailing window of the enrollment trend.
// It is not configurable.
const enrollmentTrendDays = 30

// CourseAnalyticsInput is the full record snapshot for one course.
type CourseAnalyticsInput struct {
	CourseID       string
	Enrollments    []models.EnrollmentRecord
	ModuleProgress []models.ModuleProgressRecord
	Submissions    []models.SubmissionRecord
	Attendance     []models.AttendanceRecord
	Modules        []models.CourseModule
}

// BuildCourseAnalytics aggregates all of a course's records into course-wide
// metrics. now anchors the enrollment trend window and is injected so the
// series is deterministic under test.
func BuildCourseAnalytics(in CourseAnalyticsInput, now time.Time) models.CourseAnalytics {
	completionRates := make([]float64, 0, len(in.Enrollments))
	activeStudents := 0
	for _, enr := range in.Enrollments {
		completionRates = append(completionRates, enr.ProgressPercent)
		if enr.Status == models.EnrollmentStatusActive {
			activeStudents++
		}
	}

	scores := make([]float64, 0, len(in.Submissions))
	var distribution models.GradeDistribution
	for _, sub := range in.Submissions {
		if sub.AdjustedGrade == nil {
			continue
		}
		scores = append(scores, *sub.AdjustedGrade)
		// The adjusted grade is bucketed directly, not normalised by
		// assignment points. See DESIGN.md before changing.
		switch LetterGrade(*sub.AdjustedGrade) {
		case "A":
			distribution.A++
		case "B":
			distribution.B++
		case "C":
			distribution.C++
		case "D":
			distribution.D++
		default:
			distribution.F++
		}
	}

	attended := 0
	for _, att := range in.Attendance {
		if att.Status.Counted() {
			attended++
		}
	}

	totalMinutes := 0
	timeByModule := make(map[string]int, len(in.Modules))
	for _, mp := range in.ModuleProgress {
		totalMinutes += mp.TimeSpentMinutes
		timeByModule[mp.ModuleID] += mp.TimeSpentMinutes
	}

	avgHours := 0.0
	if len(in.Enrollments) > 0 {
		avgHours = Round2(float64(totalMinutes) / float64(len(in.Enrollments)) / 60)
	}

	mostActive, leastActive := moduleEngagementExtremes(in.Modules, timeByModule)

	return models.CourseAnalytics{
		CourseID:               in.CourseID,
		TotalEnrolled:          len(in.Enrollments),
		ActiveStudents:         activeStudents,
		AverageCompletionRate:  Average(completionRates),
		AverageAssignmentScore: Average(scores),
		AverageAttendanceRate:  PercentOf(float64(attended), float64(len(in.Attendance))),
		GradeDistribution:      distribution,
		AvgTimePerStudentHours: avgHours,
		MostActiveModuleID:     mostActive,
		LeastActiveModuleID:    leastActive,
		EnrollmentTrend:        enrollmentTrend(in.Enrollments, now),
	}
}

// moduleEngagementExtremes finds the modules with the most and least total
// engagement time. Modules with zero total time never qualify: a module
// nobody opened is "never engaged", not "least active". Both results are nil
// when no module has engagement.
func moduleEngagementExtremes(modules []models.CourseModule, timeByModule map[string]int) (mostActive, leastActive *string) {
	maxTime := 0
	minTime := int(^uint(0) >> 1)
	for _, mod := range modules {
		total := timeByModule[mod.ID]
		if total <= 0 {
			continue
		}
		if total > maxTime {
			maxTime = total
			id := mod.ID
			mostActive = &id
		}
		if total < minTime {
			minTime = total
			id := mod.ID
			leastActive = &id
		}
	}
	return mostActive, leastActive
}

// enrollmentTrend builds the fixed 30-day daily enrollment series ending on
// the current day. Enrollment timestamps are bucketed by truncating the
// ISO-8601 string to its date portion; they are never parsed.
func enrollmentTrend(enrollments []models.EnrollmentRecord, now time.Time) []models.EnrollmentTrendPoint {
	countsByDay := make(map[string]int, len(enrollments))
	for _, enr := range enrollments {
		countsByDay[dateOf(enr.EnrolledAt)]++
	}

	trend := make([]models.EnrollmentTrendPoint, 0, enrollmentTrendDays)
	start := now.UTC().AddDate(0, 0, -(enrollmentTrendDays - 1))
	for i := 0; i < enrollmentTrendDays; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		trend = append(trend, models.EnrollmentTrendPoint{Date: day, Count: countsByDay[day]})
	}
	return trend
}

// dateOf truncates an ISO-8601 timestamp to its date portion.
func dateOf(ts string) string {
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}
