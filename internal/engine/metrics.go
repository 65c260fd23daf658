// Package engine derives academic metrics from raw event records. Every
// function is a pure transformation of an already-fetched snapshot: no I/O,
// no shared state, safe for concurrent invocation.
package engine

import "math"

// Round2 rounds to two decimal places using round-half-up.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// PercentOf returns numerator as a percentage of denominator, rounded to two
// decimals. A zero denominator yields 0 rather than a fault.
func PercentOf(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return Round2(numerator / denominator * 100)
}

// Average returns the rounded arithmetic mean, or 0 for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return Round2(sum / float64(len(values)))
}

// LetterGrade maps a percentage to its letter bucket. Lower bounds are
// inclusive: 90 is an A, 89.99 a B.
func LetterGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

// AdjustGrade applies the late-submission penalty proration to a raw grade.
// The penalty is linear in days late and uncapped; a large daysLate can zero
// the grade but never drive it negative. Callers apply this exactly once per
// grading action and store the result with the submission.
func AdjustGrade(rawGrade float64, isLate bool, daysLate int, latePenaltyPerDay float64) float64 {
	if !isLate {
		return rawGrade
	}
	penalty := latePenaltyPerDay / 100 * rawGrade * float64(daysLate)
	adjusted := rawGrade - penalty
	if adjusted < 0 {
		return 0
	}
	return adjusted
}
