package service

import (
	"strconv"

	"github.com/stemsi/school-helper-backend/internal/model"
)

// GradeSummary holds the values derived from a marksheet's subjects.
type GradeSummary struct {
	TotalObtained float64
	TotalMax      float64
	Percentage    float64
	Grade         string
}

// gradeBands are checked top down; a percentage on a boundary belongs to the higher band.
var gradeBands = []struct {
	min   float64
	grade string
}{
	{90, "A+"},
	{80, "A"},
	{70, "B"},
	{60, "C"},
	{50, "D"},
}

// ComputeGrades totals the subjects and grades the result. The percentage is
// rounded to two decimals and the grade is looked up on the rounded value.
// An empty list yields zero totals, 0% and grade E.
func ComputeGrades(subjects []model.SubjectMark) GradeSummary {
	var sum GradeSummary
	for _, s := range subjects {
		sum.TotalObtained += s.Obtained()
		sum.TotalMax += s.MaxMarks
	}
	if sum.TotalMax > 0 {
		sum.Percentage = roundTo2(sum.TotalObtained / sum.TotalMax * 100)
	}
	sum.Grade = LetterGrade(sum.Percentage)
	return sum
}

// LetterGrade maps a percentage to A+, A, B, C, D or E.
func LetterGrade(percentage float64) string {
	for _, band := range gradeBands {
		if percentage >= band.min {
			return band.grade
		}
	}
	return "E"
}

// roundTo2 rounds the exact binary value to the nearest two-decimal number,
// ties to even, so 0.125 becomes 0.12.
func roundTo2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
