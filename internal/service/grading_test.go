package service

import (
	"testing"

	"github.com/stemsi/school-helper-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func mark(name string, marks, max float64) model.SubjectMark {
	return model.SubjectMark{Name: name, Marks: &marks, MaxMarks: max}
}

func TestComputeGrades(t *testing.T) {
	tests := []struct {
		name     string
		subjects []model.SubjectMark
		want     GradeSummary
	}{
		{
			name:     "two subjects",
			subjects: []model.SubjectMark{mark("Math", 45, 50), mark("Sci", 40, 50)},
			want:     GradeSummary{TotalObtained: 85, TotalMax: 100, Percentage: 85, Grade: "A"},
		},
		{
			name:     "rounds to two decimals",
			subjects: []model.SubjectMark{mark("Math", 2, 3)},
			want:     GradeSummary{TotalObtained: 2, TotalMax: 3, Percentage: 66.67, Grade: "C"},
		},
		{
			name:     "exactly ninety is A+",
			subjects: []model.SubjectMark{mark("Math", 90, 100)},
			want:     GradeSummary{TotalObtained: 90, TotalMax: 100, Percentage: 90, Grade: "A+"},
		},
		{
			name:     "just under ninety is A",
			subjects: []model.SubjectMark{mark("Math", 8999, 10000)},
			want:     GradeSummary{TotalObtained: 8999, TotalMax: 10000, Percentage: 89.99, Grade: "A"},
		},
		{
			name:     "exactly fifty is D",
			subjects: []model.SubjectMark{mark("Math", 25, 50)},
			want:     GradeSummary{TotalObtained: 25, TotalMax: 50, Percentage: 50, Grade: "D"},
		},
		{
			name:     "just under fifty is E",
			subjects: []model.SubjectMark{mark("Math", 4999, 10000)},
			want:     GradeSummary{TotalObtained: 4999, TotalMax: 10000, Percentage: 49.99, Grade: "E"},
		},
		{
			name: "empty list has no divide by zero",
			want: GradeSummary{Grade: "E"},
		},
		{
			name:     "one in eight hundred rounds down",
			subjects: []model.SubjectMark{mark("x", 1, 800)},
			want:     GradeSummary{TotalObtained: 1, TotalMax: 800, Percentage: 0.12, Grade: "E"},
		},
		{
			name:     "five in eight hundred rounds down",
			subjects: []model.SubjectMark{mark("x", 5, 800)},
			want:     GradeSummary{TotalObtained: 5, TotalMax: 800, Percentage: 0.62, Grade: "E"},
		},
		{
			name:     "grade follows the rounded percentage",
			subjects: []model.SubjectMark{mark("x", 179991, 200000)},
			want:     GradeSummary{TotalObtained: 179991, TotalMax: 200000, Percentage: 90, Grade: "A+"},
		},
		{
			name:     "zero marks",
			subjects: []model.SubjectMark{mark("Art", 0, 20)},
			want:     GradeSummary{TotalObtained: 0, TotalMax: 20, Percentage: 0, Grade: "E"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeGrades(tt.subjects))
		})
	}
}

func TestLetterGradeBands(t *testing.T) {
	cases := map[float64]string{
		100:   "A+",
		90:    "A+",
		89.99: "A",
		80:    "A",
		79.99: "B",
		70:    "B",
		69.99: "C",
		60:    "C",
		59.99: "D",
		50:    "D",
		49.99: "E",
		0:     "E",
	}
	for pct, want := range cases {
		assert.Equal(t, want, LetterGrade(pct), "percentage %.2f", pct)
	}
}
