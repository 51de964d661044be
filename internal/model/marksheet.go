package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubjectMark is one subject line of a marksheet.
type SubjectMark struct {
	Name     string   `json:"name" bson:"name" binding:"required"`
	Marks    *float64 `json:"marks" bson:"marks" binding:"required,gte=0"`
	MaxMarks float64  `json:"max_marks" bson:"max_marks" binding:"required,gt=0"`
}

// Obtained returns the marks value, treating a missing value as zero.
func (s SubjectMark) Obtained() float64 {
	if s.Marks == nil {
		return 0
	}
	return *s.Marks
}

// Marksheet is a stored exam result for one student.
type Marksheet struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentID     string             `json:"student_id" bson:"student_id"`
	ExamName      string             `json:"exam_name" bson:"exam_name"`
	ClassName     string             `json:"class_name" bson:"class_name"`
	Year          int                `json:"year" bson:"year"`
	Subjects      []SubjectMark      `json:"subjects" bson:"subjects"`
	TotalObtained *float64           `json:"total_obtained" bson:"total_obtained"`
	TotalMax      *float64           `json:"total_max" bson:"total_max"`
	Percentage    *float64           `json:"percentage" bson:"percentage"`
	Grade         *string            `json:"grade" bson:"grade"`
	Remarks       *string            `json:"remarks" bson:"remarks"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateMarksheetRequest is the payload for recording a marksheet.
// The totals, percentage and grade are accepted for compatibility but are
// always recomputed from subjects before the record is stored.
type CreateMarksheetRequest struct {
	StudentID     string        `json:"student_id" bson:"student_id" binding:"required"`
	ExamName      string        `json:"exam_name" bson:"exam_name" binding:"required"`
	ClassName     string        `json:"class_name" bson:"class_name" binding:"required"`
	Year          int           `json:"year" bson:"year" binding:"required,gte=1900,lte=3000"`
	Subjects      []SubjectMark `json:"subjects" bson:"subjects" binding:"required,dive"`
	TotalObtained *float64      `json:"total_obtained" bson:"total_obtained" binding:"omitempty,gte=0"`
	TotalMax      *float64      `json:"total_max" bson:"total_max" binding:"omitempty,gte=0"`
	Percentage    *float64      `json:"percentage" bson:"percentage" binding:"omitempty,gte=0,lte=100"`
	Grade         *string       `json:"grade" bson:"grade" binding:"omitempty"`
	Remarks       *string       `json:"remarks" bson:"remarks" binding:"omitempty"`
}

// ExamFilter narrows marksheet and admit card listings.
type ExamFilter struct {
	StudentID string
	ExamName  string
	Limit     int64
}
