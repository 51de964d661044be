package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceStatus is the recorded presence of a student on a date.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
)

// Attendance is a stored attendance mark.
type Attendance struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentID string             `json:"student_id" bson:"student_id"`
	Date      string             `json:"date" bson:"date"`
	Status    AttendanceStatus   `json:"status" bson:"status"`
	Remarks   *string            `json:"remarks" bson:"remarks"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateAttendanceRequest is the payload for marking attendance.
type CreateAttendanceRequest struct {
	StudentID string           `json:"student_id" bson:"student_id" binding:"required"`
	Date      string           `json:"date" bson:"date" binding:"required,datetime=2006-01-02"`
	Status    AttendanceStatus `json:"status" bson:"status" binding:"required,oneof=Present Absent Late"`
	Remarks   *string          `json:"remarks" bson:"remarks" binding:"omitempty"`
}

// AttendanceFilter narrows attendance listings.
type AttendanceFilter struct {
	StudentID string
	Date      string
	Status    string
	Limit     int64
}
