package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is a stored student record.
type Student struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName     string             `json:"full_name" bson:"full_name"`
	RollNo       string             `json:"roll_no" bson:"roll_no"`
	ClassName    string             `json:"class_name" bson:"class_name"`
	Section      *string            `json:"section" bson:"section"`
	DOB          *string            `json:"dob" bson:"dob"`
	GuardianName *string            `json:"guardian_name" bson:"guardian_name"`
	Contact      *string            `json:"contact" bson:"contact"`
	Address      *string            `json:"address" bson:"address"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateStudentRequest is the payload for registering a student.
// roll_no must be unique across the student collection.
type CreateStudentRequest struct {
	FullName     string  `json:"full_name" bson:"full_name" binding:"required"`
	RollNo       string  `json:"roll_no" bson:"roll_no" binding:"required"`
	ClassName    string  `json:"class_name" bson:"class_name" binding:"required"`
	Section      *string `json:"section" bson:"section" binding:"omitempty"`
	DOB          *string `json:"dob" bson:"dob" binding:"omitempty,datetime=2006-01-02"`
	GuardianName *string `json:"guardian_name" bson:"guardian_name" binding:"omitempty"`
	Contact      *string `json:"contact" bson:"contact" binding:"omitempty"`
	Address      *string `json:"address" bson:"address" binding:"omitempty"`
}

// StudentFilter narrows student listings. Empty fields are unconstrained.
type StudentFilter struct {
	ClassName string
	Section   string
	Limit     int64
}
