package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdmitCard is a stored exam admit card.
type AdmitCard struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentID string             `json:"student_id" bson:"student_id"`
	RollNo    string             `json:"roll_no" bson:"roll_no"`
	ClassName string             `json:"class_name" bson:"class_name"`
	ExamName  string             `json:"exam_name" bson:"exam_name"`
	ExamDate  *string            `json:"exam_date" bson:"exam_date"`
	Center    *string            `json:"center" bson:"center"`
	IssuedOn  *string            `json:"issued_on" bson:"issued_on"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateAdmitCardRequest is the payload for issuing an admit card.
type CreateAdmitCardRequest struct {
	StudentID string  `json:"student_id" bson:"student_id" binding:"required"`
	RollNo    string  `json:"roll_no" bson:"roll_no" binding:"required"`
	ClassName string  `json:"class_name" bson:"class_name" binding:"required"`
	ExamName  string  `json:"exam_name" bson:"exam_name" binding:"required"`
	ExamDate  *string `json:"exam_date" bson:"exam_date" binding:"omitempty,datetime=2006-01-02"`
	Center    *string `json:"center" bson:"center" binding:"omitempty"`
	IssuedOn  *string `json:"issued_on" bson:"issued_on" binding:"omitempty,datetime=2006-01-02"`
}
