package repository

import (
	"github.com/stemsi/school-helper-backend/internal/database"
	"go.mongodb.org/mongo-driver/bson"
)

// Indexes lists the lookup indexes backing the list filters and the roll_no
// pre-check. None is unique: roll_no uniqueness is enforced on create only.
var Indexes = []database.IndexSpec{
	{Collection: CollectionStudent, Keys: bson.D{{Key: "roll_no", Value: 1}}},
	{Collection: CollectionStudent, Keys: bson.D{{Key: "class_name", Value: 1}, {Key: "section", Value: 1}}},
	{Collection: CollectionMarksheet, Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "exam_name", Value: 1}}},
	{Collection: CollectionAdmitCard, Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "exam_name", Value: 1}}},
	{Collection: CollectionAttendance, Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "date", Value: 1}}},
}

// Collections lists every collection the repositories write to.
var Collections = []string{
	CollectionStudent,
	CollectionMarksheet,
	CollectionAdmitCard,
	CollectionAttendance,
}
