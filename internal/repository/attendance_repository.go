package repository

import (
	"context"

	"github.com/stemsi/school-helper-backend/internal/database"
	"github.com/stemsi/school-helper-backend/internal/model"
)

// AttendanceRepository handles attendance data access.
type AttendanceRepository struct {
	store DocumentStore
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(store DocumentStore) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

// Create inserts an attendance mark and returns its id.
func (r *AttendanceRepository) Create(ctx context.Context, req *model.CreateAttendanceRequest) (string, error) {
	return insert(ctx, r.store, CollectionAttendance, req)
}

// List retrieves attendance marks by student, date and status.
func (r *AttendanceRepository) List(ctx context.Context, f model.AttendanceFilter) ([]model.Attendance, error) {
	filter := database.Filter{}.
		Eq("student_id", f.StudentID).
		Eq("date", f.Date).
		Eq("status", f.Status)

	records := []model.Attendance{}
	if err := r.store.GetDocuments(ctx, CollectionAttendance, filter, f.Limit, &records); err != nil {
		return nil, err
	}
	return records, nil
}
