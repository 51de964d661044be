package repository

import (
	"context"

	"github.com/stemsi/school-helper-backend/internal/database"
	"github.com/stemsi/school-helper-backend/internal/model"
)

// MarksheetRepository handles marksheet data access.
type MarksheetRepository struct {
	store DocumentStore
}

// NewMarksheetRepository creates a new MarksheetRepository.
func NewMarksheetRepository(store DocumentStore) *MarksheetRepository {
	return &MarksheetRepository{store: store}
}

// Create inserts a graded marksheet and returns its id.
func (r *MarksheetRepository) Create(ctx context.Context, req *model.CreateMarksheetRequest) (string, error) {
	return insert(ctx, r.store, CollectionMarksheet, req)
}

// List retrieves marksheets by student and exam.
func (r *MarksheetRepository) List(ctx context.Context, f model.ExamFilter) ([]model.Marksheet, error) {
	filter := database.Filter{}.
		Eq("student_id", f.StudentID).
		Eq("exam_name", f.ExamName)

	sheets := []model.Marksheet{}
	if err := r.store.GetDocuments(ctx, CollectionMarksheet, filter, f.Limit, &sheets); err != nil {
		return nil, err
	}
	return sheets, nil
}
