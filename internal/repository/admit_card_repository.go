package repository

import (
	"context"

	"github.com/stemsi/school-helper-backend/internal/database"
	"github.com/stemsi/school-helper-backend/internal/model"
)

// AdmitCardRepository handles admit card data access.
type AdmitCardRepository struct {
	store DocumentStore
}

// NewAdmitCardRepository creates a new AdmitCardRepository.
func NewAdmitCardRepository(store DocumentStore) *AdmitCardRepository {
	return &AdmitCardRepository{store: store}
}

// Create inserts an admit card and returns its id.
func (r *AdmitCardRepository) Create(ctx context.Context, req *model.CreateAdmitCardRequest) (string, error) {
	return insert(ctx, r.store, CollectionAdmitCard, req)
}

// List retrieves admit cards by student and exam.
func (r *AdmitCardRepository) List(ctx context.Context, f model.ExamFilter) ([]model.AdmitCard, error) {
	filter := database.Filter{}.
		Eq("student_id", f.StudentID).
		Eq("exam_name", f.ExamName)

	cards := []model.AdmitCard{}
	if err := r.store.GetDocuments(ctx, CollectionAdmitCard, filter, f.Limit, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}
