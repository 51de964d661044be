package repository

import (
	"context"
	"errors"

	"github.com/stemsi/school-helper-backend/internal/database"
	"github.com/stemsi/school-helper-backend/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	store DocumentStore
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(store DocumentStore) *StudentRepository {
	return &StudentRepository{store: store}
}

// Create inserts a new student and returns its id.
func (r *StudentRepository) Create(ctx context.Context, req *model.CreateStudentRequest) (string, error) {
	return insert(ctx, r.store, CollectionStudent, req)
}

// ExistsByRollNo reports whether any student already uses rollNo.
func (r *StudentRepository) ExistsByRollNo(ctx context.Context, rollNo string) (bool, error) {
	var existing model.Student
	err := r.store.FindOne(ctx, CollectionStudent, database.Filter{}.Eq("roll_no", rollNo), &existing)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List retrieves students matching the filter in natural order.
func (r *StudentRepository) List(ctx context.Context, f model.StudentFilter) ([]model.Student, error) {
	filter := database.Filter{}.
		Eq("class_name", f.ClassName).
		Eq("section", f.Section)

	students := []model.Student{}
	if err := r.store.GetDocuments(ctx, CollectionStudent, filter, f.Limit, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetByID looks a student up by ObjectID. Ids that are not valid ObjectIDs
// are matched against a plain "id" string field instead.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*model.Student, error) {
	filter := database.Filter{}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filter["_id"] = oid
	} else {
		filter["id"] = id
	}

	s := &model.Student{}
	if err := r.store.FindOne(ctx, CollectionStudent, filter, s); err != nil {
		return nil, err
	}
	return s, nil
}
