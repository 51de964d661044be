package service

import (
	"context"
	"errors"

	"github.com/stemsi/school-helper-backend/internal/model"
	"github.com/stemsi/school-helper-backend/internal/repository"
)

// ErrDuplicateRollNo is returned when a roll number is already registered.
var ErrDuplicateRollNo = errors.New("student with this roll number already exists")

// StudentService handles student business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// Create registers a student after checking that roll_no is unused.
// The check and the insert are separate store calls.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (string, error) {
	exists, err := s.studentRepo.ExistsByRollNo(ctx, req.RollNo)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrDuplicateRollNo
	}
	return s.studentRepo.Create(ctx, req)
}

// List retrieves students matching the filter.
func (s *StudentService) List(ctx context.Context, f model.StudentFilter) ([]model.Student, error) {
	return s.studentRepo.List(ctx, f)
}

// GetByID retrieves a student by id.
func (s *StudentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}
