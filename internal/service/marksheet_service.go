package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-helper-backend/internal/model"
	"github.com/stemsi/school-helper-backend/internal/repository"
)

// MarksheetService grades and stores marksheets.
type MarksheetService struct {
	marksheetRepo *repository.MarksheetRepository
	log           zerolog.Logger
}

// NewMarksheetService creates a new MarksheetService.
func NewMarksheetService(marksheetRepo *repository.MarksheetRepository, log zerolog.Logger) *MarksheetService {
	return &MarksheetService{
		marksheetRepo: marksheetRepo,
		log:           log.With().Str("component", "marksheet_service").Logger(),
	}
}

// Create computes totals, percentage and grade from the subjects, replacing
// whatever the caller sent for those fields, and stores the marksheet.
func (s *MarksheetService) Create(ctx context.Context, req *model.CreateMarksheetRequest) (string, error) {
	sheet := *req
	sum := ComputeGrades(sheet.Subjects)
	sheet.TotalObtained = &sum.TotalObtained
	sheet.TotalMax = &sum.TotalMax
	sheet.Percentage = &sum.Percentage
	sheet.Grade = &sum.Grade

	s.log.Debug().
		Str("student_id", sheet.StudentID).
		Str("exam_name", sheet.ExamName).
		Float64("percentage", sum.Percentage).
		Str("grade", sum.Grade).
		Msg("Marksheet graded")

	return s.marksheetRepo.Create(ctx, &sheet)
}

// List retrieves marksheets matching the filter.
func (s *MarksheetService) List(ctx context.Context, f model.ExamFilter) ([]model.Marksheet, error) {
	return s.marksheetRepo.List(ctx, f)
}
