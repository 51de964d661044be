package service

import (
	"context"

	"github.com/stemsi/school-helper-backend/internal/model"
	"github.com/stemsi/school-helper-backend/internal/repository"
)

// AttendanceService handles attendance marking.
type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
}

func NewAttendanceService(attendanceRepo *repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo}
}

func (s *AttendanceService) Mark(ctx context.Context, req *model.CreateAttendanceRequest) (string, error) {
	return s.attendanceRepo.Create(ctx, req)
}

func (s *AttendanceService) List(ctx context.Context, f model.AttendanceFilter) ([]model.Attendance, error) {
	return s.attendanceRepo.List(ctx, f)
}
