package service

import (
	"context"

	"github.com/stemsi/school-helper-backend/internal/model"
	"github.com/stemsi/school-helper-backend/internal/repository"
)

// AdmitCardService handles admit card issuing.
type AdmitCardService struct {
	admitCardRepo *repository.AdmitCardRepository
}

// NewAdmitCardService creates a new AdmitCardService.
func NewAdmitCardService(admitCardRepo *repository.AdmitCardRepository) *AdmitCardService {
	return &AdmitCardService{admitCardRepo: admitCardRepo}
}

// Create stores a new admit card.
func (s *AdmitCardService) Create(ctx context.Context, req *model.CreateAdmitCardRequest) (string, error) {
	return s.admitCardRepo.Create(ctx, req)
}

// List retrieves admit cards matching the filter.
func (s *AdmitCardService) List(ctx context.Context, f model.ExamFilter) ([]model.AdmitCard, error) {
	return s.admitCardRepo.List(ctx, f)
}
