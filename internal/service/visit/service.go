// Package visit manages medical consultation records.
package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
	"github.com/karadarhythm/health-api/pkg/errors"
	"github.com/karadarhythm/health-api/pkg/metrics"
)

type Service struct {
	repo repository.MedicalVisitRepository
	now  func() time.Time
}

func NewService(repo repository.MedicalVisitRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

func (s *Service) Create(ctx context.Context, req *model.CreateMedicalVisitRequest) (*model.MedicalVisit, error) {
	visit := &model.MedicalVisit{
		VisitDate:    req.VisitDate,
		Department:   req.Department,
		DoctorName:   req.DoctorName,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
		NextVisit:    req.NextVisit,
		Note:         req.Note,
	}
	if err := s.repo.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}
	metrics.RecordsCreated.WithLabelValues("medical_visit").Inc()
	return visit, nil
}

// Update applies the non-nil fields of the request to an existing
// visit record.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateMedicalVisitRequest) (*model.MedicalVisit, error) {
	visit, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	if visit == nil {
		return nil, errors.NotFound("medical visit", nil)
	}

	if req.VisitDate != nil {
		visit.VisitDate = *req.VisitDate
	}
	if req.Department != nil {
		visit.Department = *req.Department
	}
	if req.DoctorName != nil {
		visit.DoctorName = *req.DoctorName
	}
	if req.Diagnosis != nil {
		visit.Diagnosis = *req.Diagnosis
	}
	if req.Prescription != nil {
		visit.Prescription = *req.Prescription
	}
	if req.NextVisit != nil {
		visit.NextVisit = *req.NextVisit
	}
	if req.Note != nil {
		visit.Note = *req.Note
	}

	if err := s.repo.Update(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}
	return visit, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}
	metrics.RecordsDeleted.WithLabelValues("medical_visit").Inc()
	return nil
}

// List returns the visit history newest-first, plus the next upcoming
// booked visit, when one is scheduled today or later.
func (s *Service) List(ctx context.Context) (*model.MedicalVisitList, error) {
	visits, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	next, err := s.repo.NextUpcoming(ctx, model.FormatDate(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to find next visit: %w", err)
	}

	return &model.MedicalVisitList{Visits: visits, NextVisit: next}, nil
}

// Count reports how many visits were ever recorded.
func (s *Service) Count(ctx context.Context) (int, error) {
	visits, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return len(visits), nil
}
