// Package bloodpressure records and lists blood pressure readings.
package bloodpressure

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
	"github.com/karadarhythm/health-api/internal/service/streak"
	"github.com/karadarhythm/health-api/pkg/metrics"
)

type Service struct {
	repo      repository.BloodPressureRepository
	streakSvc *streak.Service
	now       func() time.Time
}

func NewService(repo repository.BloodPressureRepository, streakSvc *streak.Service, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, streakSvc: streakSvc, now: now}
}

// Create stores a reading and advances the bp_record streak. The
// measurement timestamp is the current time; readings are immutable.
func (s *Service) Create(ctx context.Context, req *model.CreateBloodPressureRequest) (*model.BloodPressureReading, error) {
	reading := &model.BloodPressureReading{
		MeasuredAt: s.now().Format(time.RFC3339),
		Systolic:   req.Systolic,
		Diastolic:  req.Diastolic,
		Pulse:      req.Pulse,
		Timing:     req.Timing,
		Note:       req.Note,
	}

	if err := s.repo.Create(ctx, reading); err != nil {
		return nil, fmt.Errorf("failed to create reading: %w", err)
	}

	if _, err := s.streakSvc.Advance(ctx, model.StreakBPLog); err != nil {
		return nil, fmt.Errorf("failed to advance bp streak: %w", err)
	}

	metrics.RecordsCreated.WithLabelValues("blood_pressure").Inc()
	return reading, nil
}

func (s *Service) List(ctx context.Context, filter *model.BloodPressureFilter) ([]*model.BloodPressureReading, error) {
	readings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}
	return readings, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete reading: %w", err)
	}
	metrics.RecordsDeleted.WithLabelValues("blood_pressure").Inc()
	return nil
}

// Latest returns the most recent reading, or nil when none exist.
func (s *Service) Latest(ctx context.Context) (*model.BloodPressureReading, error) {
	readings, err := s.repo.List(ctx, &model.BloodPressureFilter{Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to get latest reading: %w", err)
	}
	if len(readings) == 0 {
		return nil, nil
	}
	return readings[0], nil
}
