// Package weight keeps the one-entry-per-date weight log.
package weight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
	"github.com/karadarhythm/health-api/pkg/metrics"
)

type Service struct {
	repo repository.WeightRepository
	now  func() time.Time
}

func NewService(repo repository.WeightRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// Upsert saves the weight for a date, overwriting any earlier entry on
// the same date. An omitted date means today.
func (s *Service) Upsert(ctx context.Context, req *model.UpsertWeightRequest) (*model.WeightEntry, error) {
	date := req.MeasuredAt
	if date == "" {
		date = model.FormatDate(s.now())
	}

	entry := &model.WeightEntry{
		MeasuredAt: date,
		WeightKg:   req.WeightKg,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to upsert weight: %w", err)
	}

	metrics.RecordsCreated.WithLabelValues("weight").Inc()
	return entry, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]*model.WeightEntry, error) {
	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight entries: %w", err)
	}
	return entries, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete weight entry: %w", err)
	}
	metrics.RecordsDeleted.WithLabelValues("weight").Inc()
	return nil
}

// Latest returns the most recent entry, or nil when none exist.
func (s *Service) Latest(ctx context.Context) (*model.WeightEntry, error) {
	entries, err := s.repo.List(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest weight: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}
