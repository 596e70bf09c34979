// Package exercise serves the seated-exercise catalog and the daily
// exercise log.
package exercise

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/catalog"
	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
	"github.com/karadarhythm/health-api/pkg/errors"
	"github.com/karadarhythm/health-api/pkg/metrics"
)

type Service struct {
	repo repository.ExerciseLogRepository
	now  func() time.Time
}

func NewService(repo repository.ExerciseLogRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// Catalog lists the exercise menu, optionally narrowed to a category.
func (s *Service) Catalog(category model.ExerciseCategory) []model.Exercise {
	return catalog.Exercises(category)
}

// Log records an exercise for a date (today when omitted). Duration
// and calories come from the catalog entry.
func (s *Service) Log(ctx context.Context, req *model.CreateExerciseLogRequest) (*model.ExerciseLog, error) {
	ex, ok := catalog.ExerciseByID(req.ExerciseID)
	if !ok {
		return nil, errors.BadRequest(fmt.Sprintf("unknown exercise %s", req.ExerciseID), nil)
	}

	date := req.LoggedDate
	if date == "" {
		date = model.FormatDate(s.now())
	}

	entry := &model.ExerciseLog{
		LoggedDate:     date,
		ExerciseID:     ex.ID,
		ExerciseName:   ex.Name,
		DurationMin:    ex.DurationMin,
		CaloriesBurned: ex.CaloriesBurned,
		Completed:      req.Completed,
		Note:           req.Note,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create exercise log: %w", err)
	}

	metrics.RecordsCreated.WithLabelValues("exercise").Inc()
	return entry, nil
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]*model.ExerciseLog, error) {
	if date == "" {
		date = model.FormatDate(s.now())
	}
	entries, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise log: %w", err)
	}
	return entries, nil
}

func (s *Service) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (*model.ExerciseLog, error) {
	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise log: %w", err)
	}
	if entry == nil {
		return nil, errors.NotFound("exercise log", nil)
	}

	if err := s.repo.SetCompleted(ctx, id, completed); err != nil {
		return nil, fmt.Errorf("failed to update exercise log: %w", err)
	}
	entry.Completed = completed
	return entry, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete exercise log: %w", err)
	}
	metrics.RecordsDeleted.WithLabelValues("exercise").Inc()
	return nil
}

// Summary totals the completed exercises of a date.
func (s *Service) Summary(ctx context.Context, date string) (*model.ExerciseSummary, error) {
	if date == "" {
		date = model.FormatDate(s.now())
	}
	entries, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise log: %w", err)
	}

	summary := &model.ExerciseSummary{Date: date}
	for _, e := range entries {
		if !e.Completed {
			continue
		}
		summary.CompletedCount++
		summary.TotalDuration += e.DurationMin
		summary.TotalCalories += e.CaloriesBurned
	}
	return summary, nil
}
