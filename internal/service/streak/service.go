// Package streak maintains the per-type consecutive-day counters.
package streak

import (
	"context"
	"fmt"
	"time"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
	"github.com/karadarhythm/health-api/pkg/metrics"
)

type Service struct {
	repo repository.StreakRepository
	now  func() time.Time
}

func NewService(repo repository.StreakRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// Advance records a qualifying event for today. Consecutive days grow
// the counter, a repeat on the same day leaves it unchanged, a gap
// resets it to 1. Best only ever grows.
func (s *Service) Advance(ctx context.Context, streakType model.StreakType) (*model.StreakCounter, error) {
	counter, err := s.repo.Get(ctx, streakType)
	if err != nil {
		return nil, fmt.Errorf("failed to get streak %s: %w", streakType, err)
	}

	today := model.FormatDate(s.now())
	yesterday := model.Yesterday(s.now())

	newCount := 1
	switch counter.LastDate {
	case yesterday:
		newCount = counter.CurrentCount + 1
	case today:
		newCount = counter.CurrentCount
	}

	counter.CurrentCount = newCount
	if newCount > counter.BestCount {
		counter.BestCount = newCount
	}
	counter.LastDate = today

	if err := s.repo.Save(ctx, counter); err != nil {
		return nil, fmt.Errorf("failed to save streak %s: %w", streakType, err)
	}

	metrics.StreakAdvances.WithLabelValues(string(streakType)).Inc()
	metrics.StreakCurrent.WithLabelValues(string(streakType)).Set(float64(newCount))
	return counter, nil
}

func (s *Service) Get(ctx context.Context, streakType model.StreakType) (*model.StreakCounter, error) {
	counter, err := s.repo.Get(ctx, streakType)
	if err != nil {
		return nil, fmt.Errorf("failed to get streak %s: %w", streakType, err)
	}
	return counter, nil
}

func (s *Service) List(ctx context.Context) ([]*model.StreakCounter, error) {
	counters, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list streaks: %w", err)
	}
	return counters, nil
}
