// Package mission assigns and tracks the one small task of each day.
package mission

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/karadarhythm/health-api/internal/catalog"
	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
	"github.com/karadarhythm/health-api/internal/service/streak"
	"github.com/karadarhythm/health-api/pkg/errors"
)

type Service struct {
	repo      repository.MissionRepository
	streakSvc *streak.Service
	now       func() time.Time
	pick      func(n int) int
}

// NewService wires the mission store. pick selects the template index
// for a new day; nil means uniformly random.
func NewService(repo repository.MissionRepository, streakSvc *streak.Service, now func() time.Time, pick func(n int) int) *Service {
	if now == nil {
		now = time.Now
	}
	if pick == nil {
		pick = rand.Intn
	}
	return &Service{repo: repo, streakSvc: streakSvc, now: now, pick: pick}
}

// Status returns the mission for a date (today when empty), creating
// it from a random template on first fetch, plus the mission streak.
func (s *Service) Status(ctx context.Context, date string) (*model.MissionStatus, error) {
	if date == "" {
		date = model.FormatDate(s.now())
	}

	mission, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	if mission == nil {
		templates := catalog.MissionTemplates()
		mission = &model.DailyMission{
			MissionDate: date,
			MissionText: templates[s.pick(len(templates))],
		}
		if err := s.repo.Create(ctx, mission); err != nil {
			return nil, fmt.Errorf("failed to create mission: %w", err)
		}
	}

	counter, err := s.streakSvc.Get(ctx, model.StreakMission)
	if err != nil {
		return nil, err
	}

	return &model.MissionStatus{Mission: mission, Streak: counter}, nil
}

// Complete marks the mission of a date done or not done. Completion
// advances the mission streak; undoing does not roll it back.
func (s *Service) Complete(ctx context.Context, req *model.CompleteMissionRequest) error {
	date := req.Date
	if date == "" {
		date = model.FormatDate(s.now())
	}

	mission, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get mission: %w", err)
	}
	if mission == nil {
		return errors.NotFound("daily mission", nil)
	}

	if err := s.repo.SetCompleted(ctx, date, req.Completed); err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}

	if req.Completed {
		if _, err := s.streakSvc.Advance(ctx, model.StreakMission); err != nil {
			return fmt.Errorf("failed to advance mission streak: %w", err)
		}
	}
	return nil
}
