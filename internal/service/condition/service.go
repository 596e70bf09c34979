// Package condition handles the daily symptom check-in.
package condition

import (
	"context"
	"fmt"
	"time"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
	"github.com/karadarhythm/health-api/internal/service/streak"
	"github.com/karadarhythm/health-api/pkg/metrics"
)

type Service struct {
	repo      repository.ConditionRepository
	streakSvc *streak.Service
	now       func() time.Time
}

func NewService(repo repository.ConditionRepository, streakSvc *streak.Service, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, streakSvc: streakSvc, now: now}
}

// Save upserts the check-in for a date (today when omitted). A night
// on CPAP advances the cpap streak. Scores default to 3 when omitted,
// matching the check-in form's initial state.
func (s *Service) Save(ctx context.Context, req *model.SaveConditionRequest) (*model.ConditionLogEntry, error) {
	date := req.LoggedDate
	if date == "" {
		date = model.FormatDate(s.now())
	}

	entry := &model.ConditionLogEntry{
		LoggedDate:   date,
		OverallScore: req.OverallScore,
		Palpitation:  req.Palpitation,
		Edema:        req.Edema,
		FatigueLevel: req.FatigueLevel,
		CPAPUsed:     req.CPAPUsed == nil || *req.CPAPUsed,
		Note:         req.Note,
	}
	if entry.OverallScore == 0 {
		entry.OverallScore = 3
	}
	if entry.FatigueLevel == 0 {
		entry.FatigueLevel = 3
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save condition log: %w", err)
	}

	if entry.CPAPUsed {
		if _, err := s.streakSvc.Advance(ctx, model.StreakCPAP); err != nil {
			return nil, fmt.Errorf("failed to advance cpap streak: %w", err)
		}
	}

	metrics.RecordsCreated.WithLabelValues("condition").Inc()
	return entry, nil
}

// GetByDate returns the check-in for a date, or nil when not logged.
func (s *Service) GetByDate(ctx context.Context, date string) (*model.ConditionLogEntry, error) {
	entry, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get condition log: %w", err)
	}
	return entry, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]*model.ConditionLogEntry, error) {
	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list condition logs: %w", err)
	}
	return entries, nil
}

// ConsecutiveDays counts how many days in a row, ending today, have a
// check-in. A missing day stops the count.
func (s *Service) ConsecutiveDays(ctx context.Context) (int, error) {
	entries, err := s.repo.List(ctx, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to list condition logs: %w", err)
	}

	logged := make(map[string]bool, len(entries))
	for _, e := range entries {
		logged[e.LoggedDate] = true
	}

	days := 0
	cursor := s.now()
	for logged[model.FormatDate(cursor)] {
		days++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return days, nil
}
