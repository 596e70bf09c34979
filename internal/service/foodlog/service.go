// Package foodlog records meals and connects them to the food_log
// streak. Day listings and totals live in the nutrition service.
package foodlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
	"github.com/karadarhythm/health-api/internal/service/streak"
	"github.com/karadarhythm/health-api/pkg/errors"
	"github.com/karadarhythm/health-api/pkg/metrics"
)

type Service struct {
	repo       repository.FoodLogRepository
	recipeRepo repository.RecipeRepository
	streakSvc  *streak.Service
	now        func() time.Time
}

func NewService(repo repository.FoodLogRepository, recipeRepo repository.RecipeRepository, streakSvc *streak.Service, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, recipeRepo: recipeRepo, streakSvc: streakSvc, now: now}
}

// Create stores a meal entry and advances the food_log streak. A
// referenced recipe must exist; portion defaults to 1.
func (s *Service) Create(ctx context.Context, req *model.CreateFoodLogRequest) (*model.FoodLogEntry, error) {
	if req.RecipeID != nil {
		recipe, err := s.recipeRepo.Get(ctx, *req.RecipeID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve recipe: %w", err)
		}
		if recipe == nil {
			return nil, errors.BadRequest(fmt.Sprintf("unknown recipe %s", req.RecipeID), nil)
		}
	}

	portion := req.Portion
	if portion == 0 {
		portion = 1
	}

	entry := &model.FoodLogEntry{
		LoggedDate: req.LoggedDate,
		MealType:   req.MealType,
		RecipeID:   req.RecipeID,
		CustomName: req.CustomName,
		Portion:    portion,
		Calories:   req.Calories,
		SaltG:      req.SaltG,
		CarbsG:     req.CarbsG,
		ProteinG:   req.ProteinG,
		FiberG:     req.FiberG,
		Note:       req.Note,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create food log entry: %w", err)
	}

	if _, err := s.streakSvc.Advance(ctx, model.StreakFoodLog); err != nil {
		return nil, fmt.Errorf("failed to advance food log streak: %w", err)
	}

	metrics.RecordsCreated.WithLabelValues("food_log").Inc()
	return entry, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete food log entry: %w", err)
	}
	metrics.RecordsDeleted.WithLabelValues("food_log").Inc()
	return nil
}
