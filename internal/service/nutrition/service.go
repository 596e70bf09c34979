// Package nutrition computes the per-day totals over the food log.
package nutrition

import (
	"context"
	"fmt"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
)

type Service struct {
	foodRepo   repository.FoodLogRepository
	recipeRepo repository.RecipeRepository
	targets    model.NutritionTargets
}

func NewService(foodRepo repository.FoodLogRepository, recipeRepo repository.RecipeRepository, targets model.NutritionTargets) *Service {
	return &Service{foodRepo: foodRepo, recipeRepo: recipeRepo, targets: targets}
}

// Summarize returns the day's entries in meal order together with the
// nutrition totals. Per entry each field takes the directly entered
// value, falls back to the linked recipe's per-serving value, else
// zero, and is scaled by the portion. An unlogged day yields a zero
// summary, not an error.
func (s *Service) Summarize(ctx context.Context, date string) ([]*model.FoodLogEntry, *model.NutritionSummary, error) {
	entries, err := s.foodRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list food log: %w", err)
	}

	summary := &model.NutritionSummary{Date: date}
	for _, entry := range entries {
		var recipe *model.Recipe
		if entry.RecipeID != nil {
			recipe, err = s.recipeRepo.Get(ctx, *entry.RecipeID)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to resolve recipe: %w", err)
			}
		}

		portion := entry.Portion
		if portion == 0 {
			portion = 1
		}

		var rc, rs, rcb, rp, rf *float64
		if recipe != nil {
			rc, rcb, rp, rf = recipe.Calories, recipe.CarbsG, recipe.ProteinG, recipe.FiberG
			rs = &recipe.SaltG
		}

		summary.Calories += effective(entry.Calories, rc) * portion
		summary.SaltG += effective(entry.SaltG, rs) * portion
		summary.CarbsG += effective(entry.CarbsG, rcb) * portion
		summary.ProteinG += effective(entry.ProteinG, rp) * portion
		summary.FiberG += effective(entry.FiberG, rf) * portion
	}

	return entries, summary, nil
}

// Targets returns the configured daily goals.
func (s *Service) Targets() model.NutritionTargets {
	return s.targets
}

// TargetProgress is the summary expressed as a percentage of each
// target. Values over 100 mean the goal was exceeded.
type TargetProgress struct {
	CaloriesPct float64 `json:"calories_pct"`
	SaltPct     float64 `json:"salt_pct"`
	CarbsPct    float64 `json:"carbs_pct"`
	ProteinPct  float64 `json:"protein_pct"`
	FiberPct    float64 `json:"fiber_pct"`
}

func (s *Service) Progress(summary *model.NutritionSummary) TargetProgress {
	return TargetProgress{
		CaloriesPct: pct(summary.Calories, s.targets.Calories),
		SaltPct:     pct(summary.SaltG, s.targets.SaltG),
		CarbsPct:    pct(summary.CarbsG, s.targets.CarbsG),
		ProteinPct:  pct(summary.ProteinG, s.targets.ProteinG),
		FiberPct:    pct(summary.FiberG, s.targets.FiberG),
	}
}

func pct(value, target float64) float64 {
	if target == 0 {
		return 0
	}
	return value / target * 100
}

func effective(direct, fallback *float64) float64 {
	if direct != nil {
		return *direct
	}
	if fallback != nil {
		return *fallback
	}
	return 0
}
