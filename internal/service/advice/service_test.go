package advice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository/memory"
	"github.com/karadarhythm/health-api/internal/service/bloodpressure"
	"github.com/karadarhythm/health-api/internal/service/condition"
	"github.com/karadarhythm/health-api/internal/service/exercise"
	"github.com/karadarhythm/health-api/internal/service/nutrition"
	"github.com/karadarhythm/health-api/internal/service/streak"
	"github.com/karadarhythm/health-api/internal/service/visit"
)

func baseSnapshot() Snapshot {
	return Snapshot{
		Nutrition: &model.NutritionSummary{},
		Targets:   model.DefaultNutritionTargets(),
		Exercise:  &model.ExerciseSummary{},
		Profile:   model.DefaultUserProfile(),
		Now:       time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
	}
}

func ids(items []model.Advice) []string {
	out := []string{}
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestEvaluateFirstDay(t *testing.T) {
	// Nothing logged yet, morning, no visits on record.
	items := Evaluate(baseSnapshot())

	// Highs first (record prompt, see-a-doctor), then the mediums.
	assert.Equal(t, []string{"bp1", "med1", "diet3", "ex2", "cond1"}, ids(items))
	assert.Equal(t, model.PriorityHigh, items[0].Priority)
	assert.Equal(t, model.AdviceBloodPressure, items[0].Category)
}

func TestEvaluateEveningSwitchesExerciseSuggestion(t *testing.T) {
	snap := baseSnapshot()
	snap.Now = time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC)

	items := Evaluate(snap)
	assert.Contains(t, ids(items), "ex1")
	assert.NotContains(t, ids(items), "ex2")
}

func TestEvaluateHighBloodPressure(t *testing.T) {
	snap := baseSnapshot()
	snap.LatestBP = &model.BloodPressureReading{Systolic: 165, Diastolic: 95}
	snap.VisitCount = 1

	items := Evaluate(snap)
	require.NotEmpty(t, items)

	assert.Equal(t, "bp2", items[0].ID)
	assert.Equal(t, model.PriorityHigh, items[0].Priority)
	assert.Contains(t, items[0].Message, "165/95")
}

func TestEvaluateDiastolicAloneTriggersWarning(t *testing.T) {
	snap := baseSnapshot()
	snap.LatestBP = &model.BloodPressureReading{Systolic: 120, Diastolic: 102}

	items := Evaluate(snap)
	assert.Equal(t, "bp2", items[0].ID)
}

func TestEvaluateGoodBloodPressure(t *testing.T) {
	snap := baseSnapshot()
	snap.LatestBP = &model.BloodPressureReading{Systolic: 118, Diastolic: 76}

	items := Evaluate(snap)
	assert.Contains(t, ids(items), "bp4")

	for _, item := range items {
		if item.ID == "bp4" {
			assert.Equal(t, model.PriorityLow, item.Priority)
		}
	}
}

func TestEvaluateSaltOverTarget(t *testing.T) {
	snap := baseSnapshot()
	snap.Nutrition.SaltG = 7.5

	items := Evaluate(snap)
	assert.Contains(t, ids(items), "diet1")
	assert.NotContains(t, ids(items), "diet2")
	assert.NotContains(t, ids(items), "diet3")
}

func TestEvaluateSaltNearTarget(t *testing.T) {
	snap := baseSnapshot()
	snap.Nutrition.SaltG = 5.0 // over 80% of the 6g target

	items := Evaluate(snap)
	assert.Contains(t, ids(items), "diet2")
}

func TestEvaluateSaltWellUnderTargetSaysNothing(t *testing.T) {
	snap := baseSnapshot()
	snap.Nutrition.SaltG = 2.0

	items := Evaluate(snap)
	assert.NotContains(t, ids(items), "diet1")
	assert.NotContains(t, ids(items), "diet2")
	assert.NotContains(t, ids(items), "diet3")
}

func TestEvaluateCompletedExerciseCelebrates(t *testing.T) {
	snap := baseSnapshot()
	snap.Exercise = &model.ExerciseSummary{CompletedCount: 2, TotalDuration: 8, TotalCalories: 17}

	items := Evaluate(snap)
	assert.Contains(t, ids(items), "ex3")

	for _, item := range items {
		if item.ID == "ex3" {
			assert.Contains(t, item.Title, "2つ")
			assert.Contains(t, item.Message, "8分")
		}
	}
}

func TestEvaluatePalpitation(t *testing.T) {
	snap := baseSnapshot()
	snap.TodayCondition = &model.ConditionLogEntry{LoggedDate: "2025-06-15", Palpitation: true}

	items := Evaluate(snap)
	assert.Contains(t, ids(items), "cond2")
	assert.NotContains(t, ids(items), "cond1")
	assert.Equal(t, model.PriorityHigh, items[0].Priority)
}

func TestEvaluateCalmConditionSaysNothing(t *testing.T) {
	snap := baseSnapshot()
	snap.TodayCondition = &model.ConditionLogEntry{LoggedDate: "2025-06-15"}

	items := Evaluate(snap)
	assert.NotContains(t, ids(items), "cond1")
	assert.NotContains(t, ids(items), "cond2")
}

func TestEvaluateRecordingStreak(t *testing.T) {
	snap := baseSnapshot()
	snap.ConditionDays = 5

	items := Evaluate(snap)
	assert.Contains(t, ids(items), "gen1")

	last := items[len(items)-1]
	assert.Equal(t, "gen1", last.ID, "low priority sorts last")
	assert.Contains(t, last.Title, "5日連続")
}

func TestEvaluateShortStreakIsSilent(t *testing.T) {
	snap := baseSnapshot()
	snap.ConditionDays = 2

	items := Evaluate(snap)
	assert.NotContains(t, ids(items), "gen1")
}

func TestEvaluatePriorityOrderIsStable(t *testing.T) {
	snap := baseSnapshot()
	snap.LatestBP = &model.BloodPressureReading{Systolic: 170, Diastolic: 98}
	snap.Nutrition.SaltG = 8
	snap.TodayCondition = &model.ConditionLogEntry{Palpitation: true}

	items := Evaluate(snap)
	// All four highs keep rule order: bp, diet, condition, visit.
	assert.Equal(t, []string{"bp2", "diet1", "cond2", "med1", "ex2"}, ids(items))
}

func TestGenerateAssemblesSnapshotFromStore(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	clock := func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }

	streakSvc := streak.NewService(store.Streaks(), clock)
	bpSvc := bloodpressure.NewService(store.BloodPressure(), streakSvc, clock)
	nutritionSvc := nutrition.NewService(store.FoodLog(), store.Recipes(), model.DefaultNutritionTargets())
	exerciseSvc := exercise.NewService(store.ExerciseLog(), clock)
	conditionSvc := condition.NewService(store.Condition(), streakSvc, clock)
	visitSvc := visit.NewService(store.Visits(), clock)

	svc := NewService(bpSvc, nutritionSvc, exerciseSvc, conditionSvc, visitSvc, model.DefaultUserProfile(), clock)

	_, err := bpSvc.Create(ctx, &model.CreateBloodPressureRequest{Systolic: 166, Diastolic: 92})
	require.NoError(t, err)

	items, err := svc.Generate(ctx)
	require.NoError(t, err)

	got := ids(items)
	assert.Contains(t, got, "bp2", "the logged reading drives the bp rule")
	assert.Contains(t, got, "med1", "no visit on record yet")
	assert.NotContains(t, got, "bp1")
}
