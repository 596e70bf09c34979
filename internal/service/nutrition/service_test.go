package nutrition

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository/memory"
)

func f(v float64) *float64 { return &v }

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewService(store.FoodLog(), store.Recipes(), model.DefaultNutritionTargets()), store
}

func TestSummarizeEmptyDay(t *testing.T) {
	svc, _ := newTestService(t)

	entries, summary, err := svc.Summarize(context.Background(), "2025-06-15")
	require.NoError(t, err)

	assert.Empty(t, entries)
	assert.Equal(t, "2025-06-15", summary.Date)
	assert.Zero(t, summary.Calories)
	assert.Zero(t, summary.SaltG)
}

func TestSummarizeDirectValues(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.CreateFoodLog(ctx, &model.FoodLogEntry{
		LoggedDate: "2025-06-15",
		MealType:   model.MealLunch,
		CustomName: "コンビニ弁当",
		Portion:    1,
		Calories:   f(650),
		SaltG:      f(3.2),
		CarbsG:     f(80),
		ProteinG:   f(22),
	}))

	_, summary, err := svc.Summarize(ctx, "2025-06-15")
	require.NoError(t, err)

	assert.InDelta(t, 650, summary.Calories, 0.001)
	assert.InDelta(t, 3.2, summary.SaltG, 0.001)
	assert.InDelta(t, 80, summary.CarbsG, 0.001)
	assert.InDelta(t, 22, summary.ProteinG, 0.001)
	assert.Zero(t, summary.FiberG, "unset fields contribute nothing")
}

func TestSummarizeRecipeFallback(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	recipe := &model.Recipe{
		Name:     "減塩豚汁",
		Category: "soup",
		Calories: f(120),
		SaltG:    1.1,
		CarbsG:   f(10),
		ProteinG: f(8),
		FiberG:   f(2.5),
	}
	require.NoError(t, store.CreateRecipe(ctx, recipe))

	require.NoError(t, store.CreateFoodLog(ctx, &model.FoodLogEntry{
		LoggedDate: "2025-06-15",
		MealType:   model.MealDinner,
		RecipeID:   &recipe.ID,
		Portion:    1,
	}))

	_, summary, err := svc.Summarize(ctx, "2025-06-15")
	require.NoError(t, err)

	assert.InDelta(t, 120, summary.Calories, 0.001)
	assert.InDelta(t, 1.1, summary.SaltG, 0.001)
	assert.InDelta(t, 2.5, summary.FiberG, 0.001)
}

func TestSummarizeDirectValueWinsOverRecipe(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	recipe := &model.Recipe{Name: "味噌汁", Calories: f(60), SaltG: 1.8}
	require.NoError(t, store.CreateRecipe(ctx, recipe))

	// Salt entered by hand (reduced-salt miso), calories left to the recipe.
	require.NoError(t, store.CreateFoodLog(ctx, &model.FoodLogEntry{
		LoggedDate: "2025-06-15",
		MealType:   model.MealBreakfast,
		RecipeID:   &recipe.ID,
		Portion:    1,
		SaltG:      f(0.9),
	}))

	_, summary, err := svc.Summarize(ctx, "2025-06-15")
	require.NoError(t, err)

	assert.InDelta(t, 0.9, summary.SaltG, 0.001)
	assert.InDelta(t, 60, summary.Calories, 0.001)
}

func TestSummarizePortionScaling(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	recipe := &model.Recipe{Name: "ごはん", Calories: f(250), SaltG: 0, CarbsG: f(55)}
	require.NoError(t, store.CreateRecipe(ctx, recipe))

	require.NoError(t, store.CreateFoodLog(ctx, &model.FoodLogEntry{
		LoggedDate: "2025-06-15",
		MealType:   model.MealDinner,
		RecipeID:   &recipe.ID,
		Portion:    0.5,
	}))

	_, summary, err := svc.Summarize(ctx, "2025-06-15")
	require.NoError(t, err)

	assert.InDelta(t, 125, summary.Calories, 0.001)
	assert.InDelta(t, 27.5, summary.CarbsG, 0.001)
}

func TestSummarizeZeroPortionCountsAsOne(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.CreateFoodLog(ctx, &model.FoodLogEntry{
		LoggedDate: "2025-06-15",
		MealType:   model.MealSnack,
		CustomName: "りんご",
		Calories:   f(80),
	}))

	_, summary, err := svc.Summarize(ctx, "2025-06-15")
	require.NoError(t, err)
	assert.InDelta(t, 80, summary.Calories, 0.001)
}

func TestSummarizeEntriesInMealOrder(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	for _, meal := range []model.MealType{model.MealSnack, model.MealDinner, model.MealBreakfast, model.MealLunch} {
		require.NoError(t, store.CreateFoodLog(ctx, &model.FoodLogEntry{
			LoggedDate: "2025-06-15",
			MealType:   meal,
			CustomName: string(meal),
		}))
	}

	entries, _, err := svc.Summarize(ctx, "2025-06-15")
	require.NoError(t, err)
	require.Len(t, entries, 4)

	got := []model.MealType{}
	for _, e := range entries {
		got = append(got, e.MealType)
	}
	assert.Equal(t, []model.MealType{model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack}, got)
}

func TestSummarizeDanglingRecipeSumsZero(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	missing := uuid.New()
	require.NoError(t, store.CreateFoodLog(ctx, &model.FoodLogEntry{
		LoggedDate: "2025-06-15",
		MealType:   model.MealLunch,
		RecipeID:   &missing,
	}))

	// A dangling reference sums as zero rather than failing the day.
	_, summary, err := svc.Summarize(ctx, "2025-06-15")
	require.NoError(t, err)
	assert.Zero(t, summary.Calories)
}

func TestProgress(t *testing.T) {
	svc, _ := newTestService(t)

	progress := svc.Progress(&model.NutritionSummary{
		Calories: 900,
		SaltG:    6,
		CarbsG:   30,
		ProteinG: 15,
		FiberG:   5,
	})

	assert.InDelta(t, 50, progress.CaloriesPct, 0.001)
	assert.InDelta(t, 100, progress.SaltPct, 0.001)
	assert.InDelta(t, 25, progress.CarbsPct, 0.001)
	assert.InDelta(t, 25, progress.ProteinPct, 0.001)
	assert.InDelta(t, 25, progress.FiberPct, 0.001)
}
