package exercise

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository/memory"
	apperrors "github.com/karadarhythm/health-api/pkg/errors"
)

func newTestService() (*Service, context.Context) {
	store := memory.NewStore()
	clock := func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return NewService(store.ExerciseLog(), clock), context.Background()
}

func TestCatalogFilterByCategory(t *testing.T) {
	svc, _ := newTestService()

	all := svc.Catalog("")
	assert.NotEmpty(t, all)

	stretches := svc.Catalog(model.ExerciseStretch)
	assert.NotEmpty(t, stretches)
	assert.Less(t, len(stretches), len(all))
	for _, ex := range stretches {
		assert.Equal(t, model.ExerciseStretch, ex.Category)
	}
}

func TestLogTakesValuesFromCatalog(t *testing.T) {
	svc, ctx := newTestService()

	entry, err := svc.Log(ctx, &model.CreateExerciseLogRequest{ExerciseID: "e1"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-15", entry.LoggedDate)
	assert.Equal(t, "e1", entry.ExerciseID)
	assert.Equal(t, "首のストレッチ", entry.ExerciseName)
	assert.Equal(t, 3, entry.DurationMin)
	assert.InDelta(t, 5, entry.CaloriesBurned, 0.001)
	assert.False(t, entry.Completed)
}

func TestLogUnknownExercise(t *testing.T) {
	svc, ctx := newTestService()

	_, err := svc.Log(ctx, &model.CreateExerciseLogRequest{ExerciseID: "nope"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestSetCompleted(t *testing.T) {
	svc, ctx := newTestService()

	entry, err := svc.Log(ctx, &model.CreateExerciseLogRequest{ExerciseID: "e2"})
	require.NoError(t, err)

	updated, err := svc.SetCompleted(ctx, entry.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	entries, err := svc.ListByDate(ctx, "2025-06-15")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Completed)
}

func TestSetCompletedMissingEntry(t *testing.T) {
	svc, ctx := newTestService()

	_, err := svc.SetCompleted(ctx, uuid.New(), true)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSummaryCountsOnlyCompleted(t *testing.T) {
	svc, ctx := newTestService()

	done, err := svc.Log(ctx, &model.CreateExerciseLogRequest{ExerciseID: "e1", Completed: true})
	require.NoError(t, err)
	_, err = svc.Log(ctx, &model.CreateExerciseLogRequest{ExerciseID: "e2"})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-15", summary.Date)
	assert.Equal(t, 1, summary.CompletedCount)
	assert.Equal(t, done.DurationMin, summary.TotalDuration)
	assert.InDelta(t, done.CaloriesBurned, summary.TotalCalories, 0.001)
}

func TestDelete(t *testing.T) {
	svc, ctx := newTestService()

	entry, err := svc.Log(ctx, &model.CreateExerciseLogRequest{ExerciseID: "e3"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, entry.ID))

	entries, err := svc.ListByDate(ctx, "2025-06-15")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
