package condition

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository/memory"
	"github.com/karadarhythm/health-api/internal/service/streak"
)

func newTestService(store *memory.Store, now time.Time) *Service {
	clock := func() time.Time { return now }
	return NewService(store.Condition(), streak.NewService(store.Streaks(), clock), clock)
}

func boolPtr(b bool) *bool { return &b }

func TestSaveDefaults(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store, time.Date(2025, 6, 15, 22, 0, 0, 0, time.UTC))

	entry, err := svc.Save(context.Background(), &model.SaveConditionRequest{})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-15", entry.LoggedDate)
	assert.Equal(t, 3, entry.OverallScore)
	assert.Equal(t, 3, entry.FatigueLevel)
	assert.True(t, entry.CPAPUsed, "CPAP defaults to used")
	assert.False(t, entry.Palpitation)
}

func TestSaveOverwritesSameDate(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := svc.Save(ctx, &model.SaveConditionRequest{OverallScore: 2})
	require.NoError(t, err)
	_, err = svc.Save(ctx, &model.SaveConditionRequest{OverallScore: 4, Edema: true})
	require.NoError(t, err)

	entry, err := svc.GetByDate(ctx, "2025-06-15")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 4, entry.OverallScore)
	assert.True(t, entry.Edema)

	entries, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveAdvancesCPAPStreak(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	for day := 14; day <= 15; day++ {
		svc := newTestService(store, time.Date(2025, 6, day, 22, 0, 0, 0, time.UTC))
		_, err := svc.Save(ctx, &model.SaveConditionRequest{})
		require.NoError(t, err)
	}

	counter, err := store.GetStreak(ctx, model.StreakCPAP)
	require.NoError(t, err)
	assert.Equal(t, 2, counter.CurrentCount)
}

func TestSaveWithoutCPAPLeavesStreakAlone(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store, time.Date(2025, 6, 15, 22, 0, 0, 0, time.UTC))

	entry, err := svc.Save(context.Background(), &model.SaveConditionRequest{CPAPUsed: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, entry.CPAPUsed)

	counter, err := store.GetStreak(context.Background(), model.StreakCPAP)
	require.NoError(t, err)
	assert.Zero(t, counter.CurrentCount)
}

func TestGetByDateMissingReturnsNil(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))

	entry, err := svc.GetByDate(context.Background(), "2025-06-14")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestConsecutiveDays(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	// 13th, 14th, 15th logged; the 12th is missing.
	for _, date := range []string{"2025-06-10", "2025-06-13", "2025-06-14", "2025-06-15"} {
		require.NoError(t, store.UpsertCondition(ctx, &model.ConditionLogEntry{LoggedDate: date}))
	}

	svc := newTestService(store, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))
	days, err := svc.ConsecutiveDays(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, days)
}

func TestConsecutiveDaysZeroWhenTodayUnlogged(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.UpsertCondition(ctx, &model.ConditionLogEntry{LoggedDate: "2025-06-14"}))

	svc := newTestService(store, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))
	days, err := svc.ConsecutiveDays(ctx)
	require.NoError(t, err)
	assert.Zero(t, days)
}
