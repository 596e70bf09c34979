package bloodpressure

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

func newTestService(now time.Time) (*Service, *memory.Store, context.Context) {
	store := memory.NewStore()
	clock := func() time.Time { return now }
	svc := NewService(store.BloodPressure(), streak.NewService(store.Streaks(), clock), clock)
	return svc, store, context.Background()
}

func TestCreateStampsMeasurementTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC)
	svc, _, ctx := newTestService(now)

	reading, err := svc.Create(ctx, &model.CreateBloodPressureRequest{
		Systolic:  152,
		Diastolic: 94,
		Timing:    model.BPTimingMorning,
	})
	require.NoError(t, err)

	assert.Equal(t, now.Format(time.RFC3339), reading.MeasuredAt)
	assert.Equal(t, 152, reading.Systolic)
	assert.Equal(t, model.BPTimingMorning, reading.Timing)
}

func TestCreateAdvancesRecordingStreak(t *testing.T) {
	svc, store, ctx := newTestService(time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC))

	_, err := svc.Create(ctx, &model.CreateBloodPressureRequest{Systolic: 150, Diastolic: 90})
	require.NoError(t, err)

	counter, err := store.GetStreak(ctx, model.StreakBPLog)
	require.NoError(t, err)
	assert.Equal(t, 1, counter.CurrentCount)
	assert.Equal(t, "2025-06-15", counter.LastDate)
}

func TestListFilterByDate(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	for day := 14; day <= 15; day++ {
		now := time.Date(2025, 6, day, 7, 30, 0, 0, time.UTC)
		clock := func() time.Time { return now }
		svc := NewService(store.BloodPressure(), streak.NewService(store.Streaks(), clock), clock)
		_, err := svc.Create(ctx, &model.CreateBloodPressureRequest{Systolic: 140 + day, Diastolic: 90})
		require.NoError(t, err)
	}

	svc := NewService(store.BloodPressure(), streak.NewService(store.Streaks(), nil), nil)
	readings, err := svc.List(ctx, &model.BloodPressureFilter{Date: "2025-06-15"})
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, 155, readings[0].Systolic)
}

func TestLatestPicksNewestReading(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	for hour := 7; hour <= 21; hour += 14 {
		now := time.Date(2025, 6, 15, hour, 0, 0, 0, time.UTC)
		clock := func() time.Time { return now }
		svc := NewService(store.BloodPressure(), streak.NewService(store.Streaks(), clock), clock)
		_, err := svc.Create(ctx, &model.CreateBloodPressureRequest{Systolic: 130 + hour, Diastolic: 85})
		require.NoError(t, err)
	}

	svc := NewService(store.BloodPressure(), streak.NewService(store.Streaks(), nil), nil)
	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 151, latest.Systolic, "the evening reading is newer")
}

func TestLatestEmptyLog(t *testing.T) {
	svc, _, ctx := newTestService(time.Now())

	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestDelete(t *testing.T) {
	svc, _, ctx := newTestService(time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC))

	reading, err := svc.Create(ctx, &model.CreateBloodPressureRequest{Systolic: 150, Diastolic: 90})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, reading.ID))

	readings, err := svc.List(ctx, &model.BloodPressureFilter{})
	require.NoError(t, err)
	assert.Empty(t, readings)
}
