package risk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository/memory"
	"github.com/karadarhythm/health-api/internal/service/bloodpressure"
	"github.com/karadarhythm/health-api/internal/service/streak"
	"github.com/karadarhythm/health-api/internal/service/visit"
	"github.com/karadarhythm/health-api/internal/service/weight"
)

func TestClassifyBP(t *testing.T) {
	tests := []struct {
		systolic  int
		diastolic int
		want      model.BPCategory
	}{
		{118, 76, model.BPNormal},
		{129, 84, model.BPNormal},
		{130, 80, model.BPElevated},
		{125, 85, model.BPElevated},
		{140, 80, model.BPStage1},
		{139, 90, model.BPStage1},
		{159, 99, model.BPStage1},
		{160, 80, model.BPStage2},
		{120, 100, model.BPStage2},
		{168, 83, model.BPStage2},
	}

	for _, tt := range tests {
		got := ClassifyBP(tt.systolic, tt.diastolic)
		assert.Equalf(t, tt.want, got, "%d/%d", tt.systolic, tt.diastolic)
	}
}

func TestBMI(t *testing.T) {
	assert.InDelta(t, 38.06, BMI(110, 170), 0.01)
	assert.InDelta(t, 24.22, BMI(70, 170), 0.01)
	assert.Zero(t, BMI(70, 0), "no height means no BMI")
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		bmi  float64
		want model.BMICategory
	}{
		{22.0, model.BMINormal},
		{24.99, model.BMINormal},
		{25.0, model.BMIClass1},
		{29.9, model.BMIClass1},
		{30.0, model.BMIClass2},
		{34.9, model.BMIClass2},
		{35.0, model.BMISevere},
		{38.1, model.BMISevere},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, ClassifyBMI(tt.bmi), "bmi %.2f", tt.bmi)
	}
}

func newAssessService(store *memory.Store) *Service {
	clock := func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	streakSvc := streak.NewService(store.Streaks(), clock)
	bpSvc := bloodpressure.NewService(store.BloodPressure(), streakSvc, clock)
	weightSvc := weight.NewService(store.Weight(), clock)
	visitSvc := visit.NewService(store.Visits(), clock)
	return NewService(bpSvc, weightSvc, visitSvc, model.DefaultUserProfile())
}

func TestAssessFallsBackToProfile(t *testing.T) {
	store := memory.NewStore()
	svc := newAssessService(store)

	assessment, err := svc.Assess(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 168, assessment.Systolic)
	assert.Equal(t, 83, assessment.Diastolic)
	assert.Equal(t, model.BPStage2, assessment.BPCategory)
	assert.InDelta(t, 110, assessment.WeightKg, 0.001)
	assert.InDelta(t, 38.06, assessment.BMI, 0.01)
	assert.Equal(t, model.BMISevere, assessment.BMICategory)
	assert.False(t, assessment.HasVisited)
}

func TestAssessUsesLatestReadings(t *testing.T) {
	store := memory.NewStore()
	svc := newAssessService(store)
	ctx := context.Background()

	require.NoError(t, store.CreateBloodPressure(ctx, &model.BloodPressureReading{
		MeasuredAt: "2025-06-15T08:00:00Z", Systolic: 142, Diastolic: 88,
	}))
	require.NoError(t, store.UpsertWeight(ctx, &model.WeightEntry{MeasuredAt: "2025-06-15", WeightKg: 95}))
	require.NoError(t, store.CreateVisit(ctx, &model.MedicalVisit{VisitDate: "2025-06-01", Department: "循環器内科"}))

	assessment, err := svc.Assess(ctx)
	require.NoError(t, err)

	assert.Equal(t, 142, assessment.Systolic)
	assert.Equal(t, model.BPStage1, assessment.BPCategory)
	assert.InDelta(t, 95, assessment.WeightKg, 0.001)
	assert.Equal(t, model.BMIClass2, assessment.BMICategory)
	assert.True(t, assessment.HasVisited)
}
