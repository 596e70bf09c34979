package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/model"
)

// All repository interfaces in one file
type (
	// BloodPressureRepository stores immutable readings
	BloodPressureRepository interface {
		Create(ctx context.Context, reading *model.BloodPressureReading) error
		List(ctx context.Context, filter *model.BloodPressureFilter) ([]*model.BloodPressureReading, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}

	// WeightRepository keeps one entry per measurement date
	WeightRepository interface {
		Upsert(ctx context.Context, entry *model.WeightEntry) error
		List(ctx context.Context, limit int) ([]*model.WeightEntry, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}

	FoodLogRepository interface {
		Create(ctx context.Context, entry *model.FoodLogEntry) error
		ListByDate(ctx context.Context, date string) ([]*model.FoodLogEntry, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}

	// ConditionRepository upserts by logged_date
	ConditionRepository interface {
		Upsert(ctx context.Context, entry *model.ConditionLogEntry) error
		GetByDate(ctx context.Context, date string) (*model.ConditionLogEntry, error)
		List(ctx context.Context, limit int) ([]*model.ConditionLogEntry, error)
	}

	RecipeRepository interface {
		Create(ctx context.Context, recipe *model.Recipe) error
		Get(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
		List(ctx context.Context, filter *model.RecipeFilter) ([]*model.Recipe, error)
		SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
	}

	MedicalVisitRepository interface {
		Create(ctx context.Context, visit *model.MedicalVisit) error
		Get(ctx context.Context, id uuid.UUID) (*model.MedicalVisit, error)
		Update(ctx context.Context, visit *model.MedicalVisit) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.MedicalVisit, error)
		NextUpcoming(ctx context.Context, after string) (*model.MedicalVisit, error)
	}

	ExerciseLogRepository interface {
		Create(ctx context.Context, log *model.ExerciseLog) error
		Get(ctx context.Context, id uuid.UUID) (*model.ExerciseLog, error)
		ListByDate(ctx context.Context, date string) ([]*model.ExerciseLog, error)
		SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	// MissionRepository keeps at most one mission per date
	MissionRepository interface {
		Create(ctx context.Context, mission *model.DailyMission) error
		GetByDate(ctx context.Context, date string) (*model.DailyMission, error)
		SetCompleted(ctx context.Context, date string, completed bool) error
	}

	// StreakRepository reads and writes the per-type counters
	StreakRepository interface {
		Get(ctx context.Context, streakType model.StreakType) (*model.StreakCounter, error)
		List(ctx context.Context) ([]*model.StreakCounter, error)
		Save(ctx context.Context, counter *model.StreakCounter) error
	}
)
