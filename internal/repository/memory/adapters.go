package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
)

// Per-domain views over the shared Store so it can stand in for the
// postgres repositories one interface at a time.

func (s *Store) BloodPressure() repository.BloodPressureRepository { return bpView{s} }
func (s *Store) Weight() repository.WeightRepository               { return weightView{s} }
func (s *Store) FoodLog() repository.FoodLogRepository             { return foodLogView{s} }
func (s *Store) Condition() repository.ConditionRepository         { return conditionView{s} }
func (s *Store) Recipes() repository.RecipeRepository              { return recipeView{s} }
func (s *Store) Visits() repository.MedicalVisitRepository         { return visitView{s} }
func (s *Store) ExerciseLog() repository.ExerciseLogRepository     { return exerciseView{s} }
func (s *Store) Missions() repository.MissionRepository            { return missionView{s} }
func (s *Store) Streaks() repository.StreakRepository              { return streakView{s} }

type bpView struct{ s *Store }

func (v bpView) Create(ctx context.Context, reading *model.BloodPressureReading) error {
	return v.s.CreateBloodPressure(ctx, reading)
}

func (v bpView) List(ctx context.Context, filter *model.BloodPressureFilter) ([]*model.BloodPressureReading, error) {
	return v.s.ListBloodPressure(ctx, filter)
}

func (v bpView) Delete(ctx context.Context, id uuid.UUID) error {
	return v.s.DeleteBloodPressure(ctx, id)
}

type weightView struct{ s *Store }

func (v weightView) Upsert(ctx context.Context, entry *model.WeightEntry) error {
	return v.s.UpsertWeight(ctx, entry)
}

func (v weightView) List(ctx context.Context, limit int) ([]*model.WeightEntry, error) {
	return v.s.ListWeight(ctx, limit)
}

func (v weightView) Delete(ctx context.Context, id uuid.UUID) error {
	return v.s.DeleteWeight(ctx, id)
}

type foodLogView struct{ s *Store }

func (v foodLogView) Create(ctx context.Context, entry *model.FoodLogEntry) error {
	return v.s.CreateFoodLog(ctx, entry)
}

func (v foodLogView) ListByDate(ctx context.Context, date string) ([]*model.FoodLogEntry, error) {
	return v.s.ListFoodLogByDate(ctx, date)
}

func (v foodLogView) Delete(ctx context.Context, id uuid.UUID) error {
	return v.s.DeleteFoodLog(ctx, id)
}

type conditionView struct{ s *Store }

func (v conditionView) Upsert(ctx context.Context, entry *model.ConditionLogEntry) error {
	return v.s.UpsertCondition(ctx, entry)
}

func (v conditionView) GetByDate(ctx context.Context, date string) (*model.ConditionLogEntry, error) {
	return v.s.GetConditionByDate(ctx, date)
}

func (v conditionView) List(ctx context.Context, limit int) ([]*model.ConditionLogEntry, error) {
	return v.s.ListCondition(ctx, limit)
}

type recipeView struct{ s *Store }

func (v recipeView) Create(ctx context.Context, recipe *model.Recipe) error {
	return v.s.CreateRecipe(ctx, recipe)
}

func (v recipeView) Get(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	return v.s.GetRecipe(ctx, id)
}

func (v recipeView) List(ctx context.Context, filter *model.RecipeFilter) ([]*model.Recipe, error) {
	return v.s.ListRecipes(ctx, filter)
}

func (v recipeView) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	return v.s.SetRecipeFavorite(ctx, id, favorite)
}

type visitView struct{ s *Store }

func (v visitView) Create(ctx context.Context, visit *model.MedicalVisit) error {
	return v.s.CreateVisit(ctx, visit)
}

func (v visitView) Get(ctx context.Context, id uuid.UUID) (*model.MedicalVisit, error) {
	return v.s.GetVisit(ctx, id)
}

func (v visitView) Update(ctx context.Context, visit *model.MedicalVisit) error {
	return v.s.UpdateVisit(ctx, visit)
}

func (v visitView) Delete(ctx context.Context, id uuid.UUID) error {
	return v.s.DeleteVisit(ctx, id)
}

func (v visitView) List(ctx context.Context) ([]*model.MedicalVisit, error) {
	return v.s.ListVisits(ctx)
}

func (v visitView) NextUpcoming(ctx context.Context, after string) (*model.MedicalVisit, error) {
	return v.s.NextUpcomingVisit(ctx, after)
}

type exerciseView struct{ s *Store }

func (v exerciseView) Create(ctx context.Context, log *model.ExerciseLog) error {
	return v.s.CreateExerciseLog(ctx, log)
}

func (v exerciseView) Get(ctx context.Context, id uuid.UUID) (*model.ExerciseLog, error) {
	return v.s.GetExerciseLog(ctx, id)
}

func (v exerciseView) ListByDate(ctx context.Context, date string) ([]*model.ExerciseLog, error) {
	return v.s.ListExerciseLogByDate(ctx, date)
}

func (v exerciseView) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	return v.s.SetExerciseCompleted(ctx, id, completed)
}

func (v exerciseView) Delete(ctx context.Context, id uuid.UUID) error {
	return v.s.DeleteExerciseLog(ctx, id)
}

type missionView struct{ s *Store }

func (v missionView) Create(ctx context.Context, mission *model.DailyMission) error {
	return v.s.CreateMission(ctx, mission)
}

func (v missionView) GetByDate(ctx context.Context, date string) (*model.DailyMission, error) {
	return v.s.GetMissionByDate(ctx, date)
}

func (v missionView) SetCompleted(ctx context.Context, date string, completed bool) error {
	return v.s.SetMissionCompleted(ctx, date, completed)
}

type streakView struct{ s *Store }

func (v streakView) Get(ctx context.Context, streakType model.StreakType) (*model.StreakCounter, error) {
	return v.s.GetStreak(ctx, streakType)
}

func (v streakView) List(ctx context.Context) ([]*model.StreakCounter, error) {
	return v.s.ListStreaks(ctx)
}

func (v streakView) Save(ctx context.Context, counter *model.StreakCounter) error {
	return v.s.SaveStreak(ctx, counter)
}
