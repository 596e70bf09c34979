// Package memory implements the repository contracts over in-process
// slices, mirroring the browser-local storage variant of the app. It
// backs handler and service tests and can run the API without postgres.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/model"
)

// Store holds every collection behind a single mutex. Operations copy
// records on the way in and out so callers cannot alias internal state.
type Store struct {
	mu sync.Mutex

	readings  []*model.BloodPressureReading
	weights   []*model.WeightEntry
	foodLogs  []*model.FoodLogEntry
	condition []*model.ConditionLogEntry
	recipes   []*model.Recipe
	visits    []*model.MedicalVisit
	exercises []*model.ExerciseLog
	missions  []*model.DailyMission
	streaks   map[model.StreakType]*model.StreakCounter
}

func NewStore() *Store {
	streaks := make(map[model.StreakType]*model.StreakCounter, len(model.StreakTypes))
	for _, t := range model.StreakTypes {
		streaks[t] = &model.StreakCounter{StreakType: t}
	}
	return &Store{streaks: streaks}
}

// --- blood pressure ---

func (s *Store) CreateBloodPressure(ctx context.Context, reading *model.BloodPressureReading) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reading.ID = uuid.New()
	reading.CreatedAt = time.Now()
	clone := *reading
	s.readings = append(s.readings, &clone)
	return nil
}

func (s *Store) ListBloodPressure(ctx context.Context, filter *model.BloodPressureFilter) ([]*model.BloodPressureReading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*model.BloodPressureReading{}
	for _, r := range s.readings {
		if filter.Date != "" && !strings.HasPrefix(r.MeasuredAt, filter.Date) {
			continue
		}
		clone := *r
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeasuredAt > out[j].MeasuredAt
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *Store) DeleteBloodPressure(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.readings {
		if r.ID == id {
			s.readings = append(s.readings[:i], s.readings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("blood pressure reading not found")
}

// --- weight ---

func (s *Store) UpsertWeight(ctx context.Context, entry *model.WeightEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.weights {
		if w.MeasuredAt == entry.MeasuredAt {
			w.WeightKg = entry.WeightKg
			entry.ID = w.ID
			return nil
		}
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	clone := *entry
	s.weights = append(s.weights, &clone)
	return nil
}

func (s *Store) ListWeight(ctx context.Context, limit int) ([]*model.WeightEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.WeightEntry, 0, len(s.weights))
	for _, w := range s.weights {
		clone := *w
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeasuredAt > out[j].MeasuredAt
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) DeleteWeight(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, w := range s.weights {
		if w.ID == id {
			s.weights = append(s.weights[:i], s.weights[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("weight entry not found")
}

// --- food log ---

func (s *Store) CreateFoodLog(ctx context.Context, entry *model.FoodLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	clone := *entry
	s.foodLogs = append(s.foodLogs, &clone)
	return nil
}

func (s *Store) ListFoodLogByDate(ctx context.Context, date string) ([]*model.FoodLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*model.FoodLogEntry{}
	for _, e := range s.foodLogs {
		if e.LoggedDate == date {
			clone := *e
			out = append(out, &clone)
		}
	}
	// Stable: insertion order survives within a meal type.
	sort.SliceStable(out, func(i, j int) bool {
		return model.MealOrder(out[i].MealType) < model.MealOrder(out[j].MealType)
	})
	return out, nil
}

func (s *Store) DeleteFoodLog(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.foodLogs {
		if e.ID == id {
			s.foodLogs = append(s.foodLogs[:i], s.foodLogs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("food log entry not found")
}

// --- condition log ---

func (s *Store) UpsertCondition(ctx context.Context, entry *model.ConditionLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.condition {
		if c.LoggedDate == entry.LoggedDate {
			entry.ID = c.ID
			clone := *entry
			s.condition[i] = &clone
			return nil
		}
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	clone := *entry
	s.condition = append(s.condition, &clone)
	return nil
}

func (s *Store) GetConditionByDate(ctx context.Context, date string) (*model.ConditionLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.condition {
		if c.LoggedDate == date {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *Store) ListCondition(ctx context.Context, limit int) ([]*model.ConditionLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.ConditionLogEntry, 0, len(s.condition))
	for _, c := range s.condition {
		clone := *c
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LoggedDate > out[j].LoggedDate
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- recipes ---

func (s *Store) CreateRecipe(ctx context.Context, recipe *model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	recipe.CreatedAt = time.Now()
	clone := *recipe
	s.recipes = append(s.recipes, &clone)
	return nil
}

func (s *Store) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.recipes {
		if r.ID == id {
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *Store) ListRecipes(ctx context.Context, filter *model.RecipeFilter) ([]*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*model.Recipe{}
	for _, r := range s.recipes {
		if filter.Category != "" && r.Category != filter.Category {
			continue
		}
		if filter.Favorite && !r.IsFavorite {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(filter.Search)) {
			continue
		}
		clone := *r
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *Store) SetRecipeFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.recipes {
		if r.ID == id {
			r.IsFavorite = favorite
			return nil
		}
	}
	return fmt.Errorf("recipe not found")
}

// --- medical visits ---

func (s *Store) CreateVisit(ctx context.Context, visit *model.MedicalVisit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	visit.ID = uuid.New()
	visit.CreatedAt = time.Now()
	clone := *visit
	s.visits = append(s.visits, &clone)
	return nil
}

func (s *Store) GetVisit(ctx context.Context, id uuid.UUID) (*model.MedicalVisit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.visits {
		if v.ID == id {
			clone := *v
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateVisit(ctx context.Context, visit *model.MedicalVisit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.visits {
		if v.ID == visit.ID {
			clone := *visit
			clone.CreatedAt = v.CreatedAt
			s.visits[i] = &clone
			return nil
		}
	}
	return fmt.Errorf("medical visit not found")
}

func (s *Store) DeleteVisit(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.visits {
		if v.ID == id {
			s.visits = append(s.visits[:i], s.visits[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("medical visit not found")
}

func (s *Store) ListVisits(ctx context.Context) ([]*model.MedicalVisit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.MedicalVisit, 0, len(s.visits))
	for _, v := range s.visits {
		clone := *v
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].VisitDate > out[j].VisitDate
	})
	return out, nil
}

func (s *Store) NextUpcomingVisit(ctx context.Context, after string) (*model.MedicalVisit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next *model.MedicalVisit
	for _, v := range s.visits {
		if v.NextVisit == "" || v.NextVisit < after {
			continue
		}
		if next == nil || v.NextVisit < next.NextVisit {
			next = v
		}
	}
	if next == nil {
		return nil, nil
	}
	clone := *next
	return &clone, nil
}

// --- exercise log ---

func (s *Store) CreateExerciseLog(ctx context.Context, log *model.ExerciseLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.ID = uuid.New()
	log.CreatedAt = time.Now()
	clone := *log
	s.exercises = append(s.exercises, &clone)
	return nil
}

func (s *Store) GetExerciseLog(ctx context.Context, id uuid.UUID) (*model.ExerciseLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.exercises {
		if e.ID == id {
			clone := *e
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *Store) ListExerciseLogByDate(ctx context.Context, date string) ([]*model.ExerciseLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*model.ExerciseLog{}
	for _, e := range s.exercises {
		if e.LoggedDate == date {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *Store) SetExerciseCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.exercises {
		if e.ID == id {
			e.Completed = completed
			return nil
		}
	}
	return fmt.Errorf("exercise log not found")
}

func (s *Store) DeleteExerciseLog(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.exercises {
		if e.ID == id {
			s.exercises = append(s.exercises[:i], s.exercises[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("exercise log not found")
}

// --- missions ---

func (s *Store) CreateMission(ctx context.Context, mission *model.DailyMission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mission.ID = uuid.New()
	mission.CreatedAt = time.Now()
	clone := *mission
	s.missions = append(s.missions, &clone)
	return nil
}

func (s *Store) GetMissionByDate(ctx context.Context, date string) (*model.DailyMission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.missions {
		if m.MissionDate == date {
			clone := *m
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *Store) SetMissionCompleted(ctx context.Context, date string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.missions {
		if m.MissionDate == date {
			m.Completed = completed
			return nil
		}
	}
	return fmt.Errorf("daily mission not found")
}

// --- streaks ---

func (s *Store) GetStreak(ctx context.Context, streakType model.StreakType) (*model.StreakCounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, ok := s.streaks[streakType]
	if !ok {
		return nil, fmt.Errorf("unknown streak type %q", streakType)
	}
	clone := *counter
	return &clone, nil
}

func (s *Store) ListStreaks(ctx context.Context) ([]*model.StreakCounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.StreakCounter, 0, len(s.streaks))
	for _, t := range model.StreakTypes {
		clone := *s.streaks[t]
		out = append(out, &clone)
	}
	return out, nil
}

func (s *Store) SaveStreak(ctx context.Context, counter *model.StreakCounter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *counter
	s.streaks[counter.StreakType] = &clone
	return nil
}
