package model

// ExerciseCategory groups catalog entries
type ExerciseCategory string

const (
	ExerciseStretch    ExerciseCategory = "stretch"
	ExerciseStrength   ExerciseCategory = "strength"
	ExerciseCardio     ExerciseCategory = "cardio"
	ExerciseRelaxation ExerciseCategory = "relaxation"
)

// Exercise is one seated-exercise catalog entry
type Exercise struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	DurationMin    int              `json:"duration_min"`
	Category       ExerciseCategory `json:"category"`
	Difficulty     int              `json:"difficulty"`
	CaloriesBurned float64          `json:"calories_burned"`
	Steps          []string         `json:"steps"`
	Benefits       []string         `json:"benefits"`
	Caution        string           `json:"caution,omitempty"`
}

// ExerciseLog records one performed (or planned) exercise on a date
type ExerciseLog struct {
	Base
	LoggedDate     string  `json:"logged_date" db:"logged_date"`
	ExerciseID     string  `json:"exercise_id" db:"exercise_id"`
	ExerciseName   string  `json:"exercise_name" db:"exercise_name"`
	DurationMin    int     `json:"duration_min" db:"duration_min"`
	CaloriesBurned float64 `json:"calories_burned" db:"calories_burned"`
	Completed      bool    `json:"completed" db:"completed"`
	Note           string  `json:"note,omitempty" db:"note"`
}

// CreateExerciseLogRequest is the POST body for an exercise log entry
type CreateExerciseLogRequest struct {
	LoggedDate string `json:"logged_date" binding:"omitempty,dateonly"`
	ExerciseID string `json:"exercise_id" binding:"required"`
	Completed  bool   `json:"completed"`
	Note       string `json:"note"`
}

// ExerciseSummary totals the completed exercises of one day
type ExerciseSummary struct {
	Date           string  `json:"date"`
	TotalDuration  int     `json:"total_duration"`
	TotalCalories  float64 `json:"total_calories"`
	CompletedCount int     `json:"completed_count"`
}
