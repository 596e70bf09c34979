package model

import "github.com/google/uuid"

// MealType identifies which meal an entry belongs to
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealOrder gives the display rank of a meal type (breakfast first)
func MealOrder(m MealType) int {
	switch m {
	case MealBreakfast:
		return 0
	case MealLunch:
		return 1
	case MealDinner:
		return 2
	case MealSnack:
		return 3
	default:
		return 4
	}
}

// FoodLogEntry is one logged meal item. The source is either a recipe
// reference or a free-text name; nutrition fields may be entered
// directly or fall back to the linked recipe's per-serving values.
type FoodLogEntry struct {
	Base
	LoggedDate string     `json:"logged_date" db:"logged_date"`
	MealType   MealType   `json:"meal_type" db:"meal_type"`
	RecipeID   *uuid.UUID `json:"recipe_id,omitempty" db:"recipe_id"`
	CustomName string     `json:"custom_name,omitempty" db:"custom_name"`
	Portion    float64    `json:"portion" db:"portion"`
	Calories   *float64   `json:"calories,omitempty" db:"calories"`
	SaltG      *float64   `json:"salt_g,omitempty" db:"salt_g"`
	CarbsG     *float64   `json:"carbs_g,omitempty" db:"carbs_g"`
	ProteinG   *float64   `json:"protein_g,omitempty" db:"protein_g"`
	FiberG     *float64   `json:"fiber_g,omitempty" db:"fiber_g"`
	Note       string     `json:"note,omitempty" db:"note"`
}

// CreateFoodLogRequest is the POST body for a food log entry
type CreateFoodLogRequest struct {
	LoggedDate string     `json:"logged_date" binding:"required,dateonly"`
	MealType   MealType   `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	RecipeID   *uuid.UUID `json:"recipe_id"`
	CustomName string     `json:"custom_name"`
	Portion    float64    `json:"portion" binding:"omitempty,gt=0"`
	Calories   *float64   `json:"calories"`
	SaltG      *float64   `json:"salt_g"`
	CarbsG     *float64   `json:"carbs_g"`
	ProteinG   *float64   `json:"protein_g"`
	FiberG     *float64   `json:"fiber_g"`
	Note       string     `json:"note"`
}

// NutritionSummary is the per-day total over food log entries
type NutritionSummary struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	SaltG    float64 `json:"salt_g"`
	CarbsG   float64 `json:"carbs_g"`
	ProteinG float64 `json:"protein_g"`
	FiberG   float64 `json:"fiber_g"`
}

// NutritionTargets are the fixed daily goals the summary is compared to
type NutritionTargets struct {
	Calories float64 `json:"calories" mapstructure:"calories"`
	SaltG    float64 `json:"salt_g" mapstructure:"salt_g"`
	CarbsG   float64 `json:"carbs_g" mapstructure:"carbs_g"`
	ProteinG float64 `json:"protein_g" mapstructure:"protein_g"`
	FiberG   float64 `json:"fiber_g" mapstructure:"fiber_g"`
}

// DefaultNutritionTargets returns the daily goals used when the config
// file carries no targets section.
func DefaultNutritionTargets() NutritionTargets {
	return NutritionTargets{
		Calories: 1800,
		SaltG:    6,
		CarbsG:   120,
		ProteinG: 60,
		FiberG:   20,
	}
}
