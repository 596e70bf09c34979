package model

// Ingredient is one line of a recipe's ingredient list
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Recipe holds a low-salt recipe with per-serving nutrition. Reference
// data and user-added recipes share the shape; only the favorite flag
// is mutable after creation.
type Recipe struct {
	Base
	Name        string       `json:"name" db:"name"`
	Category    string       `json:"category" db:"category"`
	CookTimeMin int          `json:"cook_time_min" db:"cook_time_min"`
	Servings    int          `json:"servings" db:"servings"`
	Calories    *float64     `json:"calories,omitempty" db:"calories"`
	SaltG       float64      `json:"salt_g" db:"salt_g"`
	CarbsG      *float64     `json:"carbs_g,omitempty" db:"carbs_g"`
	ProteinG    *float64     `json:"protein_g,omitempty" db:"protein_g"`
	FiberG      *float64     `json:"fiber_g,omitempty" db:"fiber_g"`
	PotassiumMg *float64     `json:"potassium_mg,omitempty" db:"potassium_mg"`
	Ingredients []Ingredient `json:"ingredients" db:"-"`
	Steps       []string     `json:"steps" db:"-"`
	SaltTips    []string     `json:"salt_tips,omitempty" db:"-"`
	SugarTips   []string     `json:"sugar_tips,omitempty" db:"-"`
	IsFavorite  bool         `json:"is_favorite" db:"is_favorite"`
}

// RecipeFilter narrows catalog listings
type RecipeFilter struct {
	Category string `form:"category"`
	Favorite bool   `form:"favorite"`
	Search   string `form:"search"`
	Limit    int    `form:"limit"`
}

// PatchRecipeRequest carries the only supported recipe mutation
type PatchRecipeRequest struct {
	IsFavorite *bool `json:"is_favorite" binding:"required"`
}

// EatingOutPreset is a static menu item with typical nutrition values
type EatingOutPreset struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Calories *float64 `json:"calories,omitempty"`
	SaltG    *float64 `json:"salt_g,omitempty"`
	CarbsG   *float64 `json:"carbs_g,omitempty"`
	ProteinG *float64 `json:"protein_g,omitempty"`
	Warning  string   `json:"warning,omitempty"`
}
