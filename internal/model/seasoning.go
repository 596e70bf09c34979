package model

// Seasoning is one row of the salt-content reference table
// (grams of salt per tablespoon / teaspoon).
type Seasoning struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SaltPerTbsp float64 `json:"salt_per_tbsp"`
	SaltPerTsp  float64 `json:"salt_per_tsp"`
	Category    string  `json:"category"`
}

// SeasoningUnit is a spoon measure
type SeasoningUnit string

const (
	UnitTablespoon SeasoningUnit = "tbsp"
	UnitTeaspoon   SeasoningUnit = "tsp"
)
