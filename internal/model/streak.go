package model

// StreakType identifies an independent consecutive-day counter
type StreakType string

const (
	StreakMission StreakType = "mission"
	StreakBPLog   StreakType = "bp_record"
	StreakFoodLog StreakType = "food_log"
	StreakCPAP    StreakType = "cpap"
)

// StreakTypes lists every counter, in display order
var StreakTypes = []StreakType{StreakMission, StreakBPLog, StreakFoodLog, StreakCPAP}

// StreakCounter tracks consecutive qualifying days for one streak type.
// The counter never decays on its own; it resets to 1 on the next
// qualifying event after a gap.
type StreakCounter struct {
	StreakType   StreakType `json:"streak_type" db:"streak_type"`
	CurrentCount int        `json:"current_count" db:"current_count"`
	BestCount    int        `json:"best_count" db:"best_count"`
	LastDate     string     `json:"last_date,omitempty" db:"last_date"`
}
