package model

// AdvicePriority orders advice items; lower rank sorts first
type AdvicePriority string

const (
	PriorityHigh   AdvicePriority = "high"
	PriorityMedium AdvicePriority = "medium"
	PriorityLow    AdvicePriority = "low"
)

// PriorityRank returns the sort rank of a priority (high first)
func PriorityRank(p AdvicePriority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// AdviceCategory tags an advice item with its subject area
type AdviceCategory string

const (
	AdviceBloodPressure AdviceCategory = "blood_pressure"
	AdviceDiet          AdviceCategory = "diet"
	AdviceExercise      AdviceCategory = "exercise"
	AdviceGeneral       AdviceCategory = "general"
)

// Advice is one generated recommendation
type Advice struct {
	ID       string         `json:"id"`
	Category AdviceCategory `json:"category"`
	Icon     string         `json:"icon"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Priority AdvicePriority `json:"priority"`
}
