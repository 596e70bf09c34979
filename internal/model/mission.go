package model

// DailyMission is the one mission assigned for a given date. A mission
// is picked at random from the template list on first fetch of the day.
type DailyMission struct {
	Base
	MissionDate string `json:"mission_date" db:"mission_date"`
	MissionText string `json:"mission_text" db:"mission_text"`
	Completed   bool   `json:"completed" db:"completed"`
}

// CompleteMissionRequest marks the mission of a date complete or not
type CompleteMissionRequest struct {
	Date      string `json:"date" binding:"omitempty,dateonly"`
	Completed bool   `json:"completed"`
}

// MissionStatus is the daily mission together with the mission streak
type MissionStatus struct {
	Mission *DailyMission  `json:"mission"`
	Streak  *StreakCounter `json:"streak,omitempty"`
}
