package model

// ConditionLogEntry is the daily symptom check-in, keyed by logged_date.
// Saving twice on the same date overwrites the earlier entry.
type ConditionLogEntry struct {
	Base
	LoggedDate   string `json:"logged_date" db:"logged_date"`
	OverallScore int    `json:"overall_score" db:"overall_score"`
	Palpitation  bool   `json:"palpitation" db:"palpitation"`
	Edema        bool   `json:"edema" db:"edema"`
	FatigueLevel int    `json:"fatigue_level" db:"fatigue_level"`
	CPAPUsed     bool   `json:"cpap_used" db:"cpap_used"`
	Note         string `json:"note,omitempty" db:"note"`
}

// SaveConditionRequest is the POST body for a condition log upsert.
// CPAPUsed defaults to true when omitted, matching the check-in form.
type SaveConditionRequest struct {
	LoggedDate   string `json:"logged_date" binding:"omitempty,dateonly"`
	OverallScore int    `json:"overall_score" binding:"omitempty,min=1,max=5"`
	Palpitation  bool   `json:"palpitation"`
	Edema        bool   `json:"edema"`
	FatigueLevel int    `json:"fatigue_level" binding:"omitempty,min=1,max=5"`
	CPAPUsed     *bool  `json:"cpap_used"`
	Note         string `json:"note"`
}

// ConditionFilter narrows listings
type ConditionFilter struct {
	Date  string `form:"date"`
	Limit int    `form:"limit"`
}
