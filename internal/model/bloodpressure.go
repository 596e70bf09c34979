package model

// BPTiming identifies when a reading was taken
type BPTiming string

const (
	BPTimingMorning BPTiming = "morning"
	BPTimingEvening BPTiming = "evening"
)

// BloodPressureReading is a single measurement. Readings are immutable
// once created and can only be deleted by id.
type BloodPressureReading struct {
	Base
	MeasuredAt string   `json:"measured_at" db:"measured_at"`
	Systolic   int      `json:"systolic" db:"systolic"`
	Diastolic  int      `json:"diastolic" db:"diastolic"`
	Pulse      *int     `json:"pulse,omitempty" db:"pulse"`
	Timing     BPTiming `json:"timing,omitempty" db:"timing"`
	Note       string   `json:"note,omitempty" db:"note"`
}

// CreateBloodPressureRequest is the POST body for a new reading
type CreateBloodPressureRequest struct {
	Systolic  int      `json:"systolic" binding:"required,gt=0"`
	Diastolic int      `json:"diastolic" binding:"required,gt=0"`
	Pulse     *int     `json:"pulse" binding:"omitempty,gt=0"`
	Timing    BPTiming `json:"timing" binding:"omitempty,oneof=morning evening"`
	Note      string   `json:"note"`
}

// BloodPressureFilter narrows listings
type BloodPressureFilter struct {
	Date  string `form:"date"`
	Limit int    `form:"limit"`
}
