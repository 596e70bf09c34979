package model

// WeightEntry holds one weight measurement per date. Saving a second
// entry for the same date overwrites the first.
type WeightEntry struct {
	Base
	MeasuredAt string  `json:"measured_at" db:"measured_at"`
	WeightKg   float64 `json:"weight_kg" db:"weight_kg"`
}

// UpsertWeightRequest is the POST body for a weight entry
type UpsertWeightRequest struct {
	WeightKg   float64 `json:"weight_kg" binding:"required,gt=0"`
	MeasuredAt string  `json:"measured_at" binding:"omitempty,dateonly"`
}
