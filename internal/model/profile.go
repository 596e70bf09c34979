package model

// UserProfile is the fixed reference profile used as the fallback for
// risk assessment before any readings are logged.
type UserProfile struct {
	HeightCm  float64 `json:"height_cm" mapstructure:"height_cm"`
	WeightKg  float64 `json:"weight_kg" mapstructure:"weight_kg"`
	Systolic  int     `json:"systolic" mapstructure:"systolic"`
	Diastolic int     `json:"diastolic" mapstructure:"diastolic"`
}

// DefaultUserProfile is the baseline wired in at startup when the
// config file carries no profile section.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		HeightCm:  170,
		WeightKg:  110,
		Systolic:  168,
		Diastolic: 83,
	}
}

// BPCategory is a clinical blood-pressure classification
type BPCategory string

const (
	BPNormal   BPCategory = "normal"
	BPElevated BPCategory = "elevated"
	BPStage1   BPCategory = "stage 1"
	BPStage2   BPCategory = "stage 2"
)

// BMICategory is a clinical obesity classification
type BMICategory string

const (
	BMINormal BMICategory = "normal"
	BMIClass1 BMICategory = "obesity class 1"
	BMIClass2 BMICategory = "obesity class 2"
	BMISevere BMICategory = "severe obesity"
)

// RiskAssessment is the combined BP and BMI classification
type RiskAssessment struct {
	Systolic    int         `json:"systolic"`
	Diastolic   int         `json:"diastolic"`
	BPCategory  BPCategory  `json:"bp_category"`
	WeightKg    float64     `json:"weight_kg"`
	BMI         float64     `json:"bmi"`
	BMICategory BMICategory `json:"bmi_category"`
	HasVisited  bool        `json:"has_visited"`
}
