package model

// MedicalVisit is one consultation record. Append-only with optional
// update and delete.
type MedicalVisit struct {
	Base
	VisitDate    string `json:"visit_date" db:"visit_date"`
	Department   string `json:"department,omitempty" db:"department"`
	DoctorName   string `json:"doctor_name,omitempty" db:"doctor_name"`
	Diagnosis    string `json:"diagnosis,omitempty" db:"diagnosis"`
	Prescription string `json:"prescription,omitempty" db:"prescription"`
	NextVisit    string `json:"next_visit,omitempty" db:"next_visit"`
	Note         string `json:"note,omitempty" db:"note"`
}

// CreateMedicalVisitRequest is the POST body for a visit record
type CreateMedicalVisitRequest struct {
	VisitDate    string `json:"visit_date" binding:"required,dateonly"`
	Department   string `json:"department"`
	DoctorName   string `json:"doctor_name"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	NextVisit    string `json:"next_visit" binding:"omitempty,dateonly"`
	Note         string `json:"note"`
}

// UpdateMedicalVisitRequest carries partial updates to a visit record
type UpdateMedicalVisitRequest struct {
	VisitDate    *string `json:"visit_date" binding:"omitempty,dateonly"`
	Department   *string `json:"department"`
	DoctorName   *string `json:"doctor_name"`
	Diagnosis    *string `json:"diagnosis"`
	Prescription *string `json:"prescription"`
	NextVisit    *string `json:"next_visit" binding:"omitempty,dateonly"`
	Note         *string `json:"note"`
}

// MedicalVisitList is the visit history plus the next upcoming booking
type MedicalVisitList struct {
	Visits    []*MedicalVisit `json:"visits"`
	NextVisit *MedicalVisit   `json:"next_visit,omitempty"`
}
