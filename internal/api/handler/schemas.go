package handler

import "time"

// listQuery carries pagination and search parameters shared by all list
// endpoints. Values are forwarded upstream; the upstream API applies its own
// caps and defaults.
type listQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

// scopedListQuery adds the patient scope used by examination, history and
// prescription lists.
type scopedListQuery struct {
	listQuery
	PatientID string `query:"patient_id"`
}

type patientRequest struct {
	FirstName   string    `json:"first_name"    validate:"required"`
	LastName    string    `json:"last_name"     validate:"required"`
	OIB         string    `json:"oib"           validate:"required,len=11,numeric"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required"`
	Gender      string    `json:"gender"        validate:"required,oneof=male female other"`
	Phone       string    `json:"phone"         validate:"omitempty"`
	Email       string    `json:"email"         validate:"omitempty,email"`
	Address     string    `json:"address"       validate:"omitempty"`
}

type doctorRequest struct {
	FirstName      string `json:"first_name"     validate:"required"`
	LastName       string `json:"last_name"      validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Phone          string `json:"phone"          validate:"omitempty"`
	Email          string `json:"email"          validate:"omitempty,email"`
}

type examinationRequest struct {
	PatientID       string    `json:"patient_id"       validate:"required"`
	DoctorID        string    `json:"doctor_id"        validate:"required"`
	Type            string    `json:"type"             validate:"required,oneof=GP KRV X-RAY CT MR ULTRA EKG ECHO EYE DERM DENTA MAMMO NEURO"`
	ExaminationDate time.Time `json:"examination_date" validate:"required"`
	Notes           string    `json:"notes"            validate:"omitempty"`
}

type medicalHistoryRequest struct {
	PatientID     string    `json:"patient_id"     validate:"required"`
	ConditionName string    `json:"condition_name" validate:"required"`
	Description   string    `json:"description"    validate:"omitempty"`
	StartDate     time.Time `json:"start_date"     validate:"required"`
	EndDate       time.Time `json:"end_date"       validate:"omitempty,gtefield=StartDate"`
}

type prescriptionRequest struct {
	PatientID        string    `json:"patient_id"        validate:"required"`
	DoctorID         string    `json:"doctor_id"         validate:"required"`
	Medication       string    `json:"medication"        validate:"required"`
	Dosage           string    `json:"dosage"            validate:"required"`
	Instructions     string    `json:"instructions"      validate:"omitempty"`
	PrescriptionDate time.Time `json:"prescription_date" validate:"required"`
}
