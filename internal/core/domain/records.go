package domain

import "time"

// View models for the remote medical records API. The gateway treats the
// upstream contract as given: these mirror its JSON shapes one-to-one and
// carry no behavior beyond transport.

// Patient is a registered patient record.
type Patient struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	OIB         string    `json:"oib"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Doctor is a practitioner who performs examinations and issues prescriptions.
type Doctor struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Specialization string    `json:"specialization"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Examination types accepted by the upstream API.
const (
	ExamGeneral    = "GP"
	ExamBlood      = "KRV"
	ExamXRay       = "X-RAY"
	ExamCT         = "CT"
	ExamMRI        = "MR"
	ExamUltrasound = "ULTRA"
	ExamECG        = "EKG"
	ExamEcho       = "ECHO"
	ExamEye        = "EYE"
	ExamDerm       = "DERM"
	ExamDental     = "DENTA"
	ExamMammogram  = "MAMMO"
	ExamNeuro      = "NEURO"
)

// Examination is a scheduled or performed examination of a patient.
type Examination struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	Type            string    `json:"type"`
	ExaminationDate time.Time `json:"examination_date"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// MedicalHistory is a diagnosed condition on a patient's record. EndDate is
// zero while the condition is ongoing.
type MedicalHistory struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patient_id"`
	ConditionName string    `json:"condition_name"`
	Description   string    `json:"description,omitempty"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Prescription is a medication prescribed to a patient by a doctor.
type Prescription struct {
	ID               string    `json:"id"`
	PatientID        string    `json:"patient_id"`
	DoctorID         string    `json:"doctor_id"`
	Medication       string    `json:"medication"`
	Dosage           string    `json:"dosage"`
	Instructions     string    `json:"instructions,omitempty"`
	PrescriptionDate time.Time `json:"prescription_date"`
	CreatedAt        time.Time `json:"created_at"`
}
