package ports

import (
	"context"
	"time"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
)

// ListOptions carries pagination and search parameters forwarded to the
// upstream list endpoints. Page is 1-based.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
}

// Page wraps a page of results together with the upstream total count.
type Page[T any] struct {
	Items      []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// PatientInput carries the writable fields of a patient record.
type PatientInput struct {
	FirstName   string
	LastName    string
	OIB         string
	DateOfBirth time.Time
	Gender      string
	Phone       string
	Email       string
	Address     string
}

// DoctorInput carries the writable fields of a doctor record.
type DoctorInput struct {
	FirstName      string
	LastName       string
	Specialization string
	Phone          string
	Email          string
}

// ExaminationInput carries the writable fields of an examination.
type ExaminationInput struct {
	PatientID       string
	DoctorID        string
	Type            string
	ExaminationDate time.Time
	Notes           string
}

// MedicalHistoryInput carries the writable fields of a medical history entry.
type MedicalHistoryInput struct {
	PatientID     string
	ConditionName string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
}

// PrescriptionInput carries the writable fields of a prescription.
type PrescriptionInput struct {
	PatientID        string
	DoctorID         string
	Medication       string
	Dosage           string
	Instructions     string
	PrescriptionDate time.Time
}

// Credentials is a username/password pair submitted to the login endpoint.
type Credentials struct {
	Username string
	Password string
}

// RecordsClient is the typed client for the remote medical records REST API.
// Every call is authenticated by the transport layer from the session carried
// in ctx; a 401/403 upstream response surfaces as domain.ErrSessionExpired
// after the session has been cleared.
type RecordsClient interface {
	// Login exchanges credentials for a bearer token. An upstream 401 maps
	// to domain.ErrInvalidCredentials.
	Login(ctx context.Context, creds Credentials) (string, error)

	ListPatients(ctx context.Context, opts ListOptions) (*Page[domain.Patient], error)
	GetPatient(ctx context.Context, id string) (*domain.Patient, error)
	CreatePatient(ctx context.Context, in PatientInput) (*domain.Patient, error)
	UpdatePatient(ctx context.Context, id string, in PatientInput) (*domain.Patient, error)
	DeletePatient(ctx context.Context, id string) error

	ListDoctors(ctx context.Context, opts ListOptions) (*Page[domain.Doctor], error)
	GetDoctor(ctx context.Context, id string) (*domain.Doctor, error)
	CreateDoctor(ctx context.Context, in DoctorInput) (*domain.Doctor, error)
	UpdateDoctor(ctx context.Context, id string, in DoctorInput) (*domain.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) error

	ListExaminations(ctx context.Context, patientID string, opts ListOptions) (*Page[domain.Examination], error)
	GetExamination(ctx context.Context, id string) (*domain.Examination, error)
	CreateExamination(ctx context.Context, in ExaminationInput) (*domain.Examination, error)
	UpdateExamination(ctx context.Context, id string, in ExaminationInput) (*domain.Examination, error)
	DeleteExamination(ctx context.Context, id string) error

	ListMedicalHistories(ctx context.Context, patientID string, opts ListOptions) (*Page[domain.MedicalHistory], error)
	GetMedicalHistory(ctx context.Context, id string) (*domain.MedicalHistory, error)
	CreateMedicalHistory(ctx context.Context, in MedicalHistoryInput) (*domain.MedicalHistory, error)
	UpdateMedicalHistory(ctx context.Context, id string, in MedicalHistoryInput) (*domain.MedicalHistory, error)
	DeleteMedicalHistory(ctx context.Context, id string) error

	ListPrescriptions(ctx context.Context, patientID string, opts ListOptions) (*Page[domain.Prescription], error)
	GetPrescription(ctx context.Context, id string) (*domain.Prescription, error)
	CreatePrescription(ctx context.Context, in PrescriptionInput) (*domain.Prescription, error)
	UpdatePrescription(ctx context.Context, id string, in PrescriptionInput) (*domain.Prescription, error)
	DeletePrescription(ctx context.Context, id string) error
}
