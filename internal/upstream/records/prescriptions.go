package records

import (
	"context"
	"net/http"
	"time"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

type prescriptionPayload struct {
	PatientID        string    `json:"patient_id"`
	DoctorID         string    `json:"doctor_id"`
	Medication       string    `json:"medication"`
	Dosage           string    `json:"dosage"`
	Instructions     string    `json:"instructions,omitempty"`
	PrescriptionDate time.Time `json:"prescription_date"`
}

func toPrescriptionPayload(in ports.PrescriptionInput) prescriptionPayload {
	return prescriptionPayload{
		PatientID:        in.PatientID,
		DoctorID:         in.DoctorID,
		Medication:       in.Medication,
		Dosage:           in.Dosage,
		Instructions:     in.Instructions,
		PrescriptionDate: in.PrescriptionDate,
	}
}

func (c *Client) ListPrescriptions(ctx context.Context, patientID string, opts ports.ListOptions) (*ports.Page[domain.Prescription], error) {
	var page ports.Page[domain.Prescription]
	if err := c.do(ctx, http.MethodGet, "/prescriptions", "prescriptions", scopedQuery(patientID, opts), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetPrescription(ctx context.Context, id string) (*domain.Prescription, error) {
	var prescription domain.Prescription
	if err := c.do(ctx, http.MethodGet, "/prescriptions/"+id, "prescriptions", nil, nil, &prescription); err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (c *Client) CreatePrescription(ctx context.Context, in ports.PrescriptionInput) (*domain.Prescription, error) {
	var prescription domain.Prescription
	if err := c.do(ctx, http.MethodPost, "/prescriptions", "prescriptions", nil, toPrescriptionPayload(in), &prescription); err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (c *Client) UpdatePrescription(ctx context.Context, id string, in ports.PrescriptionInput) (*domain.Prescription, error) {
	var prescription domain.Prescription
	if err := c.do(ctx, http.MethodPut, "/prescriptions/"+id, "prescriptions", nil, toPrescriptionPayload(in), &prescription); err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (c *Client) DeletePrescription(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/prescriptions/"+id, "prescriptions", nil, nil, nil)
}
