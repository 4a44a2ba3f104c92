package records

import (
	"context"
	"net/http"
	"time"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

type patientPayload struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	OIB         string    `json:"oib"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
}

func toPatientPayload(in ports.PatientInput) patientPayload {
	return patientPayload{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		OIB:         in.OIB,
		DateOfBirth: in.DateOfBirth,
		Gender:      in.Gender,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
	}
}

func (c *Client) ListPatients(ctx context.Context, opts ports.ListOptions) (*ports.Page[domain.Patient], error) {
	var page ports.Page[domain.Patient]
	if err := c.do(ctx, http.MethodGet, "/patients", "patients", listQuery(opts), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetPatient(ctx context.Context, id string) (*domain.Patient, error) {
	var patient domain.Patient
	if err := c.do(ctx, http.MethodGet, "/patients/"+id, "patients", nil, nil, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *Client) CreatePatient(ctx context.Context, in ports.PatientInput) (*domain.Patient, error) {
	var patient domain.Patient
	if err := c.do(ctx, http.MethodPost, "/patients", "patients", nil, toPatientPayload(in), &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *Client) UpdatePatient(ctx context.Context, id string, in ports.PatientInput) (*domain.Patient, error) {
	var patient domain.Patient
	if err := c.do(ctx, http.MethodPut, "/patients/"+id, "patients", nil, toPatientPayload(in), &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *Client) DeletePatient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/patients/"+id, "patients", nil, nil, nil)
}
