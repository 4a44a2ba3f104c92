package records

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

type examinationPayload struct {
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	Type            string    `json:"type"`
	ExaminationDate time.Time `json:"examination_date"`
	Notes           string    `json:"notes,omitempty"`
}

func toExaminationPayload(in ports.ExaminationInput) examinationPayload {
	return examinationPayload{
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		Type:            in.Type,
		ExaminationDate: in.ExaminationDate,
		Notes:           in.Notes,
	}
}

func scopedQuery(patientID string, opts ports.ListOptions) url.Values {
	q := listQuery(opts)
	if patientID != "" {
		q.Set("patient_id", patientID)
	}
	return q
}

func (c *Client) ListExaminations(ctx context.Context, patientID string, opts ports.ListOptions) (*ports.Page[domain.Examination], error) {
	var page ports.Page[domain.Examination]
	if err := c.do(ctx, http.MethodGet, "/examinations", "examinations", scopedQuery(patientID, opts), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetExamination(ctx context.Context, id string) (*domain.Examination, error) {
	var exam domain.Examination
	if err := c.do(ctx, http.MethodGet, "/examinations/"+id, "examinations", nil, nil, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (c *Client) CreateExamination(ctx context.Context, in ports.ExaminationInput) (*domain.Examination, error) {
	var exam domain.Examination
	if err := c.do(ctx, http.MethodPost, "/examinations", "examinations", nil, toExaminationPayload(in), &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (c *Client) UpdateExamination(ctx context.Context, id string, in ports.ExaminationInput) (*domain.Examination, error) {
	var exam domain.Examination
	if err := c.do(ctx, http.MethodPut, "/examinations/"+id, "examinations", nil, toExaminationPayload(in), &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (c *Client) DeleteExamination(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/examinations/"+id, "examinations", nil, nil, nil)
}
