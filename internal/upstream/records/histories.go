package records

import (
	"context"
	"net/http"
	"time"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

type medicalHistoryPayload struct {
	PatientID     string     `json:"patient_id"`
	ConditionName string     `json:"condition_name"`
	Description   string     `json:"description,omitempty"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"` // nil while the condition is ongoing
}

func toMedicalHistoryPayload(in ports.MedicalHistoryInput) medicalHistoryPayload {
	p := medicalHistoryPayload{
		PatientID:     in.PatientID,
		ConditionName: in.ConditionName,
		Description:   in.Description,
		StartDate:     in.StartDate,
	}
	if !in.EndDate.IsZero() {
		end := in.EndDate
		p.EndDate = &end
	}
	return p
}

func (c *Client) ListMedicalHistories(ctx context.Context, patientID string, opts ports.ListOptions) (*ports.Page[domain.MedicalHistory], error) {
	var page ports.Page[domain.MedicalHistory]
	if err := c.do(ctx, http.MethodGet, "/medical-histories", "medical_histories", scopedQuery(patientID, opts), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetMedicalHistory(ctx context.Context, id string) (*domain.MedicalHistory, error) {
	var history domain.MedicalHistory
	if err := c.do(ctx, http.MethodGet, "/medical-histories/"+id, "medical_histories", nil, nil, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

func (c *Client) CreateMedicalHistory(ctx context.Context, in ports.MedicalHistoryInput) (*domain.MedicalHistory, error) {
	var history domain.MedicalHistory
	if err := c.do(ctx, http.MethodPost, "/medical-histories", "medical_histories", nil, toMedicalHistoryPayload(in), &history); err != nil {
		return nil, err
	}
	return &history, nil
}

func (c *Client) UpdateMedicalHistory(ctx context.Context, id string, in ports.MedicalHistoryInput) (*domain.MedicalHistory, error) {
	var history domain.MedicalHistory
	if err := c.do(ctx, http.MethodPut, "/medical-histories/"+id, "medical_histories", nil, toMedicalHistoryPayload(in), &history); err != nil {
		return nil, err
	}
	return &history, nil
}

func (c *Client) DeleteMedicalHistory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/medical-histories/"+id, "medical_histories", nil, nil, nil)
}
