package records

import (
	"context"
	"net/http"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

type doctorPayload struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
}

func toDoctorPayload(in ports.DoctorInput) doctorPayload {
	return doctorPayload{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Specialization: in.Specialization,
		Phone:          in.Phone,
		Email:          in.Email,
	}
}

func (c *Client) ListDoctors(ctx context.Context, opts ports.ListOptions) (*ports.Page[domain.Doctor], error) {
	var page ports.Page[domain.Doctor]
	if err := c.do(ctx, http.MethodGet, "/doctors", "doctors", listQuery(opts), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetDoctor(ctx context.Context, id string) (*domain.Doctor, error) {
	var doctor domain.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors/"+id, "doctors", nil, nil, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (c *Client) CreateDoctor(ctx context.Context, in ports.DoctorInput) (*domain.Doctor, error) {
	var doctor domain.Doctor
	if err := c.do(ctx, http.MethodPost, "/doctors", "doctors", nil, toDoctorPayload(in), &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (c *Client) UpdateDoctor(ctx context.Context, id string, in ports.DoctorInput) (*domain.Doctor, error) {
	var doctor domain.Doctor
	if err := c.do(ctx, http.MethodPut, "/doctors/"+id, "doctors", nil, toDoctorPayload(in), &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (c *Client) DeleteDoctor(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/doctors/"+id, "doctors", nil, nil, nil)
}
