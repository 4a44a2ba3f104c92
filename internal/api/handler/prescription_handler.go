package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

// PrescriptionHandler proxies prescription CRUD to the records API.
type PrescriptionHandler struct {
	client ports.RecordsClient
	audit  ports.AuditRecorder
}

func NewPrescriptionHandler(client ports.RecordsClient, audit ports.AuditRecorder) *PrescriptionHandler {
	return &PrescriptionHandler{client: client, audit: audit}
}

func toPrescriptionInput(req prescriptionRequest) ports.PrescriptionInput {
	return ports.PrescriptionInput{
		PatientID:        req.PatientID,
		DoctorID:         req.DoctorID,
		Medication:       req.Medication,
		Dosage:           req.Dosage,
		Instructions:     req.Instructions,
		PrescriptionDate: req.PrescriptionDate,
	}
}

// List handles GET /api/prescriptions, optionally scoped to a patient.
//
// @Summary      List prescriptions
// @Tags         prescriptions
// @Produce      json
// @Security     SessionCookie
// @Param        patient_id  query  string  false  "Scope to a patient"
// @Success      200  {object}  ports.Page[domain.Prescription]
// @Router       /prescriptions [get]
func (h *PrescriptionHandler) List(c echo.Context) error {
	var q scopedListQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	page, err := h.client.ListPrescriptions(c.Request().Context(), q.PatientID, ports.ListOptions{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /api/prescriptions/:id.
func (h *PrescriptionHandler) Get(c echo.Context) error {
	prescription, err := h.client.GetPrescription(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prescription)
}

// Create handles POST /api/prescriptions.
//
// @Summary      Issue a prescription
// @Tags         prescriptions
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body  prescriptionRequest  true  "Prescription details"
// @Success      201   {object}  domain.Prescription
// @Router       /prescriptions [post]
func (h *PrescriptionHandler) Create(c echo.Context) error {
	var req prescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prescription, err := h.client.CreatePrescription(c.Request().Context(), toPrescriptionInput(req))
	if err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordCreated, "prescriptions/"+prescription.ID)
	return c.JSON(http.StatusCreated, prescription)
}

// Update handles PUT /api/prescriptions/:id.
func (h *PrescriptionHandler) Update(c echo.Context) error {
	var req prescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prescription, err := h.client.UpdatePrescription(c.Request().Context(), c.Param("id"), toPrescriptionInput(req))
	if err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordUpdated, "prescriptions/"+prescription.ID)
	return c.JSON(http.StatusOK, prescription)
}

// Delete handles DELETE /api/prescriptions/:id. Administrator only.
func (h *PrescriptionHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.client.DeletePrescription(c.Request().Context(), id); err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordDeleted, "prescriptions/"+id)
	return c.NoContent(http.StatusNoContent)
}
