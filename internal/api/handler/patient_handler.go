package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

// PatientHandler proxies patient CRUD to the records API.
type PatientHandler struct {
	client ports.RecordsClient
	audit  ports.AuditRecorder
}

func NewPatientHandler(client ports.RecordsClient, audit ports.AuditRecorder) *PatientHandler {
	return &PatientHandler{client: client, audit: audit}
}

func toPatientInput(req patientRequest) ports.PatientInput {
	return ports.PatientInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		OIB:         req.OIB,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
	}
}

// List handles GET /api/patients.
//
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Security     SessionCookie
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Param        search  query     string  false  "Search by name or OIB"
// @Success      200  {object}  ports.Page[domain.Patient]
// @Failure      401  {object}  map[string]string
// @Router       /patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	var q listQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	page, err := h.client.ListPatients(c.Request().Context(), ports.ListOptions{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /api/patients/:id.
//
// @Summary      Get a patient
// @Tags         patients
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      string  true  "Patient ID"
// @Success      200  {object}  domain.Patient
// @Failure      404  {object}  map[string]string
// @Router       /patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	patient, err := h.client.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// Create handles POST /api/patients.
//
// @Summary      Register a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      201   {object}  domain.Patient
// @Failure      400   {object}  map[string]string
// @Router       /patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.client.CreatePatient(c.Request().Context(), toPatientInput(req))
	if err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordCreated, "patients/"+patient.ID)
	return c.JSON(http.StatusCreated, patient)
}

// Update handles PUT /api/patients/:id.
//
// @Summary      Update a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string          true  "Patient ID"
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      200   {object}  domain.Patient
// @Failure      404   {object}  map[string]string
// @Router       /patients/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.client.UpdatePatient(c.Request().Context(), c.Param("id"), toPatientInput(req))
	if err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordUpdated, "patients/"+patient.ID)
	return c.JSON(http.StatusOK, patient)
}

// Delete handles DELETE /api/patients/:id. Administrator only.
//
// @Summary      Delete a patient
// @Tags         patients
// @Security     SessionCookie
// @Param        id  path  string  true  "Patient ID"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /patients/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.client.DeletePatient(c.Request().Context(), id); err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordDeleted, "patients/"+id)
	return c.NoContent(http.StatusNoContent)
}
