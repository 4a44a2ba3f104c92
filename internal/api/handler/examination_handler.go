package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

// ExaminationHandler proxies examination CRUD to the records API.
type ExaminationHandler struct {
	client ports.RecordsClient
	audit  ports.AuditRecorder
}

func NewExaminationHandler(client ports.RecordsClient, audit ports.AuditRecorder) *ExaminationHandler {
	return &ExaminationHandler{client: client, audit: audit}
}

func toExaminationInput(req examinationRequest) ports.ExaminationInput {
	return ports.ExaminationInput{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		Type:            req.Type,
		ExaminationDate: req.ExaminationDate,
		Notes:           req.Notes,
	}
}

// List handles GET /api/examinations, optionally scoped to a patient.
//
// @Summary      List examinations
// @Tags         examinations
// @Produce      json
// @Security     SessionCookie
// @Param        patient_id  query  string  false  "Scope to a patient"
// @Success      200  {object}  ports.Page[domain.Examination]
// @Router       /examinations [get]
func (h *ExaminationHandler) List(c echo.Context) error {
	var q scopedListQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	page, err := h.client.ListExaminations(c.Request().Context(), q.PatientID, ports.ListOptions{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /api/examinations/:id.
func (h *ExaminationHandler) Get(c echo.Context) error {
	exam, err := h.client.GetExamination(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exam)
}

// Create handles POST /api/examinations.
//
// @Summary      Schedule an examination
// @Tags         examinations
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body  examinationRequest  true  "Examination details"
// @Success      201   {object}  domain.Examination
// @Router       /examinations [post]
func (h *ExaminationHandler) Create(c echo.Context) error {
	var req examinationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exam, err := h.client.CreateExamination(c.Request().Context(), toExaminationInput(req))
	if err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordCreated, "examinations/"+exam.ID)
	return c.JSON(http.StatusCreated, exam)
}

// Update handles PUT /api/examinations/:id.
func (h *ExaminationHandler) Update(c echo.Context) error {
	var req examinationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exam, err := h.client.UpdateExamination(c.Request().Context(), c.Param("id"), toExaminationInput(req))
	if err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordUpdated, "examinations/"+exam.ID)
	return c.JSON(http.StatusOK, exam)
}

// Delete handles DELETE /api/examinations/:id. Administrator only.
func (h *ExaminationHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.client.DeleteExamination(c.Request().Context(), id); err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordDeleted, "examinations/"+id)
	return c.NoContent(http.StatusNoContent)
}
