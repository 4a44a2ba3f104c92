package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

// MedicalHistoryHandler proxies medical history CRUD to the records API.
type MedicalHistoryHandler struct {
	client ports.RecordsClient
	audit  ports.AuditRecorder
}

func NewMedicalHistoryHandler(client ports.RecordsClient, audit ports.AuditRecorder) *MedicalHistoryHandler {
	return &MedicalHistoryHandler{client: client, audit: audit}
}

func toMedicalHistoryInput(req medicalHistoryRequest) ports.MedicalHistoryInput {
	return ports.MedicalHistoryInput{
		PatientID:     req.PatientID,
		ConditionName: req.ConditionName,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}
}

// List handles GET /api/medical-histories, optionally scoped to a patient.
//
// @Summary      List medical histories
// @Tags         medical-histories
// @Produce      json
// @Security     SessionCookie
// @Param        patient_id  query  string  false  "Scope to a patient"
// @Success      200  {object}  ports.Page[domain.MedicalHistory]
// @Router       /medical-histories [get]
func (h *MedicalHistoryHandler) List(c echo.Context) error {
	var q scopedListQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	page, err := h.client.ListMedicalHistories(c.Request().Context(), q.PatientID, ports.ListOptions{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /api/medical-histories/:id.
func (h *MedicalHistoryHandler) Get(c echo.Context) error {
	history, err := h.client.GetMedicalHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, history)
}

// Create handles POST /api/medical-histories.
//
// @Summary      Record a condition
// @Tags         medical-histories
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body  medicalHistoryRequest  true  "Condition details"
// @Success      201   {object}  domain.MedicalHistory
// @Router       /medical-histories [post]
func (h *MedicalHistoryHandler) Create(c echo.Context) error {
	var req medicalHistoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	history, err := h.client.CreateMedicalHistory(c.Request().Context(), toMedicalHistoryInput(req))
	if err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordCreated, "medical-histories/"+history.ID)
	return c.JSON(http.StatusCreated, history)
}

// Update handles PUT /api/medical-histories/:id.
func (h *MedicalHistoryHandler) Update(c echo.Context) error {
	var req medicalHistoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	history, err := h.client.UpdateMedicalHistory(c.Request().Context(), c.Param("id"), toMedicalHistoryInput(req))
	if err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordUpdated, "medical-histories/"+history.ID)
	return c.JSON(http.StatusOK, history)
}

// Delete handles DELETE /api/medical-histories/:id. Administrator only.
func (h *MedicalHistoryHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.client.DeleteMedicalHistory(c.Request().Context(), id); err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordDeleted, "medical-histories/"+id)
	return c.NoContent(http.StatusNoContent)
}
