package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

// DoctorHandler proxies doctor CRUD to the records API.
type DoctorHandler struct {
	client ports.RecordsClient
	audit  ports.AuditRecorder
}

func NewDoctorHandler(client ports.RecordsClient, audit ports.AuditRecorder) *DoctorHandler {
	return &DoctorHandler{client: client, audit: audit}
}

func toDoctorInput(req doctorRequest) ports.DoctorInput {
	return ports.DoctorInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Email:          req.Email,
	}
}

// List handles GET /api/doctors.
//
// @Summary      List doctors
// @Tags         doctors
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  ports.Page[domain.Doctor]
// @Router       /doctors [get]
func (h *DoctorHandler) List(c echo.Context) error {
	var q listQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	page, err := h.client.ListDoctors(c.Request().Context(), ports.ListOptions{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /api/doctors/:id.
//
// @Summary      Get a doctor
// @Tags         doctors
// @Produce      json
// @Security     SessionCookie
// @Param        id  path  string  true  "Doctor ID"
// @Success      200  {object}  domain.Doctor
// @Router       /doctors/{id} [get]
func (h *DoctorHandler) Get(c echo.Context) error {
	doctor, err := h.client.GetDoctor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctor)
}

// Create handles POST /api/doctors.
//
// @Summary      Register a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body  doctorRequest  true  "Doctor details"
// @Success      201   {object}  domain.Doctor
// @Router       /doctors [post]
func (h *DoctorHandler) Create(c echo.Context) error {
	var req doctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doctor, err := h.client.CreateDoctor(c.Request().Context(), toDoctorInput(req))
	if err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordCreated, "doctors/"+doctor.ID)
	return c.JSON(http.StatusCreated, doctor)
}

// Update handles PUT /api/doctors/:id.
//
// @Summary      Update a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path  string         true  "Doctor ID"
// @Param        body  body  doctorRequest  true  "Doctor details"
// @Success      200   {object}  domain.Doctor
// @Router       /doctors/{id} [put]
func (h *DoctorHandler) Update(c echo.Context) error {
	var req doctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doctor, err := h.client.UpdateDoctor(c.Request().Context(), c.Param("id"), toDoctorInput(req))
	if err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordUpdated, "doctors/"+doctor.ID)
	return c.JSON(http.StatusOK, doctor)
}

// Delete handles DELETE /api/doctors/:id. Administrator only.
//
// @Summary      Delete a doctor
// @Tags         doctors
// @Security     SessionCookie
// @Param        id  path  string  true  "Doctor ID"
// @Success      204  "deleted"
// @Router       /doctors/{id} [delete]
func (h *DoctorHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.client.DeleteDoctor(c.Request().Context(), id); err != nil {
		return err
	}

	recordAudit(h.audit, c, domain.AuditRecordDeleted, "doctors/"+id)
	return c.NoContent(http.StatusNoContent)
}
