package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

// MedicationHandler handles HTTP requests for medication records.
type MedicationHandler struct {
	service ports.MedicationService
}

func NewMedicationHandler(service ports.MedicationService) *MedicationHandler {
	return &MedicationHandler{service: service}
}

// Create handles POST /api/medications/?user_id=.
//
// @Summary      Record a new medication
// @Tags         medications
// @Accept       json
// @Produce      json
// @Param        user_id  query     string                   true  "Owning user ID"
// @Param        body     body      createMedicationRequest  true  "Medication details"
// @Success      201      {object}  medicationResponse
// @Failure      400      {object}  errorResponse
// @Router       /medications [post]
func (h *MedicationHandler) Create(c echo.Context) error {
	var req createMedicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	medication, err := h.service.Create(c.Request().Context(), ports.CreateMedicationInput{
		UserID:    c.QueryParam("user_id"),
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toMedicationResponse(medication))
}

// List handles GET /api/medications/:user_id.
//
// @Summary      List medications for a user
// @Tags         medications
// @Produce      json
// @Param        user_id  path      string  true   "User ID"
// @Param        skip     query     int     false  "Documents to skip"
// @Param        limit    query     int     false  "Maximum documents to return"
// @Success      200      {array}   medicationResponse
// @Failure      400      {object}  errorResponse
// @Router       /medications/{user_id} [get]
func (h *MedicationHandler) List(c echo.Context) error {
	medications, err := h.service.List(c.Request().Context(), c.Param("user_id"),
		int64Query(c, "skip", 0), int64Query(c, "limit", 100))
	if err != nil {
		return err
	}

	out := make([]medicationResponse, len(medications))
	for i, m := range medications {
		out[i] = toMedicationResponse(m)
	}
	return c.JSON(http.StatusOK, out)
}

// Update handles PUT /api/medications/:medication_id?user_id=. Only supplied
// fields are applied; updated_at is refreshed server-side.
//
// @Summary      Update a medication
// @Tags         medications
// @Accept       json
// @Produce      json
// @Param        medication_id  path      string                   true  "Medication ID"
// @Param        user_id        query     string                   true  "Owning user ID"
// @Param        body           body      updateMedicationRequest  true  "Fields to update"
// @Success      200            {object}  medicationResponse
// @Failure      400            {object}  errorResponse
// @Failure      404            {object}  errorResponse
// @Router       /medications/{medication_id} [put]
func (h *MedicationHandler) Update(c echo.Context) error {
	var req updateMedicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	medication, err := h.service.Update(c.Request().Context(),
		c.Param("medication_id"), c.QueryParam("user_id"),
		domain.MedicationUpdate{
			Name:      req.Name,
			Dosage:    req.Dosage,
			Frequency: req.Frequency,
		})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMedicationResponse(medication))
}

// Delete handles DELETE /api/medications/:medication_id?user_id=.
//
// @Summary      Delete a medication
// @Tags         medications
// @Produce      json
// @Param        medication_id  path      string  true  "Medication ID"
// @Param        user_id        query     string  true  "Owning user ID"
// @Success      200            {object}  messageResponse
// @Failure      400            {object}  errorResponse
// @Failure      404            {object}  errorResponse
// @Router       /medications/{medication_id} [delete]
func (h *MedicationHandler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(), c.Param("medication_id"), c.QueryParam("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Medication deleted successfully"})
}

func toMedicationResponse(m *domain.Medication) medicationResponse {
	return medicationResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Frequency: m.Frequency,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
