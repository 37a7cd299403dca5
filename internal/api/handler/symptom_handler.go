package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

// SymptomHandler handles HTTP requests for symptom records.
type SymptomHandler struct {
	service ports.SymptomService
}

func NewSymptomHandler(service ports.SymptomService) *SymptomHandler {
	return &SymptomHandler{service: service}
}

// Create handles POST /api/symptoms/?user_id=.
//
// @Summary      Record a new symptom
// @Tags         symptoms
// @Accept       json
// @Produce      json
// @Param        user_id  query     string                true  "Owning user ID"
// @Param        body     body      createSymptomRequest  true  "Symptom details"
// @Success      201      {object}  symptomResponse
// @Failure      400      {object}  errorResponse
// @Router       /symptoms [post]
func (h *SymptomHandler) Create(c echo.Context) error {
	var req createSymptomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	symptom, err := h.service.Create(c.Request().Context(), ports.CreateSymptomInput{
		UserID:   c.QueryParam("user_id"),
		Name:     req.Name,
		Details:  req.Details,
		Severity: req.Severity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toSymptomResponse(symptom))
}

// List handles GET /api/symptoms/:user_id.
//
// @Summary      List symptoms for a user
// @Tags         symptoms
// @Produce      json
// @Param        user_id     path      string  true   "User ID"
// @Param        skip        query     int     false  "Documents to skip"
// @Param        limit       query     int     false  "Maximum documents to return"
// @Param        start_date  query     string  false  "Window start (inclusive)"
// @Param        end_date    query     string  false  "Window end (inclusive)"
// @Success      200         {array}   symptomResponse
// @Failure      400         {object}  errorResponse
// @Router       /symptoms/{user_id} [get]
func (h *SymptomHandler) List(c echo.Context) error {
	start, err := timeQuery(c, "start_date")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	end, err := timeQuery(c, "end_date")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	symptoms, err := h.service.List(c.Request().Context(), ports.ListSymptomsInput{
		UserID:    c.Param("user_id"),
		StartDate: start,
		EndDate:   end,
		Skip:      int64Query(c, "skip", 0),
		Limit:     int64Query(c, "limit", 100),
	})
	if err != nil {
		return err
	}

	out := make([]symptomResponse, len(symptoms))
	for i, s := range symptoms {
		out[i] = toSymptomResponse(s)
	}
	return c.JSON(http.StatusOK, out)
}

func toSymptomResponse(s *domain.Symptom) symptomResponse {
	return symptomResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		Details:   s.Details,
		Severity:  s.Severity,
		Timestamp: s.Timestamp,
	}
}
