package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

// ReportHandler handles narrative report generation.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Get handles GET /api/reports/:user_id. Without explicit bounds the window
// defaults to the last 30 days.
//
// @Summary      Generate a narrative health report
// @Tags         reports
// @Produce      json
// @Param        user_id        path      string  true   "User ID"
// @Param        start_date     query     string  false  "Window start (inclusive)"
// @Param        end_date       query     string  false  "Window end (inclusive)"
// @Param        report_format  query     string  false  "Format hint (default summary)"
// @Success      200            {object}  reportResponse
// @Failure      400            {object}  errorResponse
// @Failure      404            {object}  errorResponse
// @Failure      500            {object}  errorResponse
// @Router       /reports/{user_id} [get]
func (h *ReportHandler) Get(c echo.Context) error {
	input, err := reportInput(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input.Format = c.QueryParam("report_format")

	report, err := h.service.Generate(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReportResponse(report))
}

// GetPDF handles GET /api/reports/:user_id/pdf. The narrative is rendered as
// a PDF attachment named after the user id.
//
// @Summary      Generate a narrative health report as PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        user_id     path      string  true   "User ID"
// @Param        start_date  query     string  false  "Window start (inclusive)"
// @Param        end_date    query     string  false  "Window end (inclusive)"
// @Success      200         {file}    binary
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      500         {object}  errorResponse
// @Router       /reports/{user_id}/pdf [get]
func (h *ReportHandler) GetPDF(c echo.Context) error {
	input, err := reportInput(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	data, report, err := h.service.GeneratePDF(c.Request().Context(), input)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=health_report_%s.pdf`, report.UserID))
	return c.Blob(http.StatusOK, "application/pdf", data)
}

func reportInput(c echo.Context) (ports.GenerateReportInput, error) {
	start, err := timeQuery(c, "start_date")
	if err != nil {
		return ports.GenerateReportInput{}, err
	}
	end, err := timeQuery(c, "end_date")
	if err != nil {
		return ports.GenerateReportInput{}, err
	}
	return ports.GenerateReportInput{
		UserID:    c.Param("user_id"),
		StartDate: start,
		EndDate:   end,
	}, nil
}

func toReportResponse(r *ports.Report) reportResponse {
	return reportResponse{
		UserID: r.UserID,
		ReportPeriod: reportPeriodResponse{
			StartDate: r.PeriodStart.Format(time.RFC3339),
			EndDate:   r.PeriodEnd.Format(time.RFC3339),
		},
		GeneratedReport: r.Narrative,
		DataSummary: dataSummaryResponse{
			SymptomsCount:    r.SymptomsCount,
			MedicationsCount: r.MedicationsCount,
		},
	}
}
