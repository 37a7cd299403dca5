package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/healthtrack/symptom-tracker/docs"
	"github.com/healthtrack/symptom-tracker/internal/api/handler"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
	"github.com/healthtrack/symptom-tracker/internal/core/service"
	mongorepo "github.com/healthtrack/symptom-tracker/internal/infrastructure/db/mongo"
	"github.com/healthtrack/symptom-tracker/internal/infrastructure/pdf"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, generator ports.NarrativeGenerator, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("symptom_tracker"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	symptomRepo := mongorepo.NewSymptomRepository(db)
	medicationRepo := mongorepo.NewMedicationRepository(db)

	userService := service.NewUserService(userRepo, log)
	symptomService := service.NewSymptomService(symptomRepo, log)
	medicationService := service.NewMedicationService(medicationRepo, log)
	reportService := service.NewReportService(symptomRepo, medicationRepo, generator, pdf.NewRenderer(), log)

	userHandler := handler.NewUserHandler(userService)
	symptomHandler := handler.NewSymptomHandler(symptomService)
	medicationHandler := handler.NewMedicationHandler(medicationService)
	reportHandler := handler.NewReportHandler(reportService)

	// --- Service routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Welcome to the Symptom Tracker API",
		})
	})

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API routes ---
	api := e.Group("/api")

	users := api.Group("/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:user_id", userHandler.Get)

	symptoms := api.Group("/symptoms")
	symptoms.POST("", symptomHandler.Create)
	symptoms.GET("/:user_id", symptomHandler.List)

	medications := api.Group("/medications")
	medications.POST("", medicationHandler.Create)
	medications.GET("/:user_id", medicationHandler.List)
	medications.PUT("/:medication_id", medicationHandler.Update)
	medications.DELETE("/:medication_id", medicationHandler.Delete)

	reports := api.Group("/reports")
	reports.GET("/:user_id", reportHandler.Get)
	reports.GET("/:user_id/pdf", reportHandler.GetPDF)

	return e
}
