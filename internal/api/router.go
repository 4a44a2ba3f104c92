package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sokol-matija/medical-system-gateway/docs"
	"github.com/sokol-matija/medical-system-gateway/internal/api/handler"
	"github.com/sokol-matija/medical-system-gateway/internal/api/middleware"
	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
	"github.com/sokol-matija/medical-system-gateway/internal/infrastructure/config"
)

// Dependencies carries everything the router needs. All session state lives
// behind Sessions; handlers and middleware never touch the vault directly.
type Dependencies struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Sessions ports.SessionService
	Auth     ports.AuthService
	Records  ports.RecordsClient
	Audit    ports.AuditRecorder
	Mongo    *mongo.Database
	Redis    *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("medgateway"))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis, deps.Config.Upstream.BaseURL)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth routes (login/logout outside the guard; logout is idempotent) ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Config.Session.CookieName, deps.Config.Session.CookieSecure)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- Protected routes ---
	guard := middleware.Guard(deps.Sessions, deps.Config.Session.CookieName)
	adminOnly := middleware.RequireRole(domain.RoleAdministrator)

	protected := e.Group("/api", guard)
	protected.GET("/auth/me", authHandler.Me)

	patients := handler.NewPatientHandler(deps.Records, deps.Audit)
	pg := protected.Group("/patients")
	pg.GET("", patients.List)
	pg.POST("", patients.Create)
	pg.GET("/:id", patients.Get)
	pg.PUT("/:id", patients.Update)
	pg.DELETE("/:id", patients.Delete, adminOnly)

	doctors := handler.NewDoctorHandler(deps.Records, deps.Audit)
	dg := protected.Group("/doctors")
	dg.GET("", doctors.List)
	dg.POST("", doctors.Create)
	dg.GET("/:id", doctors.Get)
	dg.PUT("/:id", doctors.Update)
	dg.DELETE("/:id", doctors.Delete, adminOnly)

	examinations := handler.NewExaminationHandler(deps.Records, deps.Audit)
	eg := protected.Group("/examinations")
	eg.GET("", examinations.List)
	eg.POST("", examinations.Create)
	eg.GET("/:id", examinations.Get)
	eg.PUT("/:id", examinations.Update)
	eg.DELETE("/:id", examinations.Delete, adminOnly)

	histories := handler.NewMedicalHistoryHandler(deps.Records, deps.Audit)
	hg := protected.Group("/medical-histories")
	hg.GET("", histories.List)
	hg.POST("", histories.Create)
	hg.GET("/:id", histories.Get)
	hg.PUT("/:id", histories.Update)
	hg.DELETE("/:id", histories.Delete, adminOnly)

	prescriptions := handler.NewPrescriptionHandler(deps.Records, deps.Audit)
	rg := protected.Group("/prescriptions")
	rg.GET("", prescriptions.List)
	rg.POST("", prescriptions.Create)
	rg.GET("/:id", prescriptions.Get)
	rg.PUT("/:id", prescriptions.Update)
	rg.DELETE("/:id", prescriptions.Delete, adminOnly)

	return e
}
