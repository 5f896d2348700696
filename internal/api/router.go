package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/learnhub/course-portal/internal/api/handler"
	"github.com/learnhub/course-portal/internal/api/middleware"
	"github.com/learnhub/course-portal/internal/core/domain"
	"github.com/learnhub/course-portal/internal/core/ports"
	"github.com/learnhub/course-portal/internal/core/service"
	"github.com/learnhub/course-portal/internal/infrastructure/config"
)

// Dependencies bundles everything the router needs. Services are assembled in
// main so infrastructure lifecycles (dispatcher workers, connections) stay
// owned there.
type Dependencies struct {
	Config      *config.Config
	Log         zerolog.Logger
	Credentials ports.CredentialExchange
	Codec       ports.SessionCodec
	Courses     ports.CourseService
	Audit       ports.AuditRecorder
	AuditLog    ports.AuditRepository
	Revoker     ports.SessionRevoker
	Mongo       *mongo.Database
	Redis       *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// The gate runs ahead of every route; public paths pass through without
	// token decoding.
	gate := service.NewAccessGate(d.Codec)
	provider := service.NewSessionProvider(d.Codec)
	e.Use(middleware.SessionGate(gate, provider, d.Revoker, d.Log))

	// --- Auth ---
	authHandler := handler.NewAuthHandler(d.Credentials, d.Codec, provider, d.Revoker, d.Audit, d.Config.IsProduction(), d.Log)
	oauthHandler := handler.NewOAuthHandler(authHandler, d.Config.Google.ClientID, d.Config.Google.ClientSecret, d.Config.BaseURL, d.Log)

	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)
	e.GET("/auth/google", oauthHandler.Begin)
	e.GET("/auth/google/callback", oauthHandler.Callback)

	// --- Catalog ---
	courseHandler := handler.NewCourseHandler(d.Courses)
	e.GET("/courses", courseHandler.List)
	e.GET("/courses/:id", courseHandler.Get)
	e.POST("/courses", courseHandler.Create,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin))

	// --- Dashboards (protected by the gate) ---
	dashboardHandler := handler.NewDashboardHandler(d.AuditLog)
	e.GET(service.HomeStudent, dashboardHandler.Student)
	e.GET(service.HomeInstructor, dashboardHandler.Instructor)
	e.GET(service.HomeAdmin, dashboardHandler.Admin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
