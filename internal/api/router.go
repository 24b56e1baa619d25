package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/peopledesk/workforce-api/docs"
	"github.com/peopledesk/workforce-api/internal/api/handler"
	"github.com/peopledesk/workforce-api/internal/api/middleware"
	"github.com/peopledesk/workforce-api/internal/core/domain"
	"github.com/peopledesk/workforce-api/internal/core/ports"
)

// Dependencies carries everything the router needs to register routes.
// Mongo and Redis are nil when the corresponding backend is not configured;
// the readiness probe then skips them.
type Dependencies struct {
	AuthService     ports.AuthService
	EmployeeService ports.EmployeeService
	UserService     ports.SystemUserService

	JWTSecret string
	Mongo     *mongo.Database
	Redis     *redis.Client
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("workforce_api"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	employeeHandler := handler.NewEmployeeHandler(deps.EmployeeService)
	userHandler := handler.NewSystemUserHandler(deps.UserService)

	authRequired := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleLabelAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- Employee routes ---
	employees := e.Group("/api/employees")
	employees.GET("", employeeHandler.List)
	employees.GET("/active", employeeHandler.ListActive)
	employees.GET("/:id", employeeHandler.Get)
	employees.POST("", employeeHandler.Add, authRequired)
	employees.PATCH("/:id/deactivate", employeeHandler.Deactivate, authRequired)
	employees.PATCH("/deactivate", employeeHandler.DeactivateByMail, authRequired)
	employees.PATCH("/:id/reactivate", employeeHandler.Reactivate, authRequired)
	employees.PATCH("/reactivate", employeeHandler.ReactivateByMail, authRequired)
	employees.DELETE("/:id", employeeHandler.Delete, authRequired, adminOnly)

	// --- System user routes ---
	users := e.Group("/api/users")
	users.GET("", userHandler.List)
	users.GET("/active", userHandler.ListActive)
	users.PATCH("/:id/deactivate", userHandler.Deactivate, authRequired)
	users.PATCH("/deactivate", userHandler.DeactivateByMail, authRequired)
	users.DELETE("/:id", userHandler.Delete, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)         // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
