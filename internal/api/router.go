package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crewbase/user-api/internal/api/handler"
	"github.com/crewbase/user-api/internal/api/middleware"
	"github.com/crewbase/user-api/internal/core/service"
	mongodb "github.com/crewbase/user-api/internal/infrastructure/db/mongo"
	redisdb "github.com/crewbase/user-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/crewbase/user-api/internal/infrastructure/http/handlers"
	"github.com/crewbase/user-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	userCache := redisdb.NewUserCache(rdb)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, userCache)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	authenticate := middleware.Authenticate(tokenService, userRepo, userCache)

	// --- Root banner ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "user API is running")
	})

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authenticate)
	auth.GET("/profile", authHandler.Me, authenticate)

	// Role-gated sample routes. Admin passes the manager and staff gates
	// through hierarchical permission expansion.
	auth.GET("/admin-data", authHandler.AdminData, authenticate, middleware.Authorize("admin"))
	auth.GET("/manager-data", authHandler.ManagerData, authenticate, middleware.Authorize("manager"))
	auth.GET("/staff-data", authHandler.StaffData, authenticate, middleware.Authorize("staff"))

	// --- User management (admin only) ---
	users := e.Group("/users", authenticate, middleware.Authorize("admin"))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
