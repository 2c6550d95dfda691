package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/levitica/hr-system/docs"
	"github.com/levitica/hr-system/internal/api/handler"
	"github.com/levitica/hr-system/internal/api/middleware"
	"github.com/levitica/hr-system/internal/core/ports"
	"github.com/levitica/hr-system/internal/core/service"
	"github.com/levitica/hr-system/internal/infrastructure/config"
	mongodb "github.com/levitica/hr-system/internal/infrastructure/db/mongo"
	redisdb "github.com/levitica/hr-system/internal/infrastructure/db/redis"
	"github.com/levitica/hr-system/internal/pkg/password"
	"github.com/levitica/hr-system/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger, audit ports.AuditRecorder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hr"))

	// --- Dependencies ---
	accounts := mongodb.NewAccountRepository(db)
	hasher := password.NewHasher(cfg.Auth.BcryptCost, log)
	codec := token.NewCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(accounts, hasher, codec)
	adminService := service.NewAdminService(accounts, hasher)

	authHandler := handler.NewAuthHandler(authService, audit)
	adminHandler := handler.NewAdminHandler(adminService, audit)
	uploadHandler := handler.NewUploadHandler(cfg.Upload.Dir, cfg.Upload.MaxBytes)

	authGate := middleware.Auth(codec, accounts, log)
	superadminOnly := middleware.RequireSuperadmin()

	var limiter *redisdb.LoginLimiter
	if cfg.RateLimit.Enabled {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	}
	loginLimit := middleware.LoginRateLimit(limiter, log)

	// --- Auth routes ---
	v1 := e.Group("/v1")
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login, loginLimit)
	auth.GET("/me", authHandler.Me, authGate)
	auth.POST("/refresh", authHandler.Refresh, authGate)
	auth.POST("/logout", authHandler.Logout, authGate)

	// --- Superadmin routes ---
	sa := v1.Group("/superadmin", authGate, superadminOnly)
	sa.POST("/admins", adminHandler.Create)
	sa.GET("/admins", adminHandler.List)
	sa.GET("/admins/:id", adminHandler.Get)
	sa.PUT("/admins/:id", adminHandler.Update)
	sa.DELETE("/admins/:id", adminHandler.Delete)

	// --- Upload routes (any active account) ---
	up := v1.Group("/upload", authGate)
	up.POST("/profile-image", uploadHandler.ProfileImage)
	e.Static("/"+cfg.Upload.Dir, cfg.Upload.Dir)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
