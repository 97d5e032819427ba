package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/ryde/user-graph/docs"
	"github.com/ryde/user-graph/internal/api/handler"
	"github.com/ryde/user-graph/internal/api/middleware"
	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

// Services are the core use cases the HTTP layer exposes.
type Services struct {
	Auth        ports.AuthService
	Users       ports.UserService
	Friendships ports.FriendshipService
	Nearby      ports.NearbyService
	Stats       ports.StatsService
}

// RouterConfig wires the router's dependencies.
type RouterConfig struct {
	JWTSecret string
	Services  Services
	Health    map[string]handler.Pinger
	Reporter  ErrorReporter
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger, cfg.Reporter)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(echoprometheus.NewMiddleware("user_graph"))

	authHandler := handler.NewAuthHandler(cfg.Services.Auth)
	userHandler := handler.NewUserHandler(cfg.Services.Users)
	friendshipHandler := handler.NewFriendshipHandler(cfg.Services.Friendships)
	nearbyHandler := handler.NewNearbyHandler(cfg.Services.Nearby)
	adminHandler := handler.NewAdminHandler(cfg.Services.Stats)
	healthHandler := handler.NewHealthHandler(cfg.Health)

	// --- Public routes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret))

	users := v1.Group("/users")
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me)
	users.POST("/me/password", userHandler.ChangePassword)
	users.GET("/search", userHandler.Search)
	users.GET("/nearby", nearbyHandler.Users)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Deactivate)

	friendships := v1.Group("/friendships")
	friendships.POST("", friendshipHandler.Request)
	friendships.GET("", friendshipHandler.List)
	friendships.GET("/pending", friendshipHandler.Pending)
	friendships.GET("/sent", friendshipHandler.Sent)
	friendships.GET("/friends", friendshipHandler.Friends)
	friendships.GET("/search", friendshipHandler.Search)
	friendships.GET("/status", friendshipHandler.Status)
	friendships.GET("/nearby", nearbyHandler.Friends)
	friendships.POST("/:id/action", friendshipHandler.Act)

	admin := v1.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)

	return e
}
