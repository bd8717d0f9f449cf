package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/fastbites/fastbites-api/internal/api/handler"
	"github.com/fastbites/fastbites-api/internal/api/middleware"
	"github.com/fastbites/fastbites-api/internal/core/service"
	"github.com/fastbites/fastbites-api/internal/infrastructure/config"
	"github.com/fastbites/fastbites-api/internal/infrastructure/db/postgres"
	healthhandlers "github.com/fastbites/fastbites-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// db may be nil when persistence is disabled; data-dependent routes then
// fail per-request.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderAccept},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("fastbites"))

	// --- Dependencies ---
	verifier := service.NewTokenVerifier(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey, log)

	profileRepo := postgres.NewProfileRepository(db)
	profileService := service.NewProfileService(profileRepo, log)
	profileHandler := handler.NewProfileHandler(profileService)

	catalogRepo := postgres.NewCatalogRepository(db)
	catalogService := service.NewCatalogService(catalogRepo, log)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	authMiddleware := middleware.Auth(verifier)

	// --- Root and operational routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Fast Bites API"})
	})

	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the database up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Public catalog routes ---
	menu := e.Group("/menu")
	menu.GET("/restaurants", catalogHandler.ListRestaurants)
	menu.GET("/restaurants/:id", catalogHandler.GetRestaurant)
	menu.GET("/items", catalogHandler.ListMenuItems)
	menu.GET("/items/:id", catalogHandler.GetMenuItem)

	// --- Authenticated profile routes ---
	users := e.Group("/users", authMiddleware)
	users.POST("/profile", profileHandler.Create)
	users.GET("/profile", profileHandler.Get)
	users.PUT("/profile", profileHandler.Update)
	users.DELETE("/profile", profileHandler.Delete)

	return e
}
