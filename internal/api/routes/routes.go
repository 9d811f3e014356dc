package routes

import (
	"fmt"
	"net/http"
	"strings"

	"balloon-flights-backend/internal/api/handlers"
	"balloon-flights-backend/internal/api/middleware"
	"balloon-flights-backend/internal/auth"
	"balloon-flights-backend/internal/config"
	"balloon-flights-backend/internal/repository"
	"balloon-flights-backend/internal/service"
	"balloon-flights-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// multipartOverhead is the body allowance on top of MAX_PHOTO_BYTES for the
// short form fields sent alongside a flight photo
const multipartOverhead = 1 << 20

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	blobs, err := storage.NewLocalBlobStore(cfg.MediaRoot, cfg.MediaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare media storage: %w", err)
	}
	return SetupRoutesWithStore(db, cfg, blobs)
}

// SetupRoutesWithStore is SetupRoutes with an explicit photo store
func SetupRoutesWithStore(db *gorm.DB, cfg *config.Config, blobs storage.BlobStore) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	if cfg.MaxPhotoBytes > 0 {
		router.MaxMultipartMemory = cfg.MaxPhotoBytes
	}

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	pilotRepo := repository.NewPilotRepository(db)
	balloonRepo := repository.NewBalloonRepository(db)
	airwaysRepo := repository.NewAirwaysRepository(db)
	affiliationRepo := repository.NewAirwaysPilotRepository(db)
	flightRepo := repository.NewFlightRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, validator)
	catalogService := service.NewCatalogService(pilotRepo, balloonRepo, airwaysRepo, affiliationRepo, validator)
	flightService := service.NewFlightService(flightRepo, balloonRepo, pilotRepo, airwaysRepo, blobs, validator, cfg.MaxPhotoBytes)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	flightHandler := handlers.NewFlightHandler(flightService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Index and health check routes
	router.GET("/", healthHandler.Index)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded photos; an absolute MEDIA_URL means another server hosts them
	if strings.HasPrefix(cfg.MediaURL, "/") {
		media := router.Group(cfg.MediaURL, middleware.NoSniff())
		media.Static("/", cfg.MediaRoot)
	}

	// Auth routes; credentials are never rewritten by the sanitizer
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes
	v1 := router.Group("/api/v1",
		authMiddleware.RequireAuth(),
		middleware.LimitBody(cfg.MaxPhotoBytes+multipartOverhead),
		middleware.Sanitize(),
	)
	{
		flights := v1.Group("/flights")
		{
			flights.GET("", flightHandler.ListFlights)
			flights.POST("", flightHandler.SubmitFlight)
		}

		admin := v1.Group("/admin", authMiddleware.RequireStaff())
		{
			adminFlights := admin.Group("/flights")
			{
				adminFlights.GET("", flightHandler.ListAllFlights)
				adminFlights.POST("", flightHandler.SubmitFlight)
				adminFlights.GET("/:id", flightHandler.GetFlight)
				adminFlights.PUT("/:id", flightHandler.UpdateFlight)
				adminFlights.DELETE("/:id", flightHandler.DeleteFlight)
			}

			pilots := admin.Group("/pilots")
			{
				pilots.GET("", catalogHandler.ListPilots)
				pilots.POST("", catalogHandler.CreatePilot)
				pilots.GET("/:id", catalogHandler.GetPilot)
				pilots.PUT("/:id", catalogHandler.UpdatePilot)
				pilots.DELETE("/:id", catalogHandler.DeletePilot)
			}

			balloons := admin.Group("/balloons")
			{
				balloons.GET("", catalogHandler.ListBalloons)
				balloons.POST("", catalogHandler.CreateBalloon)
				balloons.GET("/:id", catalogHandler.GetBalloon)
				balloons.PUT("/:id", catalogHandler.UpdateBalloon)
				balloons.DELETE("/:id", catalogHandler.DeleteBalloon)
			}

			airways := admin.Group("/airways")
			{
				airways.GET("", catalogHandler.ListAirways)
				airways.POST("", catalogHandler.CreateAirways)
				airways.GET("/:id", catalogHandler.GetAirways)
				airways.PUT("/:id", catalogHandler.UpdateAirways)
				airways.DELETE("/:id", catalogHandler.DeleteAirways)
				airways.GET("/:id/pilots", catalogHandler.ListAirwaysPilots)
			}

			affiliations := admin.Group("/airways-pilots")
			{
				affiliations.GET("", catalogHandler.ListAffiliations)
				affiliations.POST("", catalogHandler.CreateAffiliation)
				affiliations.GET("/:id", catalogHandler.GetAffiliation)
				affiliations.DELETE("/:id", catalogHandler.DeleteAffiliation)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
