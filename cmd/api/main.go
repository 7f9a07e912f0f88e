package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kakeibo/internal/config"
	"kakeibo/internal/database"
	"kakeibo/internal/handlers"
	"kakeibo/internal/logger"
	"kakeibo/internal/middleware"
	"kakeibo/internal/services"
	"kakeibo/internal/validator"

	_ "kakeibo/internal/docs" // Import swagger docs
)

// @title           Kakeibo API
// @version         1.0
// @description     Kakeibo is a household expense tracker for two people with offline-first mobile clients that sync over the local network.

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared-secret API key issued during pairing.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	store := services.NewExpenseStore(db)
	syncService := services.NewSyncService(db, store, cfg.SyncMaxItems)
	expenseService := services.NewExpenseService(store)
	reportService := services.NewReportService(store)

	// Initialize handlers
	syncHandler := handlers.NewSyncHandler(syncService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	summaryHandler := handlers.NewSummaryHandler(reportService)
	pairingHandler := handlers.NewPairingHandler(cfg)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// The whole sync namespace is gated to the local network. The pairing
	// flow inside it stays key-free so a fresh phone can discover the
	// server; the batch endpoint itself still requires the key.
	sync := router.Group("/sync")
	sync.Use(middleware.LANOnly(cfg.LANSubnets))
	sync.GET("/url", pairingHandler.SyncURL)
	sync.GET("/qr.png", pairingHandler.SyncQR)
	sync.GET("/page", pairingHandler.SyncPage)
	sync.POST("/expenses", middleware.APIKeyAuth(cfg.APIKey), syncHandler.SyncExpenses)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.APIKeyAuth(cfg.APIKey))

	protected.GET("/expenses", expenseHandler.ListByMonth)
	protected.DELETE("/expenses/:id", expenseHandler.Delete)
	protected.GET("/stats", expenseHandler.MonthlyStats)

	summary := protected.Group("/summary")
	summary.GET("", summaryHandler.Total)
	summary.GET("/by-category", summaryHandler.ByCategory)
	summary.GET("/by-payer", summaryHandler.ByPayer)
	summary.GET("/expenses", summaryHandler.ListExpenses)

	log.Infof("Starting Kakeibo backend server on port %s", cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return router.Run(":" + cfg.Port)
}
