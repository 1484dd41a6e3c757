package router

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"rei_do_lanche_backend/internal/handlers"
	"rei_do_lanche_backend/internal/middleware"
	"rei_do_lanche_backend/internal/monitoring"
	"rei_do_lanche_backend/internal/repositories"
	"rei_do_lanche_backend/internal/services"
)

// Setup initializes the routing for the durable store server.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	accountRepo := repositories.NewAccountRepository(db)
	repos := services.Repositories{
		Ingredients:    repositories.NewIngredientRepository(db),
		Products:       repositories.NewProductRepository(db),
		Revenues:       repositories.NewRevenueRepository(db),
		Expenses:       repositories.NewExpenseRepository(db),
		StockMovements: repositories.NewStockMovementRepository(db),
		Employees:      repositories.NewEmployeeRepository(db),
		Customers:      repositories.NewCustomerRepository(db),
		Orders:         repositories.NewOrderRepository(db),
	}

	// Initialize Services
	authService := services.NewAuthService(accountRepo)
	collectionService := services.NewCollectionService(db, repos)
	migrationService := services.NewMigrationService(db, repos)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	migrationHandler := handlers.NewMigrationHandler(migrationService)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", monitoring.MetricsHandler())

	api := engine.Group("/api")

	SetupAuthRoutes(api, authHandler)

	authenticated := api.Group("")
	authenticated.Use(middleware.RequireAccount())
	{
		SetupCollectionRoutes(authenticated, collectionHandler)
		SetupMigrationRoutes(authenticated, migrationHandler)
		SetupAdminPinRoutes(authenticated, authHandler)
	}
}
