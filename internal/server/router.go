// Package server assembles the HTTP router from its services and handlers.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"autoledger/internal/auth"
	"autoledger/internal/database"
	_ "autoledger/internal/docs" // registers the swagger spec
	"autoledger/internal/handlers"
	"autoledger/internal/metrics"
	"autoledger/internal/middleware"
	"autoledger/internal/models"
	"autoledger/internal/services"
)

// Options configures the router.
type Options struct {
	CORSOrigin     string
	MetricsEnabled bool
	MetricsAPIKey  string
	SecureCookies  bool
}

// Dependencies are the collaborators shared by every handler.
type Dependencies struct {
	Conn   database.Connector
	Tokens *auth.TokenService
	// Provider is nil when external sign-in is disabled.
	Provider handlers.ExternalProvider
}

// NewRouter builds the gin engine with every route mounted under /api.
func NewRouter(opts Options, deps Dependencies) *gin.Engine {
	conn := deps.Conn

	// Services
	userService := services.NewUserService(conn)
	vehicleService := services.NewVehicleService(conn)
	fuelService := services.NewFuelEntryService(conn)
	expenseService := services.NewExpenseEntryService(conn)
	incomeService := services.NewIncomeEntryService(conn)
	catalogService := services.NewCatalogService(conn)
	preferencesService := services.NewPreferencesService(conn)
	maintenanceService := services.NewMaintenanceService(conn)
	auditService := services.NewAuditService(conn)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, deps.Tokens, deps.Provider, opts.SecureCookies)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, auditService)
	fuelHandler := handlers.NewFuelEntryHandler(fuelService)
	expenseHandler := handlers.NewExpenseEntryHandler(expenseService)
	incomeHandler := handlers.NewIncomeEntryHandler(incomeService)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService, auditService)

	router := gin.New()
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.CORSOrigin))
	router.Use(metrics.Middleware())
	router.Use(middleware.Identify(deps.Tokens))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if opts.MetricsEnabled {
		router.GET("/metrics", middleware.MetricsKeyAuth(opts.MetricsAPIKey), metrics.Handler())
	}

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Identity is resolved for every route; each handler decides whether an
	// anonymous caller gets a 401.
	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.GET("/oidc/login", authHandler.ExternalLogin)
	authRoutes.GET("/oidc/callback", authHandler.ExternalCallback)

	api.GET("/profile", authHandler.GetProfile)

	vehicles := api.Group("/vehicles")
	vehicles.GET("", vehicleHandler.ListVehicles)
	vehicles.POST("", vehicleHandler.CreateVehicle)
	vehicles.GET("/:id", vehicleHandler.GetVehicle)
	vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
	vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)

	fuel := api.Group("/fuel-entries")
	fuel.GET("", fuelHandler.ListFuelEntries)
	fuel.POST("", fuelHandler.CreateFuelEntry)
	fuel.GET("/:id", fuelHandler.GetFuelEntry)
	fuel.PUT("/:id", fuelHandler.UpdateFuelEntry)
	fuel.DELETE("/:id", fuelHandler.DeleteFuelEntry)

	expenses := api.Group("/expense-entries")
	expenses.GET("", expenseHandler.ListExpenseEntries)
	expenses.POST("", expenseHandler.CreateExpenseEntry)
	expenses.GET("/:id", expenseHandler.GetExpenseEntry)
	expenses.PUT("/:id", expenseHandler.UpdateExpenseEntry)
	expenses.DELETE("/:id", expenseHandler.DeleteExpenseEntry)

	incomes := api.Group("/income-entries")
	incomes.GET("", incomeHandler.ListIncomeEntries)
	incomes.POST("", incomeHandler.CreateIncomeEntry)
	incomes.GET("/:id", incomeHandler.GetIncomeEntry)
	incomes.PUT("/:id", incomeHandler.UpdateIncomeEntry)
	incomes.DELETE("/:id", incomeHandler.DeleteIncomeEntry)

	for path, kind := range map[string]models.CatalogKind{
		"/fuel-companies":     models.CatalogKindFuelCompany,
		"/fuel-types":         models.CatalogKindFuelType,
		"/expense-categories": models.CatalogKindExpenseCategory,
		"/income-categories":  models.CatalogKindIncomeCategory,
	} {
		h := handlers.NewCatalogHandler(catalogService, kind)
		g := api.Group(path)
		g.GET("", h.List)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	api.GET("/user-preferences", preferencesHandler.GetPreferences)
	api.PUT("/user-preferences", preferencesHandler.UpdatePreferences)

	api.GET("/diagnostic", maintenanceHandler.Diagnostic)
	api.POST("/cleanup", maintenanceHandler.Cleanup)

	return router
}
