// Package server assembles the HTTP router: middleware chain, handlers and
// the /api/v1 route table.
package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"expenso/internal/handlers"
	"expenso/internal/middleware"
	"expenso/internal/services"
)

// Services groups the domain services the router serves.
type Services struct {
	Categories services.CategoryServicer
	Expenses   services.ExpenseServicer
	Settings   services.SettingsServicer
	Reports    services.ReportServicer
}

// NewServices builds the store-backed services sharing one clock.
func NewServices(db *gorm.DB, now services.Clock, deletePolicy string) Services {
	return Services{
		Categories: services.NewCategoryService(db, now, deletePolicy),
		Expenses:   services.NewExpenseService(db, now),
		Settings:   services.NewSettingsService(db, now),
		Reports:    services.NewReportService(db, now),
	}
}

// Options tunes the middleware chain.
type Options struct {
	CORSAllowedOrigin string
	RateLimitRPS      float64
	RateLimitBurst    int
}

// NewRouter returns a gin engine with every route registered.
func NewRouter(svc Services, store handlers.Pinger, opts Options) *gin.Engine {
	if opts.CORSAllowedOrigin == "" {
		opts.CORSAllowedOrigin = "*"
	}

	categoryHandler := handlers.NewCategoryHandler(svc.Categories)
	expenseHandler := handlers.NewExpenseHandler(svc.Expenses)
	settingsHandler := handlers.NewSettingsHandler(svc.Settings)
	reportHandler := handlers.NewReportHandler(svc.Reports)
	healthHandler := handlers.NewHealthHandler(store)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.CORSAllowedOrigin))
	router.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	router.NoRoute(middleware.NoRoute())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	v1.GET("/health", healthHandler.Health)

	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	expenses := v1.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/stats", expenseHandler.GetMonthlyStats)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	settings := v1.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.POST("", settingsHandler.CreateSettings)
	settings.PUT("", settingsHandler.UpdateSettings)
	settings.GET("/cycle", settingsHandler.GetCycle)

	reports := v1.Group("/reports")
	reports.GET("/monthly", reportHandler.GetMonthlyReport)

	return router
}
