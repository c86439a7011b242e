package router

import (
	"time"

	"github.com/franciscosanchezn/custom-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/custom-pizza-api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options holds everything the router needs to mount the API
type Options struct {
	// BasePath prefixes every API route, e.g. "/api"
	BasePath string
	// AllowedOrigins for CORS, "*" allows any origin
	AllowedOrigins []string

	PizzaController  controllers.CustomPizzaController
	HealthController *controllers.HealthController
}

// NewRouter initializes the Gin router with middlewares and routes
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	setupRoutes(router, opts)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, opts Options) {
	if opts.HealthController != nil {
		router.GET("/health", opts.HealthController.HealthCheck)
	}

	api := router.Group(opts.BasePath)
	{
		api.GET("/ingredients", opts.PizzaController.GetIngredients)
		api.GET("/custom-pizzas", opts.PizzaController.GetCustomPizzas)

		api.POST("/custom-pizza", opts.PizzaController.CreateCustomPizza)
		api.GET("/custom-pizza/:id", opts.PizzaController.GetCustomPizzaByID)
		api.PUT("/custom-pizza/:id", opts.PizzaController.UpdateCustomPizza)
		api.DELETE("/custom-pizza/:id", opts.PizzaController.DeleteCustomPizza)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range origins {
		if origin == "*" {
			config.AllowAllOrigins = true
			return config
		}
	}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = origins
	return config
}
