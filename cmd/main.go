package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/custom-pizza-api/docs" // Import generated docs
	"github.com/franciscosanchezn/custom-pizza-api/internal/config"
	"github.com/franciscosanchezn/custom-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/custom-pizza-api/internal/database"
	"github.com/franciscosanchezn/custom-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/custom-pizza-api/internal/router"
	"github.com/franciscosanchezn/custom-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Custom Pizza API
// @version 1.0
// @description Compose custom pizzas from a priced ingredient catalog. Prices are always computed by the server.
// @host localhost:5001
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()
	applyLogLevel(configuration.LogLevel)

	// Initialize database connection
	db := setupDatabase(configuration)
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("Failed to close database")
		}
	}()

	// Initialize services and controllers
	store := services.NewCustomItemStore(db)
	pizzaService := services.NewCustomPizzaService(store, configuration.BaseFee)

	// Initialize Gin router
	engine := setupRouter(configuration, db, pizzaService)

	// Start the server
	addr := fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)
	log.Infof("Starting server on %s", addr)
	checkPanicErr(serve(addr, engine))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
		gin.SetMode(gin.DebugMode)
	case "production":
		log.SetLevel(log.ErrorLevel)
		gin.SetMode(gin.ReleaseMode)
	default:
		log.SetLevel(log.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}
}

// applyLogLevel overrides the environment preset when LOG_LEVEL is set to a valid logrus level
func applyLogLevel(level string) {
	if level == "" {
		return
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("log_level", level).Warn("Unknown LOG_LEVEL, keeping environment default")
		return
	}
	log.SetLevel(parsed)
	middleware.SetLogLevel(parsed)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf.String())
	return conf
}

// setupDatabase opens the database, migrates the schema and seeds the catalog when asked to
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:     conf.DBDriver,
		Host:       conf.DBHost,
		Port:       conf.DBPort,
		User:       conf.DBUser,
		Password:   conf.DBPassword,
		Name:       conf.DBName,
		SSLMode:    conf.DBSSLMode,
		Path:       conf.DBPath,
		MaxRetries: conf.DBMaxRetries,
	})
	checkPanicErr(err)

	// Migrate the schema
	checkPanicErr(database.Migrate(db))

	if conf.SeedCatalog {
		checkPanicErr(database.SeedIfEmpty(context.Background(), db))
	} else {
		log.Info("Catalog seeding disabled")
	}
	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(conf *config.Config, db *gorm.DB, pizzaService services.CustomPizzaService) *gin.Engine {
	return router.NewRouter(router.Options{
		BasePath:         conf.BasePath,
		AllowedOrigins:   conf.CORSAllowedOrigins,
		PizzaController:  controllers.NewCustomPizzaController(pizzaService),
		HealthController: controllers.NewHealthController(func() error { return database.Ping(db) }),
	})
}

// serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down gracefully
func serve(addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
