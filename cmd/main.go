package main

import (
	"fmt"
	"net/http"

	_ "github.com/franciscosanchezn/pizza-builder-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-builder-api/internal/catalog"
	"github.com/franciscosanchezn/pizza-builder-api/internal/config"
	"github.com/franciscosanchezn/pizza-builder-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-builder-api/internal/database"
	"github.com/franciscosanchezn/pizza-builder-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-builder-api/internal/services"
	"github.com/franciscosanchezn/pizza-builder-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
)

var (
	pizzaCatalog      *catalog.Catalog
	pizzaService      services.PizzaService
	pizzaController   controllers.PizzaController
	catalogController controllers.CatalogController
	configuration     *config.Config
)

// @title Pizza Builder API
// @version 1.0
// @description Assemble a pizza from a catalog of sizes and ingredients, get its price, and browse past orders.
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize the catalog and the order store
	pizzaCatalog = catalog.New()
	repository := setupRepository(configuration)

	// Initialize services and controllers
	pizzaService = services.NewPizzaService(pizzaCatalog, repository)
	pizzaController = controllers.NewPizzaController(pizzaService)
	catalogController = controllers.NewCatalogController(pizzaCatalog)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
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
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupRepository builds the order repository for the configured store
// driver. The default keeps orders in process memory; sqlite and postgres go
// through gorm.
func setupRepository(conf *config.Config) store.Repository {
	switch conf.StoreDriver {
	case config.StoreDriverSQLite, config.StoreDriverPostgres:
		db, err := database.Connect(database.Config{
			Driver:   conf.StoreDriver,
			Host:     conf.DBHost,
			Port:     conf.DBPort,
			User:     conf.DBUser,
			Password: conf.DBPassword,
			Name:     conf.DBName,
			SSLMode:  conf.DBSSLMode,
			Path:     conf.SQLitePath,
		})
		checkPanicErr(err)
		repo, err := store.NewGormRepository(db)
		checkPanicErr(err)
		log.Infof("Order store backed by %s", conf.StoreDriver)
		return repo
	default:
		log.Info("Order store backed by process memory, orders are lost on restart")
		return store.NewMemoryRepository()
	}
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Catalog routes
	router.GET("/sizes", catalogController.GetSizes)
	router.GET("/ingredients", catalogController.GetIngredients)

	// Pizza order routes
	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.GET("/pizzas/:id", pizzaController.GetPizzaByID)
	router.POST("/pizzas", pizzaController.CreatePizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Unmatched routes
	router.NoRoute(notFoundHandler)
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// notFoundHandler answers every unmatched route
func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
}
