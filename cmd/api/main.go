package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/storage"
	"backend/internal/websocket"
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Staff Desk API
// @version         1.0
// @description     Accounts, departments, employees and requests over a single persisted state blob.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	medium, err := openMedium()
	if err != nil {
		log.Fatalf("Storage setup failed: %v", err)
	}
	defer func() { _ = medium.Close() }()

	store := storage.NewStore(medium)
	if err := store.Load(context.Background()); err != nil {
		log.Fatalf("State load failed: %v", err)
	}
	log.Println("State loaded.")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	accountRepo := repository.NewAccountRepository(store)
	departmentRepo := repository.NewDepartmentRepository(store)
	employeeRepo := repository.NewEmployeeRepository(store)
	requestRepo := repository.NewRequestRepository(store)

	authService := service.NewAuthService(accountRepo, store, wsHub)
	accountService := service.NewAccountService(accountRepo, wsHub)
	departmentService := service.NewDepartmentService(departmentRepo, wsHub)
	employeeService := service.NewEmployeeService(employeeRepo, departmentRepo, wsHub)
	requestService := service.NewRequestService(requestRepo, wsHub)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	requestHandler := handler.NewRequestHandler(requestService)

	// Route gates
	requireAuth := middleware.RequireAuth(accountRepo)
	requireAdmin := middleware.RequireAdmin(accountRepo)

	// Set up Gin Router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint (store-change notices)
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""), requireAuth)
	accountHandler.RegisterRoutes(router.Group(""), requireAdmin)
	departmentHandler.RegisterRoutes(router.Group(""), requireAdmin)
	employeeHandler.RegisterRoutes(router.Group(""), requireAdmin)
	requestHandler.RegisterRoutes(router.Group(""), requireAuth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// openMedium selects the persistence backend from STORAGE_DRIVER:
// sqlite (default), postgres, or memory.
func openMedium() (storage.Medium, error) {
	switch os.Getenv("STORAGE_DRIVER") {
	case "postgres":
		dbHost := os.Getenv("DB_HOST")
		dbPort := os.Getenv("DB_PORT")
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")
		dbSslMode := os.Getenv("DB_SSLMODE")

		if dbHost == "" {
			dbHost = "localhost"
		}
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "postgres"
		}
		if dbSslMode == "" {
			dbSslMode = "disable"
		}

		dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode
		log.Println("Using PostgreSQL storage.")
		return storage.NewGormMedium(dsn)
	case "memory":
		log.Println("Using in-memory storage (state is lost on exit).")
		return storage.NewMemoryMedium(), nil
	default:
		path := os.Getenv("STORAGE_PATH")
		log.Println("Using SQLite storage.")
		return storage.NewSQLiteMedium(path)
	}
}
