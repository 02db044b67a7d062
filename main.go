package main

import (
	"log"
	"os"

	"iban-service/internal/database"
	"iban-service/internal/handlers"
	"iban-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found in current directory, trying parent")
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Initialize Database
	database.Connect()
	database.Migrate()
	db := database.DB

	// Redis/Asynq Client
	redisAddr := os.Getenv("REDIS_URL")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	defer asynqClient.Close()

	// Init Services
	batchService := services.NewBatchService(db, asynqClient)
	batchHandler := handlers.NewBatchHandler(batchService)

	// Initialize Gin
	r := gin.Default()

	// Ping endpoint
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome To IBAN service",
		})
	})

	// IBAN Routes
	r.POST("/ibans/validate", handlers.ValidateIBAN)
	r.POST("/ibans/generate", handlers.GenerateIBAN)
	r.GET("/ibans/random", handlers.RandomIBAN)
	r.GET("/ibans/:iban", handlers.GetIBAN)

	// BIC Routes
	r.POST("/bics/validate", handlers.ValidateBIC)
	r.GET("/bics/:bic", handlers.GetBIC)

	// Bank Registry Routes
	r.GET("/banks/:country", handlers.ListBanks)
	r.GET("/banks/:country/:bank_code/bic", handlers.GetBankBIC)

	// Batch Validation Routes
	r.POST("/validations", batchHandler.CreateBatch)
	r.GET("/validations/:reference", batchHandler.GetBatch)

	// Start Cron Schedulers
	registryAuditService := services.NewRegistryAuditService()
	registryAuditService.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("HTTP Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
