package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/PiotrPlachta/JobApp/internal/config"
	"github.com/PiotrPlachta/JobApp/internal/database"
	"github.com/PiotrPlachta/JobApp/internal/handlers"
	"github.com/PiotrPlachta/JobApp/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database ready at", cfg.DatabasePath)

	llmService, err := services.NewLLMService(cfg)
	if err != nil {
		log.Fatal("Failed to initialize LLM client:", err)
	}
	scraper := services.NewScraperService(cfg.ScrapeTimeout)
	analyzer := services.NewAnalyzerService(scraper, llmService)
	appService := services.NewApplicationService(db)
	salaryService := services.NewSalaryService()
	uploadService := services.NewUploadService(cfg.UploadDir)

	appHandler := handlers.NewApplicationHandler(appService)
	analysisHandler := handlers.NewAnalysisHandler(analyzer, salaryService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/applications", appHandler.List)
		api.POST("/applications", appHandler.Create)
		api.GET("/applications/:id", appHandler.Get)
		api.PUT("/applications/:id", appHandler.Update)
		api.DELETE("/applications/:id", appHandler.Delete)

		api.GET("/application-statuses", handlers.GetApplicationStatuses)
		api.GET("/salary-currencies", handlers.GetSalaryCurrencies)
		api.GET("/salary-types", handlers.GetSalaryTypes)

		api.POST("/analyze-url", analysisHandler.AnalyzeURL)
		api.POST("/calculate-yearly-salary", analysisHandler.CalculateYearlySalary)
		api.GET("/stats", appHandler.Stats)
		api.POST("/upload-file", uploadHandler.Upload)
	}

	log.Println("Server starting on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
